package routes

import (
	"service_station/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/services", h.ListServices)
		catalog.GET("/defects", h.DefectTaxonomy)
		catalog.GET("/workers", h.ListWorkers)
		catalog.GET("/workers/:worker_id", h.GetWorker)
	}
}

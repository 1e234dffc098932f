package handlers

import (
	"net/http"
	"strconv"

	response "service_station/internal/adapter/http/dto/response"
	"service_station/internal/domain/entities"
	"service_station/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the read-only reference data.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary  Service price list
// @Tags     catalog
// @Produce  json
// @Param    active query bool false "only active services"
// @Success  200 {array} response.ServiceResponse
// @Security Bearer
// @Router   /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			abortWith(c, errInvalidRequest)
			return
		}
		activeOnly = v
	}

	services, err := h.usecase.ListServices(c.Request.Context(), activeOnly)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// DefectTaxonomy godoc
// @Summary  Defect nodes with their defect types
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.DefectNodeResponse
// @Security Bearer
// @Router   /catalog/defects [get]
func (h *CatalogHandler) DefectTaxonomy(c *gin.Context) {
	nodes, err := h.usecase.DefectTaxonomy(c.Request.Context())
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDefectNodes(nodes))
}

// ListWorkers godoc
// @Summary  Workers, optionally filtered by role
// @Tags     catalog
// @Produce  json
// @Param    role query string false "role"
// @Success  200 {array} response.WorkerResponse
// @Security Bearer
// @Router   /catalog/workers [get]
func (h *CatalogHandler) ListWorkers(c *gin.Context) {
	role := entities.Role(c.Query("role"))
	if role != "" && !role.Valid() {
		abortWith(c, errInvalidRequest)
		return
	}

	workers, err := h.usecase.ListWorkers(c.Request.Context(), role)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkers(workers))
}

// GetWorker godoc
// @Summary  A single worker
// @Tags     catalog
// @Produce  json
// @Param    worker_id path int true "worker id"
// @Success  200 {object} response.WorkerResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /catalog/workers/{worker_id} [get]
func (h *CatalogHandler) GetWorker(c *gin.Context) {
	id, ok := parseID(c, "worker_id")
	if !ok {
		return
	}
	worker, err := h.usecase.GetWorker(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorker(worker))
}

package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathCars   = "/cars"
)

func addOrderRoutes(rg *gin.RouterGroup, h orderHandlers) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.orders.CreateOrder)
		orders.GET("", h.orders.ListOrders)
		orders.GET("/queue", h.orders.Queue)
		orders.GET("/:id", h.orders.GetOrder)
		orders.GET("/:id/audit", h.orders.AuditTrail)
		orders.POST("/:id/transitions", h.orders.Transition)
		orders.POST("/:id/cancel", h.orders.CancelOrder)

		orders.GET("/:id/items", h.lineItems.ListItems)
		orders.POST("/:id/diagnosis", h.lineItems.SubmitDiagnosis)
		orders.POST("/:id/proposal", h.lineItems.ProposeLineItems)
		orders.POST("/:id/works", h.lineItems.AddWorkItem)
		orders.DELETE("/:id/works/:item_id", h.lineItems.RemoveWorkItem)
		orders.POST("/:id/parts", h.lineItems.AddPartItem)
		orders.DELETE("/:id/parts/:item_id", h.lineItems.RemovePartItem)

		orders.POST("/:id/decisions", h.approval.ApplyDecisions)
		orders.POST("/:id/assignment", h.approval.AssignWorkers)

		orders.POST("/:id/works/:item_id/start", h.execution.StartWorkItem)
		orders.POST("/:id/works/:item_id/done", h.execution.MarkWorkItemDone)

		orders.GET("/:id/settlement", h.settlement.Quote)
		orders.POST("/:id/settlement", h.settlement.SettleOrder)
	}

	rg.GET(PathCars+"/:car_id/orders", h.orders.CarHistory)
}

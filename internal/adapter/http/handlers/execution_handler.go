package handlers

import (
	"context"
	"net/http"

	response "service_station/internal/adapter/http/dto/response"
	"service_station/internal/domain/entities"
	"service_station/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExecutionHandler struct {
	usecase usecase.IExecutionUseCase
}

func NewExecutionHandler(uc usecase.IExecutionUseCase) *ExecutionHandler {
	return &ExecutionHandler{usecase: uc}
}

// StartWorkItem godoc
// @Summary  Start a confirmed work item
// @Tags     execution
// @Produce  json
// @Param    id       path   int    true  "order id"
// @Param    item_id  path   int    true  "work item id"
// @Param    If-Match header string false "expected order version"
// @Success  200 {object} response.SnapshotResponse
// @Security Bearer
// @Router   /orders/{id}/works/{item_id}/start [post]
func (h *ExecutionHandler) StartWorkItem(c *gin.Context) {
	h.advance(c, h.usecase.StartWorkItem)
}

// MarkWorkItemDone godoc
// @Summary  Finish a work item; with mandatory quality control the order moves to Quality_Control once every confirmed item is done
// @Tags     execution
// @Produce  json
// @Param    id       path   int    true  "order id"
// @Param    item_id  path   int    true  "work item id"
// @Param    If-Match header string false "expected order version"
// @Success  200 {object} response.SnapshotResponse
// @Security Bearer
// @Router   /orders/{id}/works/{item_id}/done [post]
func (h *ExecutionHandler) MarkWorkItemDone(c *gin.Context) {
	h.advance(c, h.usecase.MarkWorkItemDone)
}

func (h *ExecutionHandler) advance(
	c *gin.Context,
	step func(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error),
) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	snap, err := step(c.Request.Context(), orderID, actor, itemID, version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

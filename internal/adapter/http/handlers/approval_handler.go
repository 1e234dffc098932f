package handlers

import (
	"net/http"

	request "service_station/internal/adapter/http/dto/request"
	response "service_station/internal/adapter/http/dto/response"
	"service_station/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ApprovalHandler serves client decisions and worker assignment.
type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// ApplyDecisions godoc
// @Summary  Record the client's per-item decisions
// @Description Items not listed as accepted are rejected. Rejecting everything closes the order with the diagnosis fee.
// @Tags     approval
// @Accept   json
// @Produce  json
// @Param    id       path   int                     true  "order id"
// @Param    If-Match header string                  false "expected order version"
// @Param    body     body   request.DecisionRequest true  "decisions"
// @Success  200 {object} response.DecisionResponse
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/decisions [post]
func (h *ApprovalHandler) ApplyDecisions(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	result, err := h.usecase.ApplyDecisions(c.Request.Context(), orderID, actor, payload.ToInput(), version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDecision(result))
}

// AssignWorkers godoc
// @Summary  Assign the main worker and per-item workers, moving the order to work
// @Tags     approval
// @Accept   json
// @Produce  json
// @Param    id       path   int                       true  "order id"
// @Param    If-Match header string                    false "expected order version"
// @Param    body     body   request.AssignmentRequest true  "assignment"
// @Success  200 {object} response.SnapshotResponse
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/assignment [post]
func (h *ApprovalHandler) AssignWorkers(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.AssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	snap, err := h.usecase.AssignWorkers(c.Request.Context(), orderID, actor, payload.ToInput(), version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

package handlers

import (
	"net/http"

	request "service_station/internal/adapter/http/dto/request"
	response "service_station/internal/adapter/http/dto/response"
	"service_station/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LineItemHandler serves diagnosis, the parts selection proposal and ledger edits.
type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

// SubmitDiagnosis godoc
// @Summary  Record defects and hand the order to parts selection
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    id       path   int                      true  "order id"
// @Param    If-Match header string                   false "expected order version"
// @Param    body     body   request.DiagnosisRequest true  "defects"
// @Success  200 {object} response.SnapshotResponse
// @Security Bearer
// @Router   /orders/{id}/diagnosis [post]
func (h *LineItemHandler) SubmitDiagnosis(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.DiagnosisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidLineItem)
		return
	}

	snap, err := h.usecase.SubmitDiagnosis(c.Request.Context(), orderID, actor, payload.ToInputs(), version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// ProposeLineItems godoc
// @Summary  Add work and part items and submit them for approval
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    id       path   int                     true  "order id"
// @Param    If-Match header string                  false "expected order version"
// @Param    body     body   request.ProposalRequest true  "proposal"
// @Success  200 {object} response.SnapshotResponse
// @Security Bearer
// @Router   /orders/{id}/proposal [post]
func (h *LineItemHandler) ProposeLineItems(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidLineItem)
		return
	}

	snap, err := h.usecase.ProposeLineItems(c.Request.Context(), orderID, actor, payload.ToInput(), version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// AddWorkItem godoc
// @Summary  Add a work item during parts selection
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    id       path   int                     true  "order id"
// @Param    If-Match header string                  false "expected order version"
// @Param    body     body   request.WorkItemRequest true  "work item"
// @Success  201 {object} response.SnapshotResponse
// @Security Bearer
// @Router   /orders/{id}/works [post]
func (h *LineItemHandler) AddWorkItem(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.WorkItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidLineItem)
		return
	}

	snap, err := h.usecase.AddWorkItem(c.Request.Context(), orderID, actor, payload.ToInput(), version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

// AddPartItem godoc
// @Summary  Add a part item during parts selection
// @Tags     line-items
// @Accept   json
// @Produce  json
// @Param    id       path   int                     true  "order id"
// @Param    If-Match header string                  false "expected order version"
// @Param    body     body   request.PartItemRequest true  "part item"
// @Success  201 {object} response.SnapshotResponse
// @Security Bearer
// @Router   /orders/{id}/parts [post]
func (h *LineItemHandler) AddPartItem(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.PartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidLineItem)
		return
	}

	snap, err := h.usecase.AddPartItem(c.Request.Context(), orderID, actor, payload.ToInput(), version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

// RemoveWorkItem godoc
// @Summary  Remove a work item during parts selection
// @Tags     line-items
// @Produce  json
// @Param    id       path   int    true  "order id"
// @Param    item_id  path   int    true  "work item id"
// @Param    If-Match header string false "expected order version"
// @Success  200 {object} response.SnapshotResponse
// @Security Bearer
// @Router   /orders/{id}/works/{item_id} [delete]
func (h *LineItemHandler) RemoveWorkItem(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	snap, err := h.usecase.RemoveWorkItem(c.Request.Context(), orderID, actor, itemID, version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// RemovePartItem godoc
// @Summary  Remove a part item during parts selection
// @Tags     line-items
// @Produce  json
// @Param    id       path   int    true  "order id"
// @Param    item_id  path   int    true  "part item id"
// @Param    If-Match header string false "expected order version"
// @Success  200 {object} response.SnapshotResponse
// @Security Bearer
// @Router   /orders/{id}/parts/{item_id} [delete]
func (h *LineItemHandler) RemovePartItem(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	snap, err := h.usecase.RemovePartItem(c.Request.Context(), orderID, actor, itemID, version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// ListItems godoc
// @Summary  Line items of an order with proposed and confirmed totals
// @Tags     line-items
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} response.LineItemsResponse
// @Security Bearer
// @Router   /orders/{id}/items [get]
func (h *LineItemHandler) ListItems(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.usecase.ListItems(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items))
}

package handlers

import (
	"net/http"

	request "service_station/internal/adapter/http/dto/request"
	response "service_station/internal/adapter/http/dto/response"
	"service_station/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

// Quote godoc
// @Summary  Amount due for an order
// @Tags     settlement
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} response.QuoteResponse
// @Security Bearer
// @Router   /orders/{id}/settlement [get]
func (h *SettlementHandler) Quote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	quote, err := h.usecase.Quote(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SettleOrder godoc
// @Summary  Take payment and close a ready order
// @Tags     settlement
// @Accept   json
// @Produce  json
// @Param    id       path   int                    true  "order id"
// @Param    If-Match header string                 false "expected order version"
// @Param    body     body   request.PaymentRequest true  "payment"
// @Success  200 {object} response.SnapshotResponse
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/settlement [post]
func (h *SettlementHandler) SettleOrder(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayment)
		return
	}

	snap, err := h.usecase.SettleOrder(c.Request.Context(), orderID, actor, payload.ToPayment(), version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

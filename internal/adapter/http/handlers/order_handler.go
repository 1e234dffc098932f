package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "service_station/internal/adapter/http/dto/request"
	response "service_station/internal/adapter/http/dto/response"
	"service_station/internal/domain/entities"
	"service_station/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves order intake, queries and payload-free transitions.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary  Open a repair order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body request.CreateOrderRequest true "order"
// @Success  201 {object} response.SnapshotResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidOrderPayload)
		return
	}

	snap, err := h.usecase.CreateOrder(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

// GetOrder godoc
// @Summary  Order with its line items
// @Tags     orders
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} response.SnapshotResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	snap, err := h.usecase.GetOrder(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// ListOrders godoc
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Param    status    query string false "comma separated statuses"
// @Param    client_id query int    false "client id"
// @Param    car_id    query int    false "car id"
// @Param    worker_id query int    false "assigned worker id"
// @Param    limit     query int    false "page size"
// @Success  200 {array} response.OrderResponse
// @Security Bearer
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter, ok := parseOrderFilter(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListOrders(c.Request.Context(), filter)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// Queue godoc
// @Summary  Work queue of the calling role
// @Tags     orders
// @Produce  json
// @Success  200 {array} response.OrderResponse
// @Security Bearer
// @Router   /orders/queue [get]
func (h *OrderHandler) Queue(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	orders, err := h.usecase.Queue(c.Request.Context(), actor)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CarHistory godoc
// @Summary  Service history of a car
// @Tags     orders
// @Produce  json
// @Param    car_id path int true "car id"
// @Success  200 {array} response.OrderResponse
// @Security Bearer
// @Router   /cars/{car_id}/orders [get]
func (h *OrderHandler) CarHistory(c *gin.Context) {
	carID, ok := parseID(c, "car_id")
	if !ok {
		return
	}
	orders, err := h.usecase.CarHistory(c.Request.Context(), carID)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// Transition godoc
// @Summary  Move an order to a new status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id       path   int                       true  "order id"
// @Param    If-Match header string                    false "expected order version"
// @Param    body     body   request.TransitionRequest true  "target status"
// @Success  200 {object} response.SnapshotResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/transitions [post]
func (h *OrderHandler) Transition(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	snap, err := h.usecase.Transition(c.Request.Context(), orderID, actor, payload.Status(), version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// CancelOrder godoc
// @Summary  Cancel an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id       path   int                   true  "order id"
// @Param    If-Match header string                false "expected order version"
// @Param    body     body   request.CancelRequest true  "reason"
// @Success  200 {object} response.SnapshotResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, actor, version, ok := mutation(c)
	if !ok {
		return
	}
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errReasonRequired)
		return
	}

	snap, err := h.usecase.CancelOrder(c.Request.Context(), orderID, actor, payload.Reason, version)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// AuditTrail godoc
// @Summary  Status change history of an order
// @Tags     orders
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {array} response.AuditEntryResponse
// @Security Bearer
// @Router   /orders/{id}/audit [get]
func (h *OrderHandler) AuditTrail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	entries, err := h.usecase.AuditTrail(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuditEntries(entries))
}

func parseOrderFilter(c *gin.Context) (entities.OrderFilter, bool) {
	var filter entities.OrderFilter
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, entities.OrderStatus(s))
			}
		}
	}

	ids := []struct {
		key string
		dst *int64
	}{
		{"client_id", &filter.ClientID},
		{"car_id", &filter.CarID},
		{"worker_id", &filter.WorkerID},
	}
	for _, q := range ids {
		raw := c.Query(q.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			abortWith(c, errInvalidRequest)
			return filter, false
		}
		*q.dst = v
	}

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			abortWith(c, errInvalidRequest)
			return filter, false
		}
		filter.Limit = v
	}
	return filter, true
}

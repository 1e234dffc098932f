package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"service_station/internal/adapter/http/middleware"
	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase"
	"service_station/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidID       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid identifier", http.StatusBadRequest)
	errInvalidIfMatch  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "If-Match must be an order version", http.StatusBadRequest)
	errMissingActor    = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing session", http.StatusUnauthorized)
	errInvalidLineItem = pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item payload", http.StatusBadRequest)
	errInvalidPayment  = pkg.NewDomainErrorSimple("INVALID_PAYMENT", "Invalid payment payload", http.StatusBadRequest)
	errReasonRequired  = pkg.NewDomainErrorSimple("REASON_REQUIRED", "Cancel reason is required", http.StatusBadRequest)

	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order payload", http.StatusBadRequest)
)

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, workflow.ErrInvalidOrder):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid order data", err, http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidLineItem):
		return pkg.NewDomainError("INVALID_LINE_ITEM", "Invalid line item", err, http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidPayment):
		return pkg.NewDomainError("INVALID_PAYMENT", "Invalid payment", err, http.StatusBadRequest)
	case errors.Is(err, workflow.ErrReasonRequired):
		return errReasonRequired
	case errors.Is(err, workflow.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return pkg.NewDomainErrorSimple("WORKER_NOT_FOUND", "Worker not found", http.StatusNotFound)
	case errors.Is(err, workflow.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Order was modified concurrently", http.StatusConflict)
	case errors.Is(err, workflow.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", "Action not allowed for this order status and role", err, http.StatusConflict)
	case errors.Is(err, workflow.ErrNoConfirmedWork):
		return pkg.NewDomainErrorSimple("NO_CONFIRMED_WORK", "Order has no confirmed work", http.StatusConflict)
	case errors.Is(err, workflow.ErrUnknownLineItem):
		return pkg.NewDomainError("UNKNOWN_LINE_ITEM", "Line item does not belong to this order", err, http.StatusUnprocessableEntity)
	case errors.Is(err, workflow.ErrUnknownWorker):
		return pkg.NewDomainError("UNKNOWN_WORKER", "Worker is unknown or inactive", err, http.StatusUnprocessableEntity)
	case errors.Is(err, workflow.ErrInsufficientPayment):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_PAYMENT", "Amount paid does not cover the amount due", http.StatusUnprocessableEntity)
	case errors.Is(err, workflow.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, workflow.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Order store is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWith(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// expectedVersion reads the optional If-Match header. Quoted ETag-style
// values are accepted.
func expectedVersion(c *gin.Context) (*int64, bool) {
	raw := strings.Trim(strings.TrimSpace(c.GetHeader("If-Match")), `"`)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		abortWith(c, errInvalidIfMatch)
		return nil, false
	}
	return &v, true
}

func actorFromContext(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		abortWith(c, errMissingActor)
		return entities.Actor{}, false
	}
	return actor, true
}

// mutation gathers the path id, session actor and If-Match version shared by
// every order command. It writes the error response itself.
func mutation(c *gin.Context) (orderID int64, actor entities.Actor, version *int64, ok bool) {
	if orderID, ok = parseID(c, "id"); !ok {
		return
	}
	if actor, ok = actorFromContext(c); !ok {
		return
	}
	version, ok = expectedVersion(c)
	return
}

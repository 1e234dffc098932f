package interfaces

import (
	"context"

	"service_station/internal/domain/entities"
)

//go:generate mockgen -source=audit_log_interface.go -destination=mocks/audit_log_mock.go -package=mock_interfaces

// IAuditLog stores one entry per order status change.
type IAuditLog interface {
	Append(ctx context.Context, e entities.AuditEntry) error
	ListByOrder(ctx context.Context, orderID int64) ([]entities.AuditEntry, error)
}

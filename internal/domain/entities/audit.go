package entities

import "time"

// AuditEntry records one state change of an order.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: entry_id (RFC3339Nano timestamp + uuid, sorts chronologically)
type AuditEntry struct {
	OrderID   int64       `json:"order_id"`
	EntryID   string      `json:"entry_id"`
	Action    string      `json:"action"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	ActorID   int64       `json:"actor_id"`
	ActorRole Role        `json:"actor_role"`
	Detail    string      `json:"detail,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderStatusChangedEvent is published after a committed status change.
type OrderStatusChangedEvent struct {
	EventID   string      `json:"event_id"`
	OrderID   int64       `json:"order_id"`
	Action    string      `json:"action"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	ActorID   int64       `json:"actor_id"`
	ActorRole Role        `json:"actor_role"`
	Version   int64       `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
}

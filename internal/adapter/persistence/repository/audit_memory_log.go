package repository

import (
	"context"
	"sync"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditMemoryLog keeps audit entries in process memory and mirrors each one
// to the structured log. It backs AUDIT_BACKEND=log.
type AuditMemoryLog struct {
	mu      sync.RWMutex
	entries map[int64][]entities.AuditEntry
	log     *zap.Logger
}

var _ interfaces.IAuditLog = (*AuditMemoryLog)(nil)

func NewAuditMemoryLog(log *zap.Logger) *AuditMemoryLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuditMemoryLog{entries: map[int64][]entities.AuditEntry{}, log: log}
}

func (l *AuditMemoryLog) Append(_ context.Context, e entities.AuditEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.EntryID == "" {
		e.EntryID = e.CreatedAt.UTC().Format(entryTimeLayout) + "#" + uuid.NewString()
	}

	l.mu.Lock()
	l.entries[e.OrderID] = append(l.entries[e.OrderID], e)
	l.mu.Unlock()

	l.log.Info("[order][audit] status changed",
		zap.Int64("order_id", e.OrderID),
		zap.String("action", e.Action),
		zap.String("old_status", string(e.OldStatus)),
		zap.String("new_status", string(e.NewStatus)),
		zap.Int64("actor_id", e.ActorID),
		zap.String("actor_role", string(e.ActorRole)),
	)
	return nil
}

func (l *AuditMemoryLog) ListByOrder(_ context.Context, orderID int64) ([]entities.AuditEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entities.AuditEntry, len(l.entries[orderID]))
	copy(out, l.entries[orderID])
	return out, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service_station/usecase")

// CommandRunner executes every mutating order command with the same steps:
// load the snapshot, check the expected version, authorize, run the command
// body, write the order back with a version compare-and-swap, commit. Audit
// entries, events and metrics follow the commit.
type CommandRunner struct {
	repo    interfaces.IOrderRepository
	audit   interfaces.IAuditLog
	events  interfaces.IEventPublisher
	machine *workflow.Machine
	log     *zap.Logger
	now     func() time.Time
	metrics commandMetrics
}

type RunnerOption func(*CommandRunner)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *CommandRunner) { r.now = now }
}

// WithEventPublisher enables order.status_changed events.
func WithEventPublisher(p interfaces.IEventPublisher) RunnerOption {
	return func(r *CommandRunner) { r.events = p }
}

func NewCommandRunner(repo interfaces.IOrderRepository, audit interfaces.IAuditLog, machine *workflow.Machine, log *zap.Logger, opts ...RunnerOption) *CommandRunner {
	if log == nil {
		log = zap.NewNop()
	}
	r := &CommandRunner{
		repo:    repo,
		audit:   audit,
		machine: machine,
		log:     log,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		metrics: newCommandMetrics(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CommandRunner) Machine() *workflow.Machine {
	return r.machine
}

type command struct {
	name            string
	orderID         int64
	actor           entities.Actor
	action          workflow.Action
	expectedVersion *int64
	// resolve picks the action from the current status when it is not fixed.
	resolve func(entities.OrderStatus) (workflow.Action, error)
}

type statusChange struct {
	action workflow.Action
	from   entities.OrderStatus
	to     entities.OrderStatus
}

// execution is the in-transaction state handed to a command body.
type execution struct {
	tx      interfaces.IOrderTx
	snap    entities.OrderSnapshot
	actor   entities.Actor
	action  workflow.Action
	now     time.Time
	machine *workflow.Machine
	changes []statusChange
	detail  string
}

// move authorizes action for the actor and applies its target status.
func (e *execution) move(action workflow.Action) error {
	rule, err := e.machine.Authorize(e.snap.Order.Status, action, e.actor.Role)
	if err != nil {
		return err
	}
	o := e.snap.Order
	o.Status = rule.Target
	e.setOrder(action, o)
	return nil
}

// setOrder stores an order produced by a domain function and records the
// status change, if any.
func (e *execution) setOrder(action workflow.Action, o entities.Order) {
	if o.Status != e.snap.Order.Status {
		e.changes = append(e.changes, statusChange{action: action, from: e.snap.Order.Status, to: o.Status})
	}
	e.snap.Order = o
}

func (r *CommandRunner) run(ctx context.Context, cmd command, body func(ctx context.Context, ex *execution) error) (entities.OrderSnapshot, error) {
	ctx, span := tracer.Start(ctx, "order."+cmd.name, trace.WithAttributes(
		attribute.Int64("order.id", cmd.orderID),
		attribute.String("actor.role", string(cmd.actor.Role)),
	))
	defer span.End()
	start := time.Now()

	var ex *execution
	err := r.repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
		snap, err := tx.LoadSnapshot(ctx, cmd.orderID)
		if err != nil {
			return err
		}
		if snap.Order.ID == 0 {
			return fmt.Errorf("%w: %d", workflow.ErrOrderNotFound, cmd.orderID)
		}
		if cmd.expectedVersion != nil && *cmd.expectedVersion != snap.Order.Version {
			return fmt.Errorf("%w: expected version %d, order %d is at %d",
				workflow.ErrConcurrentModification, *cmd.expectedVersion, snap.Order.ID, snap.Order.Version)
		}

		action := cmd.action
		if cmd.resolve != nil {
			if action, err = cmd.resolve(snap.Order.Status); err != nil {
				return err
			}
		}
		if _, err := r.machine.Authorize(snap.Order.Status, action, cmd.actor.Role); err != nil {
			return err
		}

		ex = &execution{tx: tx, snap: snap, actor: cmd.actor, action: action, now: r.now(), machine: r.machine}
		if err := body(ctx, ex); err != nil {
			return err
		}

		ex.snap.Order.UpdatedAt = ex.now
		updated, err := tx.Update(ctx, ex.snap.Order)
		if err != nil {
			return err
		}
		ex.snap.Order = updated
		return nil
	})
	r.metrics.observe(ctx, cmd.name, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logRejected(cmd, err)
		return entities.OrderSnapshot{}, err
	}

	r.afterCommit(ctx, cmd.name, ex)
	return ex.snap, nil
}

// create inserts a new order. When autoStart is set and the actor may start
// diagnostics, the order leaves New in the same transaction.
func (r *CommandRunner) create(ctx context.Context, actor entities.Actor, in workflow.OrderInput, autoStart bool) (entities.OrderSnapshot, error) {
	ctx, span := tracer.Start(ctx, "order.create", trace.WithAttributes(attribute.String("actor.role", string(actor.Role))))
	defer span.End()
	start := time.Now()

	cmd := command{name: "create", actor: actor, action: workflow.ActionCreate}
	var ex *execution
	err := func() error {
		if err := workflow.AuthorizeCreate(actor.Role); err != nil {
			return err
		}
		now := r.now()
		o, err := workflow.NewOrder(in, actor.ID, now)
		if err != nil {
			return err
		}
		ex = &execution{actor: actor, action: workflow.ActionCreate, now: now, machine: r.machine}
		ex.changes = append(ex.changes, statusChange{action: workflow.ActionCreate, to: o.Status})
		ex.snap.Order = o
		if autoStart {
			if rule, err := r.machine.Authorize(o.Status, workflow.ActionStartDiagnostics, actor.Role); err == nil {
				o.Status = rule.Target
				ex.setOrder(workflow.ActionStartDiagnostics, o)
			}
		}

		return r.repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
			created, err := tx.Insert(ctx, ex.snap.Order)
			if err != nil {
				return err
			}
			ex.snap.Order = created
			return nil
		})
	}()
	r.metrics.observe(ctx, cmd.name, start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logRejected(cmd, err)
		return entities.OrderSnapshot{}, err
	}

	r.afterCommit(ctx, cmd.name, ex)
	return ex.snap, nil
}

// afterCommit never fails the command: the state change is already durable.
func (r *CommandRunner) afterCommit(ctx context.Context, name string, ex *execution) {
	o := ex.snap.Order
	r.log.Info("[order][usecase] command applied",
		zap.String("command", name),
		zap.Int64("order_id", o.ID),
		zap.String("status", string(o.Status)),
		zap.Int64("version", o.Version),
		zap.Int64("actor_id", ex.actor.ID),
		zap.String("actor_role", string(ex.actor.Role)),
	)

	for _, ch := range ex.changes {
		r.metrics.transition(ctx, ch)

		if r.audit != nil {
			entry := entities.AuditEntry{
				OrderID:   o.ID,
				Action:    string(ch.action),
				OldStatus: ch.from,
				NewStatus: ch.to,
				ActorID:   ex.actor.ID,
				ActorRole: ex.actor.Role,
				Detail:    ex.detail,
				CreatedAt: ex.now,
			}
			if err := r.audit.Append(ctx, entry); err != nil {
				r.log.Warn("[order][audit] append failed", zap.Int64("order_id", o.ID), zap.String("action", string(ch.action)), zap.Error(err))
			}
		}

		if r.events != nil {
			event := entities.OrderStatusChangedEvent{
				EventID:   uuid.NewString(),
				OrderID:   o.ID,
				Action:    string(ch.action),
				OldStatus: ch.from,
				NewStatus: ch.to,
				ActorID:   ex.actor.ID,
				ActorRole: ex.actor.Role,
				Version:   o.Version,
				Timestamp: ex.now,
			}
			if err := r.events.Publish(ctx, strconv.FormatInt(o.ID, 10), event); err != nil {
				r.log.Warn("[order][events] publish failed", zap.Int64("order_id", o.ID), zap.String("action", string(ch.action)), zap.Error(err))
			}
		}
	}
}

func (r *CommandRunner) logRejected(cmd command, err error) {
	fields := []zap.Field{
		zap.String("command", cmd.name),
		zap.Int64("order_id", cmd.orderID),
		zap.Int64("actor_id", cmd.actor.ID),
		zap.String("actor_role", string(cmd.actor.Role)),
		zap.Error(err),
	}
	if errors.Is(err, workflow.ErrStoreUnavailable) {
		r.log.Error("[order][usecase] command failed", fields...)
		return
	}
	r.log.Info("[order][usecase] command rejected", fields...)
}

type commandMetrics struct {
	commands    metric.Int64Counter
	transitions metric.Int64Counter
	duration    metric.Float64Histogram
}

func newCommandMetrics() commandMetrics {
	meter := otel.Meter("service_station/usecase")
	commands, _ := meter.Int64Counter("order_commands",
		metric.WithDescription("Order commands by name and outcome"))
	transitions, _ := meter.Int64Counter("order_status_transitions",
		metric.WithDescription("Committed order status changes"))
	duration, _ := meter.Float64Histogram("order_command_duration",
		metric.WithDescription("Order command latency"), metric.WithUnit("s"))
	return commandMetrics{commands: commands, transitions: transitions, duration: duration}
}

func (m commandMetrics) observe(ctx context.Context, name string, start time.Time, err error) {
	attrs := metric.WithAttributes(
		attribute.String("command", name),
		attribute.String("outcome", outcomeOf(err)),
	)
	m.commands.Add(ctx, 1, attrs)
	m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func (m commandMetrics) transition(ctx context.Context, ch statusChange) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", string(ch.from)),
		attribute.String("to", string(ch.to)),
	))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, workflow.ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, workflow.ErrStoreUnavailable):
		return "store_error"
	default:
		return "rejected"
	}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/infrastructure/database"
	"service_station/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"id", "client_id", "car_id", "intake_clerk_id", "assigned_worker_id",
	"status", "complaint", "mileage", "prepayment_cents", "total_cents",
	"diagnosis_fee_cents", "payment_method", "amount_paid_cents", "cancel_reason",
	"version", "created_at", "updated_at", "completed_at",
}

// OrderSQLRepository stores orders and their line items in PostgreSQL or SQLite.
type OrderSQLRepository struct {
	db *database.DB
}

var _ interfaces.IOrderRepository = (*OrderSQLRepository)(nil)

func NewOrderSQLRepository(db *database.DB) *OrderSQLRepository {
	return &OrderSQLRepository{db: db}
}

// RunInTx runs fn in a transaction. The transaction commits when fn returns
// nil and rolls back otherwise, including on panic.
func (r *OrderSQLRepository) RunInTx(ctx context.Context, fn func(tx interfaces.IOrderTx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = storeErr("commit", cerr)
		}
	}()

	return fn(&orderTx{q: tx, sb: r.db.Builder()})
}

func (r *OrderSQLRepository) GetSnapshot(ctx context.Context, id int64) (entities.OrderSnapshot, error) {
	return loadSnapshot(ctx, r.db, r.db.Builder(), id)
}

func (r *OrderSQLRepository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	qb := r.db.Builder().Select(orderColumns...).From("orders").OrderBy("id DESC")
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		qb = qb.Where(sq.Eq{"status": statuses})
	}
	if filter.ClientID > 0 {
		qb = qb.Where(sq.Eq{"client_id": filter.ClientID})
	}
	if filter.CarID > 0 {
		qb = qb.Where(sq.Eq{"car_id": filter.CarID})
	}
	if filter.WorkerID > 0 {
		qb = qb.Where(sq.Eq{"assigned_worker_id": filter.WorkerID})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(filter.Limit)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list orders: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list orders", err)
	}
	defer rows.Close()

	var out []entities.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, storeErr("scan order", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list orders", err)
	}
	return out, nil
}

type orderTx struct {
	q  querier
	sb sq.StatementBuilderType
}

var _ interfaces.IOrderTx = (*orderTx)(nil)

func (t *orderTx) LoadSnapshot(ctx context.Context, id int64) (entities.OrderSnapshot, error) {
	return loadSnapshot(ctx, t.q, t.sb, id)
}

func (t *orderTx) Insert(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args, err := t.sb.Insert("orders").
		Columns(orderColumns[1:]...).
		Values(
			o.ClientID, o.CarID, o.IntakeClerkID, nullableInt(o.AssignedWorkerID),
			string(o.Status), o.Complaint, o.Mileage, workflow.ToMinorUnits(o.Prepayment), nullableCents(o.TotalAmount),
			nullableCents(o.DiagnosisFee), string(o.PaymentMethod), nullableCents(o.AmountPaid), o.CancelReason,
			o.Version, o.CreatedAt.UTC(), o.UpdatedAt.UTC(), nullableTime(o.CompletedAt),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return entities.Order{}, fmt.Errorf("build insert order: %w", err)
	}
	if err := t.q.QueryRowContext(ctx, query, args...).Scan(&o.ID); err != nil {
		return entities.Order{}, storeErr("insert order", err)
	}
	return o, nil
}

// Update is the compare-and-swap write: it only succeeds while the stored
// version equals o.Version.
func (t *orderTx) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args, err := t.sb.Update("orders").
		SetMap(map[string]any{
			"assigned_worker_id":  nullableInt(o.AssignedWorkerID),
			"status":              string(o.Status),
			"complaint":           o.Complaint,
			"mileage":             o.Mileage,
			"prepayment_cents":    workflow.ToMinorUnits(o.Prepayment),
			"total_cents":         nullableCents(o.TotalAmount),
			"diagnosis_fee_cents": nullableCents(o.DiagnosisFee),
			"payment_method":      string(o.PaymentMethod),
			"amount_paid_cents":   nullableCents(o.AmountPaid),
			"cancel_reason":       o.CancelReason,
			"version":             sq.Expr("version + 1"),
			"updated_at":          o.UpdatedAt.UTC(),
			"completed_at":        nullableTime(o.CompletedAt),
		}).
		Where(sq.Eq{"id": o.ID, "version": o.Version}).
		ToSql()
	if err != nil {
		return entities.Order{}, fmt.Errorf("build update order: %w", err)
	}

	res, err := t.q.ExecContext(ctx, query, args...)
	if err != nil {
		return entities.Order{}, storeErr("update order", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Order{}, storeErr("update order", err)
	}
	if n == 0 {
		return entities.Order{}, fmt.Errorf("%w: order %d is no longer at version %d", workflow.ErrConcurrentModification, o.ID, o.Version)
	}
	o.Version++
	return o, nil
}

func (t *orderTx) InsertDefects(ctx context.Context, defects []entities.Defect) ([]entities.Defect, error) {
	out := make([]entities.Defect, 0, len(defects))
	for _, d := range defects {
		query, args, err := t.sb.Insert("defects").
			Columns("order_id", "defect_type_id", "diagnostician_id", "comment", "confirmed", "created_at").
			Values(d.OrderID, d.DefectTypeID, d.DiagnosticianID, d.Comment, d.Confirmed, d.CreatedAt.UTC()).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build insert defect: %w", err)
		}
		if err := t.q.QueryRowContext(ctx, query, args...).Scan(&d.ID); err != nil {
			return nil, storeErr("insert defect", err)
		}
		out = append(out, d)
	}
	return out, nil
}

func (t *orderTx) UpdateDefects(ctx context.Context, defects []entities.Defect) error {
	for _, d := range defects {
		query, args, err := t.sb.Update("defects").
			Set("confirmed", d.Confirmed).
			Where(sq.Eq{"id": d.ID, "order_id": d.OrderID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update defect: %w", err)
		}
		if _, err := t.q.ExecContext(ctx, query, args...); err != nil {
			return storeErr("update defect", err)
		}
	}
	return nil
}

func (t *orderTx) InsertWorkItems(ctx context.Context, items []entities.WorkItem) ([]entities.WorkItem, error) {
	out := make([]entities.WorkItem, 0, len(items))
	for _, w := range items {
		query, args, err := t.sb.Insert("work_items").
			Columns("order_id", "service_id", "defect_id", "service_name", "price_cents", "worker_id", "status", "confirmed", "created_at").
			Values(w.OrderID, nullableInt(w.ServiceID), nullableInt(w.DefectID), w.ServiceName, workflow.ToMinorUnits(w.Price),
				nullableInt(w.WorkerID), string(w.Status), w.Confirmed, w.CreatedAt.UTC()).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build insert work item: %w", err)
		}
		if err := t.q.QueryRowContext(ctx, query, args...).Scan(&w.ID); err != nil {
			return nil, storeErr("insert work item", err)
		}
		out = append(out, w)
	}
	return out, nil
}

// UpdateWorkItems writes the mutable fields only. The price snapshot is
// never rewritten.
func (t *orderTx) UpdateWorkItems(ctx context.Context, items []entities.WorkItem) error {
	for _, w := range items {
		query, args, err := t.sb.Update("work_items").
			Set("worker_id", nullableInt(w.WorkerID)).
			Set("status", string(w.Status)).
			Set("confirmed", w.Confirmed).
			Where(sq.Eq{"id": w.ID, "order_id": w.OrderID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update work item: %w", err)
		}
		if _, err := t.q.ExecContext(ctx, query, args...); err != nil {
			return storeErr("update work item", err)
		}
	}
	return nil
}

func (t *orderTx) DeleteWorkItem(ctx context.Context, orderID, itemID int64) error {
	return t.deleteItem(ctx, "work_items", orderID, itemID)
}

func (t *orderTx) InsertPartItems(ctx context.Context, items []entities.PartItem) ([]entities.PartItem, error) {
	out := make([]entities.PartItem, 0, len(items))
	for _, p := range items {
		query, args, err := t.sb.Insert("part_items").
			Columns("order_id", "warehouse_item_id", "name", "brand", "unit_price_cents", "quantity", "confirmed", "created_at").
			Values(p.OrderID, nullableInt(p.WarehouseItemID), p.Name, p.Brand, workflow.ToMinorUnits(p.UnitPrice),
				p.Quantity, p.Confirmed, p.CreatedAt.UTC()).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build insert part item: %w", err)
		}
		if err := t.q.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
			return nil, storeErr("insert part item", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (t *orderTx) UpdatePartItems(ctx context.Context, items []entities.PartItem) error {
	for _, p := range items {
		query, args, err := t.sb.Update("part_items").
			Set("confirmed", p.Confirmed).
			Where(sq.Eq{"id": p.ID, "order_id": p.OrderID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update part item: %w", err)
		}
		if _, err := t.q.ExecContext(ctx, query, args...); err != nil {
			return storeErr("update part item", err)
		}
	}
	return nil
}

func (t *orderTx) DeletePartItem(ctx context.Context, orderID, itemID int64) error {
	return t.deleteItem(ctx, "part_items", orderID, itemID)
}

func (t *orderTx) deleteItem(ctx context.Context, table string, orderID, itemID int64) error {
	query, args, err := t.sb.Delete(table).Where(sq.Eq{"id": itemID, "order_id": orderID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}
	res, err := t.q.ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("delete "+table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete "+table, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", workflow.ErrUnknownLineItem, table, itemID)
	}
	return nil
}

// loadSnapshot returns a zero-value snapshot when the order does not exist.
func loadSnapshot(ctx context.Context, q querier, sb sq.StatementBuilderType, id int64) (entities.OrderSnapshot, error) {
	query, args, err := sb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entities.OrderSnapshot{}, fmt.Errorf("build get order: %w", err)
	}
	o, err := scanOrder(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderSnapshot{}, nil
	}
	if err != nil {
		return entities.OrderSnapshot{}, storeErr("get order", err)
	}

	snap := entities.OrderSnapshot{Order: o}
	if snap.Defects, err = loadDefects(ctx, q, sb, id); err != nil {
		return entities.OrderSnapshot{}, err
	}
	if snap.Works, err = loadWorkItems(ctx, q, sb, id); err != nil {
		return entities.OrderSnapshot{}, err
	}
	if snap.Parts, err = loadPartItems(ctx, q, sb, id); err != nil {
		return entities.OrderSnapshot{}, err
	}
	return snap, nil
}

func scanOrder(s rowScanner) (entities.Order, error) {
	var (
		o                                 entities.Order
		worker, total, fee, paid          sql.NullInt64
		status, method                    string
		prepayment                        int64
		createdAt, updatedAt, completedAt any
	)
	err := s.Scan(
		&o.ID, &o.ClientID, &o.CarID, &o.IntakeClerkID, &worker,
		&status, &o.Complaint, &o.Mileage, &prepayment, &total,
		&fee, &method, &paid, &o.CancelReason,
		&o.Version, &createdAt, &updatedAt, &completedAt,
	)
	if err != nil {
		return entities.Order{}, err
	}
	o.AssignedWorkerID = intPtr(worker)
	o.Status = entities.OrderStatus(status)
	o.Prepayment = workflow.FromMinorUnits(prepayment)
	o.TotalAmount = amountPtr(total)
	o.DiagnosisFee = amountPtr(fee)
	o.PaymentMethod = entities.PaymentMethod(method)
	o.AmountPaid = amountPtr(paid)
	o.CreatedAt = parseTime(createdAt)
	o.UpdatedAt = parseTime(updatedAt)
	o.CompletedAt = parseTimePtr(completedAt)
	return o, nil
}

func loadDefects(ctx context.Context, q querier, sb sq.StatementBuilderType, orderID int64) ([]entities.Defect, error) {
	query, args, err := sb.Select("id", "order_id", "defect_type_id", "diagnostician_id", "comment", "confirmed", "created_at").
		From("defects").Where(sq.Eq{"order_id": orderID}).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list defects: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list defects", err)
	}
	defer rows.Close()

	var out []entities.Defect
	for rows.Next() {
		var d entities.Defect
		var createdAt any
		if err := rows.Scan(&d.ID, &d.OrderID, &d.DefectTypeID, &d.DiagnosticianID, &d.Comment, &d.Confirmed, &createdAt); err != nil {
			return nil, storeErr("scan defect", err)
		}
		d.CreatedAt = parseTime(createdAt)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list defects", err)
	}
	return out, nil
}

func loadWorkItems(ctx context.Context, q querier, sb sq.StatementBuilderType, orderID int64) ([]entities.WorkItem, error) {
	query, args, err := sb.Select("id", "order_id", "service_id", "defect_id", "service_name", "price_cents", "worker_id", "status", "confirmed", "created_at").
		From("work_items").Where(sq.Eq{"order_id": orderID}).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list work items: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list work items", err)
	}
	defer rows.Close()

	var out []entities.WorkItem
	for rows.Next() {
		var (
			w                           entities.WorkItem
			serviceID, defectID, worker sql.NullInt64
			price                       int64
			status                      string
			createdAt                   any
		)
		if err := rows.Scan(&w.ID, &w.OrderID, &serviceID, &defectID, &w.ServiceName, &price, &worker, &status, &w.Confirmed, &createdAt); err != nil {
			return nil, storeErr("scan work item", err)
		}
		w.ServiceID = intPtr(serviceID)
		w.DefectID = intPtr(defectID)
		w.Price = workflow.FromMinorUnits(price)
		w.WorkerID = intPtr(worker)
		w.Status = entities.ExecutionStatus(status)
		w.CreatedAt = parseTime(createdAt)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list work items", err)
	}
	return out, nil
}

func loadPartItems(ctx context.Context, q querier, sb sq.StatementBuilderType, orderID int64) ([]entities.PartItem, error) {
	query, args, err := sb.Select("id", "order_id", "warehouse_item_id", "name", "brand", "unit_price_cents", "quantity", "confirmed", "created_at").
		From("part_items").Where(sq.Eq{"order_id": orderID}).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list part items: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list part items", err)
	}
	defer rows.Close()

	var out []entities.PartItem
	for rows.Next() {
		var (
			p         entities.PartItem
			warehouse sql.NullInt64
			price     int64
			createdAt any
		)
		if err := rows.Scan(&p.ID, &p.OrderID, &warehouse, &p.Name, &p.Brand, &price, &p.Quantity, &p.Confirmed, &createdAt); err != nil {
			return nil, storeErr("scan part item", err)
		}
		p.WarehouseItemID = intPtr(warehouse)
		p.UnitPrice = workflow.FromMinorUnits(price)
		p.CreatedAt = parseTime(createdAt)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list part items", err)
	}
	return out, nil
}

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

// CatalogSQLRepository serves reference data from the relational store.
type CatalogSQLRepository struct {
	db *database.DB
}

var (
	_ interfaces.ICatalogRepository = (*CatalogSQLRepository)(nil)
	_ interfaces.ICatalogWriter     = (*CatalogSQLRepository)(nil)
)

func NewCatalogSQLRepository(db *database.DB) *CatalogSQLRepository {
	return &CatalogSQLRepository{db: db}
}

func (r *CatalogSQLRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	query, args, err := r.db.Builder().Select("id", "name", "price_cents", "active").From("services").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list services", err)
	}
	defer rows.Close()

	var out []entities.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, storeErr("scan service", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list services", err)
	}
	return out, nil
}

func (r *CatalogSQLRepository) GetService(ctx context.Context, id int64) (entities.Service, error) {
	query, args, err := r.db.Builder().Select("id", "name", "price_cents", "active").From("services").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entities.Service{}, fmt.Errorf("build get service: %w", err)
	}
	s, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Service{}, nil
	}
	if err != nil {
		return entities.Service{}, storeErr("get service", err)
	}
	return s, nil
}

func scanService(s rowScanner) (entities.Service, error) {
	var svc entities.Service
	var price int64
	if err := s.Scan(&svc.ID, &svc.Name, &price, &svc.Active); err != nil {
		return entities.Service{}, err
	}
	svc.Price = workflow.FromMinorUnits(price)
	return svc, nil
}

// ListDefectNodes returns every node with its defect types nested.
func (r *CatalogSQLRepository) ListDefectNodes(ctx context.Context) ([]entities.DefectNode, error) {
	sb := r.db.Builder()
	query, args, err := sb.Select("id", "name").From("defect_nodes").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list defect nodes: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list defect nodes", err)
	}
	var nodes []entities.DefectNode
	index := map[int64]int{}
	for rows.Next() {
		var n entities.DefectNode
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			rows.Close()
			return nil, storeErr("scan defect node", err)
		}
		index[n.ID] = len(nodes)
		nodes = append(nodes, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, storeErr("list defect nodes", err)
	}

	query, args, err = sb.Select("id", "node_id", "name").From("defect_types").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list defect types: %w", err)
	}
	rows, err = r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list defect types", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t entities.DefectType
		if err := rows.Scan(&t.ID, &t.NodeID, &t.Name); err != nil {
			return nil, storeErr("scan defect type", err)
		}
		if i, ok := index[t.NodeID]; ok {
			nodes[i].Types = append(nodes[i].Types, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list defect types", err)
	}
	return nodes, nil
}

func (r *CatalogSQLRepository) GetDefectType(ctx context.Context, id int64) (entities.DefectType, error) {
	query, args, err := r.db.Builder().Select("id", "node_id", "name").From("defect_types").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entities.DefectType{}, fmt.Errorf("build get defect type: %w", err)
	}
	var t entities.DefectType
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.NodeID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.DefectType{}, nil
	}
	if err != nil {
		return entities.DefectType{}, storeErr("get defect type", err)
	}
	return t, nil
}

func (r *CatalogSQLRepository) ListWorkers(ctx context.Context) ([]entities.Worker, error) {
	query, args, err := r.db.Builder().Select("id", "name", "role", "status").From("workers").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list workers: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list workers", err)
	}
	defer rows.Close()

	var out []entities.Worker
	for rows.Next() {
		var w entities.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Role, &w.Status); err != nil {
			return nil, storeErr("scan worker", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list workers", err)
	}
	return out, nil
}

func (r *CatalogSQLRepository) GetWorker(ctx context.Context, id int64) (entities.Worker, error) {
	query, args, err := r.db.Builder().Select("id", "name", "role", "status").From("workers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entities.Worker{}, fmt.Errorf("build get worker: %w", err)
	}
	var w entities.Worker
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.Name, &w.Role, &w.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Worker{}, nil
	}
	if err != nil {
		return entities.Worker{}, storeErr("get worker", err)
	}
	return w, nil
}

func (r *CatalogSQLRepository) GetWarehouseItem(ctx context.Context, id int64) (entities.WarehouseItem, error) {
	query, args, err := r.db.Builder().Select("id", "name", "brand", "price_cents", "quantity").From("warehouse_items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entities.WarehouseItem{}, fmt.Errorf("build get warehouse item: %w", err)
	}
	var item entities.WarehouseItem
	var price int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.Name, &item.Brand, &price, &item.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.WarehouseItem{}, nil
	}
	if err != nil {
		return entities.WarehouseItem{}, storeErr("get warehouse item", err)
	}
	item.Price = workflow.FromMinorUnits(price)
	return item, nil
}

func (r *CatalogSQLRepository) UpsertService(ctx context.Context, s entities.Service) error {
	query, args, err := r.db.Builder().Insert("services").
		Columns("id", "name", "price_cents", "active").
		Values(s.ID, s.Name, workflow.ToMinorUnits(s.Price), s.Active).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = excluded.name, price_cents = excluded.price_cents, active = excluded.active").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert service: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeErr("upsert service", err)
	}
	return nil
}

// UpsertDefectNode writes the node and each of its types.
func (r *CatalogSQLRepository) UpsertDefectNode(ctx context.Context, n entities.DefectNode) error {
	sb := r.db.Builder()
	query, args, err := sb.Insert("defect_nodes").
		Columns("id", "name").
		Values(n.ID, n.Name).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = excluded.name").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert defect node: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeErr("upsert defect node", err)
	}

	for _, t := range n.Types {
		query, args, err := sb.Insert("defect_types").
			Columns("id", "node_id", "name").
			Values(t.ID, n.ID, t.Name).
			Suffix("ON CONFLICT (id) DO UPDATE SET node_id = excluded.node_id, name = excluded.name").
			ToSql()
		if err != nil {
			return fmt.Errorf("build upsert defect type: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return storeErr("upsert defect type", err)
		}
	}
	return nil
}

func (r *CatalogSQLRepository) UpsertWorker(ctx context.Context, w entities.Worker) error {
	status := w.Status
	if status == "" {
		status = entities.WorkerStatusActive
	}
	query, args, err := r.db.Builder().Insert("workers").
		Columns("id", "name", "role", "status").
		Values(w.ID, w.Name, string(w.Role), string(status)).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = excluded.name, role = excluded.role, status = excluded.status").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert worker: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeErr("upsert worker", err)
	}
	return nil
}

func (r *CatalogSQLRepository) UpsertWarehouseItem(ctx context.Context, item entities.WarehouseItem) error {
	query, args, err := r.db.Builder().Insert("warehouse_items").
		Columns("id", "name", "brand", "price_cents", "quantity").
		Values(item.ID, item.Name, item.Brand, workflow.ToMinorUnits(item.Price), item.Quantity).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = excluded.name, brand = excluded.brand, price_cents = excluded.price_cents, quantity = excluded.quantity").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert warehouse item: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeErr("upsert warehouse item", err)
	}
	return nil
}

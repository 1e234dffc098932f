package usecase

import (
	"context"
	"fmt"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// ProposalInput is the batch a parts clerk submits for client approval.
type ProposalInput struct {
	Works []workflow.WorkInput
	Parts []workflow.PartInput
}

// LineItems is the read model of an order's defects and priced items.
type LineItems struct {
	OrderID        int64
	Status         entities.OrderStatus
	Defects        []entities.Defect
	Works          []entities.WorkItem
	Parts          []entities.PartItem
	ProposedTotal  decimal.Decimal
	ConfirmedTotal decimal.Decimal
}

// ILineItemUseCase covers diagnosis and proposal editing.
type ILineItemUseCase interface {
	SubmitDiagnosis(ctx context.Context, orderID int64, actor entities.Actor, defects []workflow.DefectInput, expectedVersion *int64) (entities.OrderSnapshot, error)
	ProposeLineItems(ctx context.Context, orderID int64, actor entities.Actor, in ProposalInput, expectedVersion *int64) (entities.OrderSnapshot, error)
	AddWorkItem(ctx context.Context, orderID int64, actor entities.Actor, in workflow.WorkInput, expectedVersion *int64) (entities.OrderSnapshot, error)
	AddPartItem(ctx context.Context, orderID int64, actor entities.Actor, in workflow.PartInput, expectedVersion *int64) (entities.OrderSnapshot, error)
	RemoveWorkItem(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error)
	RemovePartItem(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error)
	ListItems(ctx context.Context, orderID int64) (LineItems, error)
}

type LineItemUseCase struct {
	runner  *CommandRunner
	repo    interfaces.IOrderRepository
	catalog interfaces.ICatalogRepository
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(runner *CommandRunner, repo interfaces.IOrderRepository, catalog interfaces.ICatalogRepository) *LineItemUseCase {
	return &LineItemUseCase{runner: runner, repo: repo, catalog: catalog}
}

func (u *LineItemUseCase) SubmitDiagnosis(ctx context.Context, orderID int64, actor entities.Actor, defects []workflow.DefectInput, expectedVersion *int64) (entities.OrderSnapshot, error) {
	if len(defects) == 0 {
		return entities.OrderSnapshot{}, fmt.Errorf("%w: at least one defect is required", workflow.ErrInvalidLineItem)
	}
	// Catalog reads happen before the transaction: SQLite runs on a single connection.
	for _, d := range defects {
		if d.DefectTypeID <= 0 {
			continue
		}
		dt, err := u.catalog.GetDefectType(ctx, d.DefectTypeID)
		if err != nil {
			return entities.OrderSnapshot{}, err
		}
		if dt.ID == 0 {
			return entities.OrderSnapshot{}, fmt.Errorf("%w: unknown defect type %d", workflow.ErrInvalidLineItem, d.DefectTypeID)
		}
	}

	cmd := command{name: "submit_diagnosis", orderID: orderID, actor: actor, action: workflow.ActionSubmitDiagnosis, expectedVersion: expectedVersion}
	return u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		items := make([]entities.Defect, 0, len(defects))
		for _, in := range defects {
			d, err := workflow.NewDefect(ex.snap.Order.ID, actor.ID, in, ex.now)
			if err != nil {
				return err
			}
			items = append(items, d)
		}
		created, err := ex.tx.InsertDefects(ctx, items)
		if err != nil {
			return err
		}
		ex.snap.Defects = append(ex.snap.Defects, created...)
		return ex.move(workflow.ActionSubmitDiagnosis)
	})
}

func (u *LineItemUseCase) ProposeLineItems(ctx context.Context, orderID int64, actor entities.Actor, in ProposalInput, expectedVersion *int64) (entities.OrderSnapshot, error) {
	refs, err := u.lookupRefs(ctx, in.Works, in.Parts)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}

	cmd := command{name: "submit_proposal", orderID: orderID, actor: actor, action: workflow.ActionSubmitProposal, expectedVersion: expectedVersion}
	return u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		if err := ex.addItems(ctx, refs, in.Works, in.Parts); err != nil {
			return err
		}
		if len(ex.snap.Works)+len(ex.snap.Parts) == 0 {
			return fmt.Errorf("%w: proposal is empty", workflow.ErrInvalidLineItem)
		}
		return ex.move(workflow.ActionSubmitProposal)
	})
}

func (u *LineItemUseCase) AddWorkItem(ctx context.Context, orderID int64, actor entities.Actor, in workflow.WorkInput, expectedVersion *int64) (entities.OrderSnapshot, error) {
	works := []workflow.WorkInput{in}
	refs, err := u.lookupRefs(ctx, works, nil)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}
	return u.edit(ctx, "add_work_item", orderID, actor, expectedVersion, func(ctx context.Context, ex *execution) error {
		return ex.addItems(ctx, refs, works, nil)
	})
}

func (u *LineItemUseCase) AddPartItem(ctx context.Context, orderID int64, actor entities.Actor, in workflow.PartInput, expectedVersion *int64) (entities.OrderSnapshot, error) {
	parts := []workflow.PartInput{in}
	refs, err := u.lookupRefs(ctx, nil, parts)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}
	return u.edit(ctx, "add_part_item", orderID, actor, expectedVersion, func(ctx context.Context, ex *execution) error {
		return ex.addItems(ctx, refs, nil, parts)
	})
}

func (u *LineItemUseCase) RemoveWorkItem(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error) {
	return u.edit(ctx, "remove_work_item", orderID, actor, expectedVersion, func(ctx context.Context, ex *execution) error {
		i, err := workflow.FindWork(ex.snap, itemID)
		if err != nil {
			return err
		}
		if err := ex.tx.DeleteWorkItem(ctx, ex.snap.Order.ID, itemID); err != nil {
			return err
		}
		ex.snap.Works = append(ex.snap.Works[:i:i], ex.snap.Works[i+1:]...)
		return nil
	})
}

func (u *LineItemUseCase) RemovePartItem(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error) {
	return u.edit(ctx, "remove_part_item", orderID, actor, expectedVersion, func(ctx context.Context, ex *execution) error {
		i, err := workflow.FindPart(ex.snap, itemID)
		if err != nil {
			return err
		}
		if err := ex.tx.DeletePartItem(ctx, ex.snap.Order.ID, itemID); err != nil {
			return err
		}
		ex.snap.Parts = append(ex.snap.Parts[:i:i], ex.snap.Parts[i+1:]...)
		return nil
	})
}

func (u *LineItemUseCase) ListItems(ctx context.Context, orderID int64) (LineItems, error) {
	snap, err := getSnapshot(ctx, u.repo, orderID)
	if err != nil {
		return LineItems{}, err
	}
	proposed := decimal.Zero
	for _, w := range snap.Works {
		proposed = proposed.Add(w.Price)
	}
	for _, p := range snap.Parts {
		proposed = proposed.Add(p.LineTotal())
	}
	return LineItems{
		OrderID:        snap.Order.ID,
		Status:         snap.Order.Status,
		Defects:        snap.Defects,
		Works:          snap.Works,
		Parts:          snap.Parts,
		ProposedTotal:  proposed,
		ConfirmedTotal: workflow.ConfirmedTotal(snap.Works, snap.Parts),
	}, nil
}

func (u *LineItemUseCase) edit(ctx context.Context, name string, orderID int64, actor entities.Actor, expectedVersion *int64, body func(ctx context.Context, ex *execution) error) (entities.OrderSnapshot, error) {
	cmd := command{name: name, orderID: orderID, actor: actor, action: workflow.ActionEditProposal, expectedVersion: expectedVersion}
	return u.runner.run(ctx, cmd, body)
}

// catalogRefs holds the catalog entries referenced by a batch of inputs.
type catalogRefs struct {
	services map[int64]entities.Service
	stock    map[int64]entities.WarehouseItem
}

func (u *LineItemUseCase) lookupRefs(ctx context.Context, works []workflow.WorkInput, parts []workflow.PartInput) (catalogRefs, error) {
	refs := catalogRefs{services: map[int64]entities.Service{}, stock: map[int64]entities.WarehouseItem{}}
	for _, w := range works {
		if w.ServiceID == nil {
			continue
		}
		if _, ok := refs.services[*w.ServiceID]; ok {
			continue
		}
		svc, err := u.catalog.GetService(ctx, *w.ServiceID)
		if err != nil {
			return catalogRefs{}, err
		}
		if svc.ID == 0 {
			return catalogRefs{}, fmt.Errorf("%w: unknown service %d", workflow.ErrInvalidLineItem, *w.ServiceID)
		}
		refs.services[svc.ID] = svc
	}
	for _, p := range parts {
		if p.WarehouseItemID == nil {
			continue
		}
		if _, ok := refs.stock[*p.WarehouseItemID]; ok {
			continue
		}
		item, err := u.catalog.GetWarehouseItem(ctx, *p.WarehouseItemID)
		if err != nil {
			return catalogRefs{}, err
		}
		if item.ID == 0 {
			return catalogRefs{}, fmt.Errorf("%w: unknown warehouse item %d", workflow.ErrInvalidLineItem, *p.WarehouseItemID)
		}
		refs.stock[item.ID] = item
	}
	return refs, nil
}

// addItems validates and inserts new proposal items into the order.
func (e *execution) addItems(ctx context.Context, refs catalogRefs, works []workflow.WorkInput, parts []workflow.PartInput) error {
	orderID := e.snap.Order.ID

	newWorks := make([]entities.WorkItem, 0, len(works))
	for _, in := range works {
		if err := workflow.CheckDefectRef(e.snap, in.DefectID); err != nil {
			return err
		}
		var svc *entities.Service
		if in.ServiceID != nil {
			s := refs.services[*in.ServiceID]
			svc = &s
		}
		w, err := workflow.NewWorkItem(orderID, in, svc, e.now)
		if err != nil {
			return err
		}
		newWorks = append(newWorks, w)
	}

	newParts := make([]entities.PartItem, 0, len(parts))
	for _, in := range parts {
		var stock *entities.WarehouseItem
		if in.WarehouseItemID != nil {
			s := refs.stock[*in.WarehouseItemID]
			stock = &s
		}
		p, err := workflow.NewPartItem(orderID, in, stock, e.now)
		if err != nil {
			return err
		}
		newParts = append(newParts, p)
	}

	if len(newWorks) > 0 {
		created, err := e.tx.InsertWorkItems(ctx, newWorks)
		if err != nil {
			return err
		}
		e.snap.Works = append(e.snap.Works, created...)
	}
	if len(newParts) > 0 {
		created, err := e.tx.InsertPartItems(ctx, newParts)
		if err != nil {
			return err
		}
		e.snap.Parts = append(e.snap.Parts, created...)
	}
	return nil
}

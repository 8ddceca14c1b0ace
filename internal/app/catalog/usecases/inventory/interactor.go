package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/shared"
	"github.com/addismart/catalog-service/internal/pkg/clock"
	"github.com/addismart/catalog-service/internal/pkg/committer"
)

// Request adjusts the inventory counters for one product.
type Request struct {
	ProductID string
	Kind      string // domain.AdjustReserve etc.
	Quantity  int64
}

// Interactor covers all four inventory adjustments. Restock creates the
// inventory row the first time a product sees stock.
type Interactor struct {
	InventoryRepo contracts.InventoryRepo
	OutboxRepo    contracts.OutboxRepo
	Committer     contracts.Committer
	ReadModel     contracts.ReadModel
	Inventories   contracts.InventoryReadModel
	Clock         clock.Clock
}

func NewInteractor(invRepo contracts.InventoryRepo, outboxRepo contracts.OutboxRepo, c contracts.Committer, readModel contracts.ReadModel, inventories contracts.InventoryReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		InventoryRepo: invRepo,
		OutboxRepo:    outboxRepo,
		Committer:     c,
		ReadModel:     readModel,
		Inventories:   inventories,
		Clock:         clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	exists, err := it.ReadModel.ExistsByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	inv, created, err := it.loadOrCreate(ctx, req, now)
	if err != nil {
		return err
	}

	switch req.Kind {
	case domain.AdjustReserve:
		err = inv.Reserve(req.Quantity, now)
	case domain.AdjustRelease:
		err = inv.Release(req.Quantity, now)
	case domain.AdjustFulfill:
		err = inv.Fulfill(req.Quantity, now)
	case domain.AdjustRestock:
		err = inv.Restock(req.Quantity, now)
	default:
		return fmt.Errorf("unknown inventory adjustment %q", req.Kind)
	}
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	if created {
		plan.Add(it.InventoryRepo.InsertMut(inv))
	} else {
		plan.Add(it.InventoryRepo.UpdateMut(inv))
	}
	if err := shared.AddOutboxMuts(plan, it.OutboxRepo, inv.DomainEvents(), now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}

func (it *Interactor) loadOrCreate(ctx context.Context, req Request, now time.Time) (*domain.Inventory, bool, error) {
	d, err := it.Inventories.GetInventory(ctx, req.ProductID)
	if err == nil {
		return shared.InventoryFromDTO(d), false, nil
	}
	if !errors.Is(err, domain.ErrInventoryNotFound) {
		return nil, false, err
	}
	if req.Kind != domain.AdjustRestock {
		return nil, false, domain.ErrInventoryNotFound
	}

	inv := domain.NewInventory(uuid.New().String(), req.ProductID, 0, 0, now)
	return inv, true, nil
}

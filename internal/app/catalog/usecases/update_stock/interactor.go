package update_stock

import (
	"context"
	"errors"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/shared"
	"github.com/addismart/catalog-service/internal/pkg/clock"
	"github.com/addismart/catalog-service/internal/pkg/committer"
)

// Request adjusts a product's catalog stock by a signed delta.
type Request struct {
	ProductID string
	Delta     int64
}

type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(repo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, c contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: repo,
		OutboxRepo:  outboxRepo,
		Committer:   c,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

// Execute applies the delta and reports whether the product was found.
// An unknown id is not an error here, callers treat it as a no-op.
func (it *Interactor) Execute(ctx context.Context, req Request) (bool, error) {
	now := it.Clock.Now()

	d, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	product, err := shared.ProductFromDTO(d)
	if err != nil {
		return false, err
	}

	switch {
	case req.Delta > 0:
		err = product.IncreaseStock(req.Delta, now)
	case req.Delta < 0:
		err = product.ReduceStock(-req.Delta, now)
	default:
		return true, nil
	}
	if err != nil {
		return false, err
	}

	plan := committer.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if err := shared.AddOutboxMuts(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return false, err
	}
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return false, err
	}
	return true, nil
}

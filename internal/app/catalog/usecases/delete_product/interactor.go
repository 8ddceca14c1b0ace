package delete_product

import (
	"context"
	"errors"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/shared"
	"github.com/addismart/catalog-service/internal/pkg/clock"
	"github.com/addismart/catalog-service/internal/pkg/committer"
)

type Request struct {
	ProductID string
	DeletedBy string
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

// Execute soft-deletes a product. An unknown or already deleted id yields
// (false, nil), matching the catalog's delete-is-idempotent contract.
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

	product.Delete(req.DeletedBy, now)

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

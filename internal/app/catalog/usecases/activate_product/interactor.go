package activate_product

import (
	"context"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/shared"
	"github.com/addismart/catalog-service/internal/pkg/clock"
	"github.com/addismart/catalog-service/internal/pkg/committer"
)

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

func (it *Interactor) Execute(ctx context.Context, productID string) error {
	now := it.Clock.Now()

	d, err := it.ReadModel.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	product, err := shared.ProductFromDTO(d)
	if err != nil {
		return err
	}

	if err := product.Activate(now); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if err := shared.AddOutboxMuts(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}

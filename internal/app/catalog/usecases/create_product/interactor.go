package create_product

import (
	"context"

	"github.com/google/uuid"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/shared"
	"github.com/addismart/catalog-service/internal/pkg/clock"
	"github.com/addismart/catalog-service/internal/pkg/committer"
)

// Request is the application-level create-product request.
type Request struct {
	Name         string
	Sku          string
	Description  string
	PriceDecimal string
	Currency     string
	Category     string
	Brand        string
	InitialStock int64
	CreatedBy    string
}

// Interactor implements the create-product usecase. All row and outbox
// mutations land in a single commit.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(prodRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, c contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		OutboxRepo:  outboxRepo,
		Committer:   c,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

// Execute creates a new product and returns its id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	price, err := domain.NewMoneyFromDecimal(req.PriceDecimal, req.Currency)
	if err != nil {
		return "", err
	}

	product, err := domain.NewProduct(uuid.New().String(), req.Name, req.Sku,
		req.Description, price, req.Category, req.Brand, req.InitialStock,
		req.CreatedBy, now)
	if err != nil {
		return "", err
	}

	// Fast duplicate check; the unique index enforces it again at commit
	// for concurrent creates.
	taken, err := it.ReadModel.ExistsBySku(ctx, product.Sku())
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrSkuAlreadyExists
	}

	plan := committer.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))
	if err := shared.AddOutboxMuts(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}
	return product.ID(), nil
}

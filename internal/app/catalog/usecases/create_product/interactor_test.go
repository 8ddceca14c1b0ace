package create_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/repo"
	"github.com/addismart/catalog-service/internal/pkg/clock"
	"github.com/addismart/catalog-service/internal/pkg/committer"
)

type stubReadModel struct {
	contracts.ReadModel
	takenSkus map[string]bool
}

func (s *stubReadModel) ExistsBySku(_ context.Context, sku string) (bool, error) {
	return s.takenSkus[sku], nil
}

type stubCommitter struct {
	applied *committer.Plan
}

func (s *stubCommitter) Apply(_ context.Context, plan *committer.Plan) error {
	s.applied = plan
	return nil
}

func newInteractor(rm contracts.ReadModel) (*Interactor, *stubCommitter) {
	c := &stubCommitter{}
	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	return NewInteractor(repo.NewProductRepo(), repo.NewOutboxRepo(), c, rm, clk), c
}

func validRequest() Request {
	return Request{
		Name:         "Yirgacheffe Beans",
		Sku:          "ET-COFFEE-001",
		Description:  "Washed arabica, light roast",
		PriceDecimal: "450.00",
		Currency:     "ETB",
		Category:     "coffee",
		Brand:        "Addis Roasters",
		InitialStock: 100,
		CreatedBy:    "tester",
	}
}

func TestExecute_CreatesProductAndOutboxRow(t *testing.T) {
	it, c := newInteractor(&stubReadModel{takenSkus: map[string]bool{}})

	id, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NotNil(t, c.applied)
	// one product insert plus one created event
	assert.Len(t, c.applied.Mutations(), 2)
}

func TestExecute_DuplicateSku(t *testing.T) {
	it, c := newInteractor(&stubReadModel{takenSkus: map[string]bool{"ET-COFFEE-001": true}})

	_, err := it.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrSkuAlreadyExists)
	assert.Nil(t, c.applied)
}

func TestExecute_ValidationFailsBeforeStorage(t *testing.T) {
	it, c := newInteractor(&stubReadModel{takenSkus: map[string]bool{}})

	req := validRequest()
	req.Name = ""
	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmptyProductName)

	req = validRequest()
	req.InitialStock = -1
	_, err = it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNegativeInitialStock)

	req = validRequest()
	req.PriceDecimal = "-1.00"
	_, err = it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	assert.Nil(t, c.applied)
}

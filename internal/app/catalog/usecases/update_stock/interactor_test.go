package update_stock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/app/catalog/repo"
	"github.com/addismart/catalog-service/internal/pkg/clock"
	"github.com/addismart/catalog-service/internal/pkg/committer"
)

type stubReadModel struct {
	contracts.ReadModel
	products map[string]*dto.ProductDTO
}

func (s *stubReadModel) GetProduct(_ context.Context, id string) (*dto.ProductDTO, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrProductNotFound
}

type stubCommitter struct {
	applied *committer.Plan
}

func (s *stubCommitter) Apply(_ context.Context, plan *committer.Plan) error {
	s.applied = plan
	return nil
}

func productRow(id string, stock int64) *dto.ProductDTO {
	created := "2026-03-01T09:00:00Z"
	return &dto.ProductDTO{
		ProductID:     id,
		Name:          "Yirgacheffe Beans",
		Sku:           "ET-COFFEE-001",
		PriceCents:    45000,
		Currency:      "ETB",
		StockQuantity: stock,
		IsActive:      true,
		CreatedAt:     &created,
	}
}

func newInteractor(rm contracts.ReadModel) (*Interactor, *stubCommitter) {
	c := &stubCommitter{}
	clk := clock.NewFake(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	return NewInteractor(repo.NewProductRepo(), repo.NewOutboxRepo(), c, rm, clk), c
}

func TestExecute_IncreaseAndReduce(t *testing.T) {
	rm := &stubReadModel{products: map[string]*dto.ProductDTO{"p1": productRow("p1", 10)}}
	it, c := newInteractor(rm)

	found, err := it.Execute(context.Background(), Request{ProductID: "p1", Delta: 5})
	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, c.applied)
	assert.Len(t, c.applied.Mutations(), 2)

	found, err = it.Execute(context.Background(), Request{ProductID: "p1", Delta: -7})
	require.NoError(t, err)
	assert.True(t, found)
}

func TestExecute_UnknownIDIsNotAnError(t *testing.T) {
	it, c := newInteractor(&stubReadModel{products: map[string]*dto.ProductDTO{}})

	found, err := it.Execute(context.Background(), Request{ProductID: "missing", Delta: 5})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, c.applied)
}

func TestExecute_InsufficientStock(t *testing.T) {
	rm := &stubReadModel{products: map[string]*dto.ProductDTO{"p1": productRow("p1", 3)}}
	it, c := newInteractor(rm)

	_, err := it.Execute(context.Background(), Request{ProductID: "p1", Delta: -4})
	require.Error(t, err)
	assert.True(t, domain.IsInsufficientStock(err))

	var ise *domain.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, int64(4), ise.Requested)
	assert.Equal(t, int64(3), ise.Available)
	assert.Nil(t, c.applied)
}

func TestExecute_ZeroDeltaIsANoOp(t *testing.T) {
	rm := &stubReadModel{products: map[string]*dto.ProductDTO{"p1": productRow("p1", 3)}}
	it, c := newInteractor(rm)

	found, err := it.Execute(context.Background(), Request{ProductID: "p1", Delta: 0})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Nil(t, c.applied)
}

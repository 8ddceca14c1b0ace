package inventory

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
	knownProducts map[string]bool
}

func (s *stubReadModel) ExistsByID(_ context.Context, id string) (bool, error) {
	return s.knownProducts[id], nil
}

type stubInventories struct {
	rows map[string]*dto.InventoryDTO
}

func (s *stubInventories) GetInventory(_ context.Context, productID string) (*dto.InventoryDTO, error) {
	if r, ok := s.rows[productID]; ok {
		return r, nil
	}
	return nil, domain.ErrInventoryNotFound
}

type stubCommitter struct {
	applied *committer.Plan
}

func (s *stubCommitter) Apply(_ context.Context, plan *committer.Plan) error {
	s.applied = plan
	return nil
}

func inventoryRow(productID string, available, reserved int64) *dto.InventoryDTO {
	created := "2026-03-01T09:00:00Z"
	return &dto.InventoryDTO{
		InventoryID:      "inv-" + productID,
		ProductID:        productID,
		AvailableStock:   available,
		ReservedStock:    reserved,
		ReorderThreshold: 10,
		MaxStock:         1000,
		CreatedAt:        &created,
	}
}

func newInteractor(rows map[string]*dto.InventoryDTO) (*Interactor, *stubCommitter) {
	c := &stubCommitter{}
	clk := clock.NewFake(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	rm := &stubReadModel{knownProducts: map[string]bool{"p1": true}}
	return NewInteractor(repo.NewInventoryRepo(), repo.NewOutboxRepo(), c, rm, &stubInventories{rows: rows}, clk), c
}

func TestExecute_Reserve(t *testing.T) {
	it, c := newInteractor(map[string]*dto.InventoryDTO{"p1": inventoryRow("p1", 50, 0)})

	err := it.Execute(context.Background(), Request{ProductID: "p1", Kind: domain.AdjustReserve, Quantity: 20})
	require.NoError(t, err)
	require.NotNil(t, c.applied)
	// one inventory update plus the adjustment event
	assert.Len(t, c.applied.Mutations(), 2)
}

func TestExecute_ReserveBeyondAvailable(t *testing.T) {
	it, c := newInteractor(map[string]*dto.InventoryDTO{"p1": inventoryRow("p1", 50, 45)})

	err := it.Execute(context.Background(), Request{ProductID: "p1", Kind: domain.AdjustReserve, Quantity: 10})
	assert.True(t, domain.IsInsufficientStock(err))
	assert.Nil(t, c.applied)
}

func TestExecute_RestockCreatesRow(t *testing.T) {
	it, c := newInteractor(map[string]*dto.InventoryDTO{})

	err := it.Execute(context.Background(), Request{ProductID: "p1", Kind: domain.AdjustRestock, Quantity: 30})
	require.NoError(t, err)
	require.NotNil(t, c.applied)
	assert.Len(t, c.applied.Mutations(), 2)
}

func TestExecute_NonRestockNeedsExistingRow(t *testing.T) {
	it, c := newInteractor(map[string]*dto.InventoryDTO{})

	err := it.Execute(context.Background(), Request{ProductID: "p1", Kind: domain.AdjustRelease, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
	assert.Nil(t, c.applied)
}

func TestExecute_UnknownProduct(t *testing.T) {
	it, c := newInteractor(map[string]*dto.InventoryDTO{})

	err := it.Execute(context.Background(), Request{ProductID: "ghost", Kind: domain.AdjustRestock, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Nil(t, c.applied)
}

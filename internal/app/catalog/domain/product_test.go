package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, decimal, currency string) *Money {
	t.Helper()
	m, err := NewMoneyFromDecimal(decimal, currency)
	require.NoError(t, err)
	return m
}

func newTestProduct(t *testing.T, now time.Time) *Product {
	t.Helper()
	p, err := NewProduct("prod-1", "Yirgacheffe Coffee", "ET-COFFEE-001", "Washed, light roast",
		mustMoney(t, "450.00", "ETB"), "coffee", "Addis Roasters", 100, "tester", now)
	require.NoError(t, err)
	return p
}

func TestNewProduct_Defaults(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	assert.Equal(t, "prod-1", p.ID())
	assert.Equal(t, int64(100), p.StockQuantity())
	assert.True(t, p.IsActive())
	assert.False(t, p.IsDeleted())
	assert.Zero(t, p.AverageRating())
	assert.Zero(t, p.ReviewCount())
	assert.Nil(t, p.DiscountPrice())
	assert.Equal(t, now, p.CreatedAt())

	events := p.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "product.created", events[0].EventType())
}

func TestNewProduct_Validation(t *testing.T) {
	now := time.Now().UTC()
	price := mustMoney(t, "10.00", "USD")

	_, err := NewProduct("id", "", "SKU-1", "", price, "", "", 0, "", now)
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct("id", "Name", "  ", "", price, "", "", 0, "", now)
	assert.ErrorIs(t, err, ErrEmptySku)

	_, err = NewProduct("id", "Name", "SKU-1", "", nil, "", "", 0, "", now)
	assert.ErrorIs(t, err, ErrPriceRequired)

	_, err = NewProduct("id", "Name", "SKU-1", "", mustMoney(t, "0", "USD"), "", "", 0, "", now)
	assert.ErrorIs(t, err, ErrNonPositivePrice)

	_, err = NewProduct("id", "Name", "SKU-1", "", price, "", "", -1, "", now)
	assert.ErrorIs(t, err, ErrNegativeInitialStock)

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	_, err = NewProduct("id", string(long), "SKU-1", "", price, "", "", 0, "", now)
	assert.ErrorIs(t, err, ErrProductNameTooLong)
}

func TestReduceStock(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	require.NoError(t, p.ReduceStock(30, now))
	assert.Equal(t, int64(70), p.StockQuantity())
	assert.True(t, p.Changes().Dirty(FieldStockQuantity))

	err := p.ReduceStock(0, now)
	assert.ErrorIs(t, err, ErrNonPositiveQuantity)

	err = p.ReduceStock(71, now)
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(71), insufficient.Requested)
	assert.Equal(t, int64(70), insufficient.Available)
	// state unchanged on failure
	assert.Equal(t, int64(70), p.StockQuantity())
}

func TestIncreaseThenReduceStockRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	require.NoError(t, p.IncreaseStock(25, now))
	require.NoError(t, p.ReduceStock(25, now))
	assert.Equal(t, int64(100), p.StockQuantity())
}

func TestUpdatePrice(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	err := p.UpdatePrice(nil, now)
	assert.ErrorIs(t, err, ErrPriceRequired)

	newPrice := mustMoney(t, "475.50", "ETB")
	require.NoError(t, p.UpdatePrice(newPrice, now))
	assert.True(t, p.Price().Equals(newPrice))
	assert.True(t, p.Changes().Dirty(FieldPrice))
}

func TestUpdateAverageRating_IncrementalMean(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	require.NoError(t, p.UpdateAverageRating(4, now))
	assert.Equal(t, float64(4), p.AverageRating())
	assert.Equal(t, int64(1), p.ReviewCount())

	require.NoError(t, p.UpdateAverageRating(2, now))
	assert.Equal(t, float64(3), p.AverageRating())
	assert.Equal(t, int64(2), p.ReviewCount())

	err := p.UpdateAverageRating(5.1, now)
	assert.ErrorIs(t, err, ErrInvalidRating)
	err = p.UpdateAverageRating(-0.1, now)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestApplyAndRemoveDiscount(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	err := p.ApplyDiscount(101, now)
	assert.ErrorIs(t, err, ErrInvalidDiscountPercentage)
	err = p.ApplyDiscount(-1, now)
	assert.ErrorIs(t, err, ErrInvalidDiscountPercentage)

	require.NoError(t, p.ApplyDiscount(10, now))
	require.NotNil(t, p.DiscountPrice())
	assert.Equal(t, "405.00", p.DiscountPrice().Decimal())
	assert.True(t, p.CurrentPrice().Equals(p.DiscountPrice()))

	p.RemoveDiscount(now)
	assert.Nil(t, p.DiscountPrice())
	assert.True(t, p.CurrentPrice().Equals(p.Price()))
}

func TestDeleteRestoreRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	p.Delete("admin", now)
	assert.True(t, p.IsDeleted())
	assert.False(t, p.IsActive())
	require.NotNil(t, p.DeletedAt())
	assert.Equal(t, "admin", p.UpdatedBy())

	p.Restore(now)
	assert.False(t, p.IsDeleted())
	assert.True(t, p.IsActive())
	assert.Nil(t, p.DeletedAt())
}

func TestActivateDeactivate(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	p.Deactivate(now)
	assert.False(t, p.IsActive())

	require.NoError(t, p.Activate(now))
	assert.True(t, p.IsActive())

	p.Delete("admin", now)
	err := p.Activate(now)
	assert.ErrorIs(t, err, ErrProductDeleted)
	assert.False(t, p.IsActive())
}

func TestStockPredicates(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	assert.True(t, p.IsInStock())
	assert.True(t, p.HasSufficientStock(100))
	assert.False(t, p.HasSufficientStock(101))

	require.NoError(t, p.ReduceStock(100, now))
	assert.True(t, p.IsOutOfStock())
}

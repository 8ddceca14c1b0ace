package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/models/m_inventory"
	"github.com/addismart/catalog-service/internal/models/m_product"
)

func newRepoTestProduct(t *testing.T) *domain.Product {
	t.Helper()

	price, err := domain.NewMoneyFromDecimal("450.00", "ETB")
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p, err := domain.NewProduct("prod-1", "Yirgacheffe Beans", "ET-COFFEE-001",
		"Washed arabica, light roast", price, "coffee", "Addis Roasters", 100, "tester", now)
	require.NoError(t, err)
	return p
}

// TestInsertMut_Values inspects the insert values map directly rather than
// the spanner.Mutation internals.
func TestInsertMut_Values(t *testing.T) {
	r := NewProductRepo()
	p := newRepoTestProduct(t)

	values := buildInsertValues(p)
	require.NotNil(t, values)

	assert.Equal(t, "prod-1", values[m_product.ColProductID])
	assert.Equal(t, "ET-COFFEE-001", values[m_product.ColSku])
	assert.Equal(t, int64(45000), values[m_product.ColPriceCents])
	assert.Equal(t, "ETB", values[m_product.ColCurrency])
	assert.Equal(t, int64(100), values[m_product.ColStockQuantity])
	assert.Equal(t, true, values[m_product.ColIsActive])
	assert.Equal(t, false, values[m_product.ColIsDeleted])

	// no discount yet
	v, ok := values[m_product.ColDiscountPriceCents]
	require.True(t, ok, "expected key %s in insert map", m_product.ColDiscountPriceCents)
	assert.Nil(t, v)

	v, ok = values[m_product.ColDeletedAt]
	require.True(t, ok, "expected key %s in insert map", m_product.ColDeletedAt)
	assert.Nil(t, v)

	require.NotNil(t, r.InsertMut(p))
}

// TestUpdateMut_NoChanges verifies a clean aggregate produces no mutation.
func TestUpdateMut_NoChanges(t *testing.T) {
	r := NewProductRepo()
	p := newRepoTestProduct(t)
	p.Changes().Clear()

	assert.Nil(t, r.UpdateMut(p))
}

// TestUpdateMut_PriceChange verifies only dirty fields reach the update map.
func TestUpdateMut_PriceChange(t *testing.T) {
	r := NewProductRepo()
	p := newRepoTestProduct(t)
	p.Changes().Clear()

	newPrice, err := domain.NewMoneyFromDecimal("475.50", "ETB")
	require.NoError(t, err)
	require.NoError(t, p.UpdatePrice(newPrice, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	require.True(t, p.Changes().Dirty(domain.FieldPrice))
	require.NotNil(t, r.UpdateMut(p))
}

func TestUpdateMut_DeleteStampsDeletedAt(t *testing.T) {
	r := NewProductRepo()
	p := newRepoTestProduct(t)
	p.Changes().Clear()

	p.Delete("admin", time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC))

	require.True(t, p.Changes().Dirty(domain.FieldIsDeleted))
	require.NotNil(t, r.UpdateMut(p))
}

func TestInventoryRepo_InsertAndUpdate(t *testing.T) {
	r := NewInventoryRepo()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	inv := domain.NewInventory("inv-1", "prod-1", 0, 0, now)

	values := buildInventoryInsertValues(inv)
	assert.Equal(t, "inv-1", values[m_inventory.ColInventoryID])
	assert.Equal(t, "prod-1", values[m_inventory.ColProductID])
	assert.Equal(t, int64(domain.DefaultReorderThreshold), values[m_inventory.ColReorderThreshold])
	assert.Equal(t, int64(domain.DefaultMaxStock), values[m_inventory.ColMaxStock])
	require.NotNil(t, r.InsertMut(inv))

	inv.Changes().Clear()
	assert.Nil(t, r.UpdateMut(inv))

	require.NoError(t, inv.Restock(50, now.Add(time.Hour)))
	require.NotNil(t, r.UpdateMut(inv))
}

package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/check_stock"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/low_stock"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/search_products"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/apply_discount"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/create_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/delete_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/inventory"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/update_stock"
)

func uniqueSku() string {
	return "SKU-" + uuid.New().String()[:8]
}

func createRequest(sku string) create_product.Request {
	return create_product.Request{
		Name:         "Yirgacheffe Beans",
		Sku:          sku,
		Description:  "Washed arabica, light roast",
		PriceDecimal: "450.00",
		Currency:     "ETB",
		Category:     "coffee",
		Brand:        "Addis Roasters",
		InitialStock: 100,
		CreatedBy:    "e2e",
	}
}

func TestProductCreationFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sku := uniqueSku()
	productID, err := createUC.Execute(ctx, createRequest(sku))
	require.NoError(t, err)
	require.NotEmpty(t, productID)

	getQ := get_product.NewHandler(readModel)
	prod, err := getQ.Execute(ctx, productID)
	require.NoError(t, err)

	assert.Equal(t, "Yirgacheffe Beans", prod.Name)
	assert.Equal(t, sku, prod.Sku)
	assert.Equal(t, int64(45000), prod.PriceCents)
	assert.Equal(t, "ETB", prod.Currency)
	assert.Equal(t, int64(100), prod.StockQuantity)
	assert.True(t, prod.IsActive)

	bySku, err := getQ.ExecuteBySku(ctx, sku)
	require.NoError(t, err)
	assert.Equal(t, productID, bySku.ProductID)

	events := mustFetchOutboxEvents(ctx, t, spClient, productID)
	require.Len(t, events, 1)
	assert.Equal(t, "product.created", events[0].EventType)
	assert.Equal(t, "pending", events[0].Status)
}

func TestDuplicateSkuRejected(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sku := uniqueSku()
	_, err := createUC.Execute(ctx, createRequest(sku))
	require.NoError(t, err)

	_, err = createUC.Execute(ctx, createRequest(sku))
	assert.ErrorIs(t, err, domain.ErrSkuAlreadyExists)
}

func TestStockAdjustmentFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID, err := createUC.Execute(ctx, createRequest(uniqueSku()))
	require.NoError(t, err)

	found, err := updateStockUC.Execute(ctx, update_stock.Request{ProductID: productID, Delta: -95})
	require.NoError(t, err)
	require.True(t, found)

	checkQ := check_stock.NewHandler(readModel)
	status, err := checkQ.Execute(ctx, productID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), status.AvailableQuantity)
	assert.False(t, status.IsAvailable)
	assert.True(t, status.IsLowStock)

	lowQ := low_stock.NewHandler(readModel)
	rows, err := lowQ.Execute(ctx, 10)
	require.NoError(t, err)
	seen := false
	for _, r := range rows {
		if r.ProductID == productID {
			seen = true
		}
	}
	assert.True(t, seen, "product should appear in the low-stock listing")

	// Over-reduction leaves state untouched.
	_, err = updateStockUC.Execute(ctx, update_stock.Request{ProductID: productID, Delta: -6})
	assert.True(t, domain.IsInsufficientStock(err))

	// Unknown id is a quiet no-op.
	found, err = updateStockUC.Execute(ctx, update_stock.Request{ProductID: "no-such-id", Delta: 1})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDiscountFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID, err := createUC.Execute(ctx, createRequest(uniqueSku()))
	require.NoError(t, err)

	require.NoError(t, applyDisUC.Execute(ctx, apply_discount.Request{
		ProductID:  productID,
		Percentage: 10,
	}))

	getQ := get_product.NewHandler(readModel)
	prod, err := getQ.Execute(ctx, productID)
	require.NoError(t, err)
	require.NotNil(t, prod.DiscountPriceCents)
	// 450.00 minus 10%
	assert.Equal(t, int64(40500), *prod.DiscountPriceCents)
}

func TestDeleteAndRestoreFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sku := uniqueSku()
	productID, err := createUC.Execute(ctx, createRequest(sku))
	require.NoError(t, err)

	found, err := deleteUC.Execute(ctx, delete_product.Request{ProductID: productID, DeletedBy: "e2e"})
	require.NoError(t, err)
	require.True(t, found)

	// Deleted rows vanish from reads.
	getQ := get_product.NewHandler(readModel)
	_, err = getQ.Execute(ctx, productID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	// The SKU is reusable while the row is deleted.
	otherID, err := createUC.Execute(ctx, createRequest(sku))
	require.NoError(t, err)
	_, err = deleteUC.Execute(ctx, delete_product.Request{ProductID: otherID, DeletedBy: "e2e"})
	require.NoError(t, err)

	require.NoError(t, restoreUC.Execute(ctx, productID))
	prod, err := getQ.Execute(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, sku, prod.Sku)
}

func TestSearchFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := createRequest(uniqueSku())
	req.Name = "Sidamo Espresso Blend"
	productID, err := createUC.Execute(ctx, req)
	require.NoError(t, err)

	searchQ := search_products.NewHandler(readModel)
	rows, err := searchQ.Execute(ctx, "sidamo", 1, 20)
	require.NoError(t, err)

	seen := false
	for _, r := range rows {
		if r.ProductID == productID {
			seen = true
		}
	}
	assert.True(t, seen, "case-insensitive search should find the product")
}

func TestInventoryFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID, err := createUC.Execute(ctx, createRequest(uniqueSku()))
	require.NoError(t, err)

	// First restock creates the row.
	require.NoError(t, inventoryUC.Execute(ctx, inventory.Request{
		ProductID: productID, Kind: domain.AdjustRestock, Quantity: 50,
	}))
	require.NoError(t, inventoryUC.Execute(ctx, inventory.Request{
		ProductID: productID, Kind: domain.AdjustReserve, Quantity: 20,
	}))
	require.NoError(t, inventoryUC.Execute(ctx, inventory.Request{
		ProductID: productID, Kind: domain.AdjustFulfill, Quantity: 15,
	}))

	inv, err := inventories.GetInventory(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(35), inv.AvailableStock)
	assert.Equal(t, int64(5), inv.ReservedStock)

	err = inventoryUC.Execute(ctx, inventory.Request{
		ProductID: productID, Kind: domain.AdjustRelease, Quantity: 6,
	})
	assert.ErrorIs(t, err, domain.ErrReleaseExceedsReserved)
}

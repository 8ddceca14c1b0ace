package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/featured_products"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/get_inventory"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/low_stock"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/search_products"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ      *get_product.SpannerGetProductQuery
	listQ     *list_products.SpannerListProductsQuery
	searchQ   *search_products.SpannerSearchProductsQuery
	featuredQ *featured_products.SpannerFeaturedProductsQuery
	lowStockQ *low_stock.SpannerLowStockQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:      get_product.NewSpannerGetProductQuery(client),
		listQ:     list_products.NewSpannerListProductsQuery(client),
		searchQ:   search_products.NewSpannerSearchProductsQuery(client),
		featuredQ: featured_products.NewSpannerFeaturedProductsQuery(client),
		lowStockQ: low_stock.NewSpannerLowStockQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) GetProductBySku(ctx context.Context, sku string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProductBySku(ctx, sku)
}

func (rm *SpannerReadModel) GetProductAnyState(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProductAnyState(ctx, productID)
}

func (rm *SpannerReadModel) ListAll(ctx context.Context) ([]*dto.ProductDTO, error) {
	return rm.listQ.ListAll(ctx)
}

func (rm *SpannerReadModel) ListByCategory(ctx context.Context, category string, page, pageSize int64) ([]*dto.ProductDTO, error) {
	return rm.listQ.ListByCategory(ctx, category, page, pageSize)
}

func (rm *SpannerReadModel) Search(ctx context.Context, term string, page, pageSize int64) ([]*dto.ProductDTO, error) {
	return rm.searchQ.Search(ctx, term, page, pageSize)
}

func (rm *SpannerReadModel) ListFeatured(ctx context.Context, count int64) ([]*dto.ProductDTO, error) {
	return rm.featuredQ.ListFeatured(ctx, count)
}

func (rm *SpannerReadModel) ListLowStock(ctx context.Context, threshold int64) ([]*dto.ProductDTO, error) {
	return rm.lowStockQ.ListLowStock(ctx, threshold)
}

func (rm *SpannerReadModel) ExistsByID(ctx context.Context, productID string) (bool, error) {
	return rm.getQ.ExistsByID(ctx, productID)
}

func (rm *SpannerReadModel) ExistsBySku(ctx context.Context, sku string) (bool, error) {
	return rm.getQ.ExistsBySku(ctx, sku)
}

func (rm *SpannerReadModel) CountActive(ctx context.Context) (int64, error) {
	return rm.listQ.CountActive(ctx)
}

// SpannerInventoryReadModel satisfies contracts.InventoryReadModel.
type SpannerInventoryReadModel struct {
	invQ *get_inventory.SpannerGetInventoryQuery
}

func NewSpannerInventoryReadModel(client *spanner.Client) *SpannerInventoryReadModel {
	return &SpannerInventoryReadModel{invQ: get_inventory.NewSpannerGetInventoryQuery(client)}
}

func (rm *SpannerInventoryReadModel) GetInventory(ctx context.Context, productID string) (*dto.InventoryDTO, error) {
	return rm.invQ.GetInventory(ctx, productID)
}

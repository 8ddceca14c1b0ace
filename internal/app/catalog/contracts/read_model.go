package contracts

import (
	"context"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
)

// ReadModel is the query-side contract over the products table. All lookups
// exclude soft-deleted rows unless the method says otherwise.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	GetProductBySku(ctx context.Context, sku string) (*dto.ProductDTO, error)

	// GetProductAnyState fetches a product regardless of its deleted flag.
	// Restore is the only caller; everything else goes through GetProduct.
	GetProductAnyState(ctx context.Context, productID string) (*dto.ProductDTO, error)

	ListAll(ctx context.Context) ([]*dto.ProductDTO, error)
	ListByCategory(ctx context.Context, category string, page, pageSize int64) ([]*dto.ProductDTO, error)
	Search(ctx context.Context, term string, page, pageSize int64) ([]*dto.ProductDTO, error)
	ListFeatured(ctx context.Context, count int64) ([]*dto.ProductDTO, error)
	ListLowStock(ctx context.Context, threshold int64) ([]*dto.ProductDTO, error)

	ExistsByID(ctx context.Context, productID string) (bool, error)
	ExistsBySku(ctx context.Context, sku string) (bool, error)
	CountActive(ctx context.Context) (int64, error)
}

// InventoryReadModel is the query-side contract over the inventories table.
type InventoryReadModel interface {
	GetInventory(ctx context.Context, productID string) (*dto.InventoryDTO, error)
}

package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
)

// InventoryRepo is the write-side repository interface for inventories.
// Methods return Spanner mutations; they do not apply them.
type InventoryRepo interface {
	InsertMut(inv *domain.Inventory) *spanner.Mutation
	UpdateMut(inv *domain.Inventory) *spanner.Mutation
}

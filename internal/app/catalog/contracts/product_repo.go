package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
)

// ProductRepo is the write-side repository interface for products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// InsertMut returns a mutation that inserts the product (or nil if none).
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns a mutation that updates the product according to its
	// ChangeTracker (or nil when nothing changed).
	UpdateMut(p *domain.Product) *spanner.Mutation
}

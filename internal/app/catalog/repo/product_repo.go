package repo

import (
	"math"

	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	values := map[string]interface{}{
		m_product.ColProductID:     p.ID(),
		m_product.ColName:          p.Name(),
		m_product.ColSku:           p.Sku(),
		m_product.ColDescription:   optString(p.Description()),
		m_product.ColPriceCents:    p.Price().Cents(),
		m_product.ColCurrency:      p.Price().Currency(),
		m_product.ColStockQuantity: p.StockQuantity(),
		m_product.ColCategory:      optString(p.Category()),
		m_product.ColBrand:         optString(p.Brand()),
		m_product.ColAverageRating: roundRating(p.AverageRating()),
		m_product.ColReviewCount:   p.ReviewCount(),
		m_product.ColIsActive:      p.IsActive(),
		m_product.ColIsDeleted:     p.IsDeleted(),
		m_product.ColCreatedAt:     p.CreatedAt().UTC(),
		m_product.ColCreatedBy:     optString(p.CreatedBy()),
		m_product.ColUpdatedBy:     optString(p.UpdatedBy()),
	}

	if d := p.DiscountPrice(); d != nil {
		values[m_product.ColDiscountPriceCents] = d.Cents()
	} else {
		values[m_product.ColDiscountPriceCents] = nil
	}
	if t := p.DeletedAt(); t != nil {
		values[m_product.ColDeletedAt] = t.UTC()
	} else {
		values[m_product.ColDeletedAt] = nil
	}
	if t := p.UpdatedAt(); t != nil {
		values[m_product.ColUpdatedAt] = t.UTC()
	} else {
		values[m_product.ColUpdatedAt] = nil
	}

	return values
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
// It updates only dirty fields and always stamps updated_at when there are changes.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if p.Changes().Dirty(domain.FieldName) {
		updates[m_product.ColName] = p.Name()
	}
	if p.Changes().Dirty(domain.FieldDescription) {
		updates[m_product.ColDescription] = optString(p.Description())
	}
	if p.Changes().Dirty(domain.FieldPrice) {
		updates[m_product.ColPriceCents] = p.Price().Cents()
		updates[m_product.ColCurrency] = p.Price().Currency()
	}
	if p.Changes().Dirty(domain.FieldStockQuantity) {
		updates[m_product.ColStockQuantity] = p.StockQuantity()
	}
	if p.Changes().Dirty(domain.FieldCategory) {
		updates[m_product.ColCategory] = optString(p.Category())
	}
	if p.Changes().Dirty(domain.FieldBrand) {
		updates[m_product.ColBrand] = optString(p.Brand())
	}
	if p.Changes().Dirty(domain.FieldDiscountPrice) {
		if d := p.DiscountPrice(); d != nil {
			updates[m_product.ColDiscountPriceCents] = d.Cents()
		} else {
			updates[m_product.ColDiscountPriceCents] = nil
		}
	}
	if p.Changes().Dirty(domain.FieldRating) {
		updates[m_product.ColAverageRating] = roundRating(p.AverageRating())
		updates[m_product.ColReviewCount] = p.ReviewCount()
	}
	if p.Changes().Dirty(domain.FieldIsActive) {
		updates[m_product.ColIsActive] = p.IsActive()
	}
	if p.Changes().Dirty(domain.FieldIsDeleted) {
		updates[m_product.ColIsDeleted] = p.IsDeleted()
		if t := p.DeletedAt(); t != nil {
			updates[m_product.ColDeletedAt] = t.UTC()
		} else {
			updates[m_product.ColDeletedAt] = nil
		}
	}
	if p.Changes().Dirty(domain.FieldUpdatedBy) {
		updates[m_product.ColUpdatedBy] = optString(p.UpdatedBy())
	}

	if len(updates) == 0 {
		return nil
	}

	if t := p.UpdatedAt(); t != nil {
		updates[m_product.ColUpdatedAt] = t.UTC()
	}
	return m_product.UpdateMutation(p.ID(), updates)
}

func optString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// roundRating keeps the stored average at two decimal places.
func roundRating(r float64) float64 {
	return math.Round(r*100) / 100
}

package m_product

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
)

// InsertMutation builds a spanner.Insert mutation for a product from a
// map of column name to value.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation. The values map must
// not contain the primary key; productID is prepended here.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Update(TableName, cols, vals)
}

// ScanRow reads one product row (selected via SelectCols) into a DTO.
func ScanRow(row *spanner.Row) (*dto.ProductDTO, error) {
	var (
		id, name, sku        string
		description          spanner.NullString
		priceCents           int64
		currency             string
		stockQuantity        int64
		category, brand      spanner.NullString
		discountPriceCents   spanner.NullInt64
		averageRating        float64
		reviewCount          int64
		isActive, isDeleted  bool
		deletedAt            spanner.NullTime
		createdAt            time.Time
		updatedAt            spanner.NullTime
		createdBy, updatedBy spanner.NullString
	)

	if err := row.Columns(&id, &name, &sku, &description, &priceCents, &currency,
		&stockQuantity, &category, &brand, &discountPriceCents, &averageRating,
		&reviewCount, &isActive, &isDeleted, &deletedAt, &createdAt, &updatedAt,
		&createdBy, &updatedBy); err != nil {
		return nil, err
	}

	out := &dto.ProductDTO{
		ProductID:     id,
		Name:          name,
		Sku:           sku,
		PriceCents:    priceCents,
		Currency:      currency,
		StockQuantity: stockQuantity,
		AverageRating: averageRating,
		ReviewCount:   reviewCount,
		IsActive:      isActive,
		IsDeleted:     isDeleted,
	}

	out.Description = nullStringPtr(description)
	out.Category = nullStringPtr(category)
	out.Brand = nullStringPtr(brand)
	out.CreatedBy = nullStringPtr(createdBy)
	out.UpdatedBy = nullStringPtr(updatedBy)

	if discountPriceCents.Valid {
		v := discountPriceCents.Int64
		out.DiscountPriceCents = &v
	}

	c := createdAt.UTC().Format(time.RFC3339)
	out.CreatedAt = &c
	out.DeletedAt = nullTimePtr(deletedAt)
	out.UpdatedAt = nullTimePtr(updatedAt)

	return out, nil
}

func nullStringPtr(s spanner.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.StringVal
	return &v
}

func nullTimePtr(t spanner.NullTime) *string {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC().Format(time.RFC3339)
	return &v
}

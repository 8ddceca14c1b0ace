package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID          = "product_id"
	ColName               = "name"
	ColSku                = "sku"
	ColDescription        = "description"
	ColPriceCents         = "price_cents"
	ColCurrency           = "currency"
	ColStockQuantity      = "stock_quantity"
	ColCategory           = "category"
	ColBrand              = "brand"
	ColDiscountPriceCents = "discount_price_cents"
	ColAverageRating      = "average_rating"
	ColReviewCount        = "review_count"
	ColIsActive           = "is_active"
	ColIsDeleted          = "is_deleted"
	ColDeletedAt          = "deleted_at"
	ColCreatedAt          = "created_at"
	ColUpdatedAt          = "updated_at"
	ColCreatedBy          = "created_by"
	ColUpdatedBy          = "updated_by"
)

// SelectCols is the column list every product read query selects, in the
// order ScanRow expects.
const SelectCols = "product_id, name, sku, description, price_cents, currency, " +
	"stock_quantity, category, brand, discount_price_cents, average_rating, " +
	"review_count, is_active, is_deleted, deleted_at, created_at, updated_at, " +
	"created_by, updated_by"

// livePredicate is the soft-delete filter shared by every read method.
const livePredicate = "is_deleted = FALSE"

// Live combines a WHERE clause with the soft-delete filter. Passing an
// empty clause yields the filter alone. Routing every read through this
// helper is what keeps the filter from being forgotten in new queries.
func Live(where string) string {
	if where == "" {
		return livePredicate
	}
	return where + " AND " + livePredicate
}

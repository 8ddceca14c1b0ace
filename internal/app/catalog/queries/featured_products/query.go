package featured_products

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/addismart/catalog-service/internal/models/m_product"
)

// SpannerFeaturedProductsQuery returns the highest rated live products.
type SpannerFeaturedProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerFeaturedProductsQuery(client *spanner.Client) *SpannerFeaturedProductsQuery {
	return &SpannerFeaturedProductsQuery{Client: client}
}

func (q *SpannerFeaturedProductsQuery) ListFeatured(ctx context.Context, count int64) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: "SELECT " + m_product.SelectCols + " FROM " + m_product.TableName +
			" WHERE " + m_product.Live("is_active = TRUE") +
			" ORDER BY average_rating DESC, review_count DESC LIMIT @limit",
		Params: map[string]interface{}{"limit": count},
	}
	return list_products.QueryRows(ctx, q.Client, stmt)
}

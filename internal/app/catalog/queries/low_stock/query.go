package low_stock

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/addismart/catalog-service/internal/models/m_product"
)

// SpannerLowStockQuery lists active live products at or below a stock threshold.
type SpannerLowStockQuery struct {
	Client *spanner.Client
}

func NewSpannerLowStockQuery(client *spanner.Client) *SpannerLowStockQuery {
	return &SpannerLowStockQuery{Client: client}
}

func (q *SpannerLowStockQuery) ListLowStock(ctx context.Context, threshold int64) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: "SELECT " + m_product.SelectCols + " FROM " + m_product.TableName +
			" WHERE " + m_product.Live("is_active = TRUE AND stock_quantity <= @threshold") +
			" ORDER BY stock_quantity ASC",
		Params: map[string]interface{}{"threshold": threshold},
	}
	return list_products.QueryRows(ctx, q.Client, stmt)
}

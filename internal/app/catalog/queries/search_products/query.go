package search_products

import (
	"context"
	"strings"

	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/addismart/catalog-service/internal/models/m_product"
)

// SpannerSearchProductsQuery matches live products by a case-insensitive
// term over name, description and brand.
type SpannerSearchProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerSearchProductsQuery(client *spanner.Client) *SpannerSearchProductsQuery {
	return &SpannerSearchProductsQuery{Client: client}
}

func (q *SpannerSearchProductsQuery) Search(ctx context.Context, term string, page, pageSize int64) ([]*dto.ProductDTO, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	stmt := spanner.Statement{
		SQL: "SELECT " + m_product.SelectCols + " FROM " + m_product.TableName +
			" WHERE " + m_product.Live(
			"(LOWER(name) LIKE @pattern"+
				" OR LOWER(COALESCE(description, '')) LIKE @pattern"+
				" OR LOWER(COALESCE(brand, '')) LIKE @pattern)") +
			" ORDER BY name ASC LIMIT @limit OFFSET @offset",
		Params: map[string]interface{}{
			"pattern": pattern,
			"limit":   pageSize,
			"offset":  (page - 1) * pageSize,
		},
	}
	return list_products.QueryRows(ctx, q.Client, stmt)
}

// escapeLike neutralizes LIKE metacharacters in user terms.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

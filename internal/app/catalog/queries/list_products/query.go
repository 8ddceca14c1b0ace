package list_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/models/m_product"
)

// SpannerListProductsQuery lists live products, optionally by category.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

// ListAll returns every live product ordered by name.
func (q *SpannerListProductsQuery) ListAll(ctx context.Context) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: "SELECT " + m_product.SelectCols + " FROM " + m_product.TableName +
			" WHERE " + m_product.Live("") + " ORDER BY name ASC",
	}
	return queryRows(ctx, q.Client, stmt)
}

// ListByCategory returns one page of live products in a category, ordered
// by name. Page numbers start at 1.
func (q *SpannerListProductsQuery) ListByCategory(ctx context.Context, category string, page, pageSize int64) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: "SELECT " + m_product.SelectCols + " FROM " + m_product.TableName +
			" WHERE " + m_product.Live("category = @category") +
			" ORDER BY name ASC LIMIT @limit OFFSET @offset",
		Params: map[string]interface{}{
			"category": category,
			"limit":    pageSize,
			"offset":   (page - 1) * pageSize,
		},
	}
	return queryRows(ctx, q.Client, stmt)
}

// CountActive counts live products currently flagged active.
func (q *SpannerListProductsQuery) CountActive(ctx context.Context) (int64, error) {
	stmt := spanner.Statement{
		SQL: "SELECT COUNT(*) FROM " + m_product.TableName +
			" WHERE " + m_product.Live("is_active = TRUE"),
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// queryRows drains a product statement into DTOs.
func queryRows(ctx context.Context, client *spanner.Client, stmt spanner.Statement) ([]*dto.ProductDTO, error) {
	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.ProductDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		d, err := m_product.ScanRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
}

// QueryRows exposes the row drain for the sibling query packages.
func QueryRows(ctx context.Context, client *spanner.Client, stmt spanner.Statement) ([]*dto.ProductDTO, error) {
	return queryRows(ctx, client, stmt)
}

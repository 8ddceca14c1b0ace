package get_product

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/models/m_product"
)

// SpannerGetProductQuery is a concrete query implementation that reads from
// Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches a live product row by id.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return q.fetchOne(ctx, spanner.Statement{
		SQL: "SELECT " + m_product.SelectCols + " FROM " + m_product.TableName +
			" WHERE " + m_product.Live("product_id = @id"),
		Params: map[string]interface{}{"id": productID},
	})
}

// GetProductBySku fetches a live product row by SKU.
func (q *SpannerGetProductQuery) GetProductBySku(ctx context.Context, sku string) (*dto.ProductDTO, error) {
	return q.fetchOne(ctx, spanner.Statement{
		SQL: "SELECT " + m_product.SelectCols + " FROM " + m_product.TableName +
			" WHERE " + m_product.Live("sku = @sku"),
		Params: map[string]interface{}{"sku": sku},
	})
}

// GetProductAnyState fetches a product row regardless of its deleted flag.
// Restore needs this; everything else should call GetProduct.
func (q *SpannerGetProductQuery) GetProductAnyState(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return q.fetchOne(ctx, spanner.Statement{
		SQL: "SELECT " + m_product.SelectCols + " FROM " + m_product.TableName +
			" WHERE product_id = @id",
		Params: map[string]interface{}{"id": productID},
	})
}

// ExistsByID reports whether a live product with the given id exists.
func (q *SpannerGetProductQuery) ExistsByID(ctx context.Context, productID string) (bool, error) {
	return q.exists(ctx, spanner.Statement{
		SQL: "SELECT 1 FROM " + m_product.TableName +
			" WHERE " + m_product.Live("product_id = @id"),
		Params: map[string]interface{}{"id": productID},
	})
}

// ExistsBySku reports whether a live product with the given SKU exists.
func (q *SpannerGetProductQuery) ExistsBySku(ctx context.Context, sku string) (bool, error) {
	return q.exists(ctx, spanner.Statement{
		SQL: "SELECT 1 FROM " + m_product.TableName +
			" WHERE " + m_product.Live("sku = @sku"),
		Params: map[string]interface{}{"sku": sku},
	})
}

func (q *SpannerGetProductQuery) fetchOne(ctx context.Context, stmt spanner.Statement) (*dto.ProductDTO, error) {
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return m_product.ScanRow(row)
}

func (q *SpannerGetProductQuery) exists(ctx context.Context, stmt spanner.Statement) (bool, error) {
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

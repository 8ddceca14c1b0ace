package get_inventory

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/models/m_inventory"
)

// SpannerGetInventoryQuery reads inventory rows from Spanner directly.
type SpannerGetInventoryQuery struct {
	Client *spanner.Client
}

func NewSpannerGetInventoryQuery(client *spanner.Client) *SpannerGetInventoryQuery {
	return &SpannerGetInventoryQuery{Client: client}
}

// GetInventory fetches the inventory row for a product.
func (q *SpannerGetInventoryQuery) GetInventory(ctx context.Context, productID string) (*dto.InventoryDTO, error) {
	stmt := spanner.Statement{
		SQL: "SELECT " + m_inventory.SelectCols + " FROM " + m_inventory.TableName +
			" WHERE product_id = @id",
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrInventoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return m_inventory.ScanRow(row)
}

package m_inventory

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
)

// InsertMutation builds a spanner.Insert mutation for an inventory row.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation keyed by inventory id.
func UpdateMutation(inventoryID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColInventoryID}
	vals := []interface{}{inventoryID}
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Update(TableName, cols, vals)
}

// ScanRow reads one inventory row (selected via SelectCols) into a DTO.
func ScanRow(row *spanner.Row) (*dto.InventoryDTO, error) {
	var (
		id, productID                                             string
		availableStock, reservedStock, reorderThreshold, maxStock int64
		createdAt                                                 time.Time
		updatedAt                                                 spanner.NullTime
	)

	if err := row.Columns(&id, &productID, &availableStock, &reservedStock,
		&reorderThreshold, &maxStock, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	out := &dto.InventoryDTO{
		InventoryID:      id,
		ProductID:        productID,
		AvailableStock:   availableStock,
		ReservedStock:    reservedStock,
		ReorderThreshold: reorderThreshold,
		MaxStock:         maxStock,
	}

	c := createdAt.UTC().Format(time.RFC3339)
	out.CreatedAt = &c
	if updatedAt.Valid {
		u := updatedAt.Time.UTC().Format(time.RFC3339)
		out.UpdatedAt = &u
	}

	return out, nil
}

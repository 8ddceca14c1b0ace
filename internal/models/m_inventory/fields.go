package m_inventory

// Field constants for the inventories table.
const (
	TableName = "inventories"

	ColInventoryID      = "inventory_id"
	ColProductID        = "product_id"
	ColAvailableStock   = "available_stock"
	ColReservedStock    = "reserved_stock"
	ColReorderThreshold = "reorder_threshold"
	ColMaxStock         = "max_stock"
	ColCreatedAt        = "created_at"
	ColUpdatedAt        = "updated_at"
)

// SelectCols is the column list inventory reads select, in the order
// ScanRow expects.
const SelectCols = "inventory_id, product_id, available_stock, reserved_stock, " +
	"reorder_threshold, max_stock, created_at, updated_at"

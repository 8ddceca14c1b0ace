package dto

// ProductDTO carries a full product row out of the read model. Timestamps
// are RFC3339 string pointers, matching how nullable TIMESTAMP columns
// come back from Spanner; use the utils helpers to parse them.
type ProductDTO struct {
	ProductID          string
	Name               string
	Sku                string
	Description        *string
	PriceCents         int64
	Currency           string
	StockQuantity      int64
	Category           *string
	Brand              *string
	DiscountPriceCents *int64
	AverageRating      float64
	ReviewCount        int64
	IsActive           bool
	IsDeleted          bool
	DeletedAt          *string
	CreatedAt          *string
	UpdatedAt          *string
	CreatedBy          *string
	UpdatedBy          *string
}

// InventoryDTO carries an inventory row out of the read model.
type InventoryDTO struct {
	InventoryID      string
	ProductID        string
	AvailableStock   int64
	ReservedStock    int64
	ReorderThreshold int64
	MaxStock         int64
	CreatedAt        *string
	UpdatedAt        *string
}

// StockStatusDTO is the result of a stock availability check.
type StockStatusDTO struct {
	ProductID         string
	RequestedQuantity int64
	AvailableQuantity int64
	IsAvailable       bool
	IsLowStock        bool
}

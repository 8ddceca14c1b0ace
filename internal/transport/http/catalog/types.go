package catalog

import (
	"fmt"

	"github.com/addismart/catalog-service/internal/app/catalog/dto"
)

// centsToDecimal renders a stored cent amount as a 2dp decimal string.
// Amounts are validated non-negative before they ever reach storage.
func centsToDecimal(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

type CreateProductRequest struct {
	Name         string `json:"name"`
	Sku          string `json:"sku"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	InitialStock int64  `json:"initial_stock"`
	CreatedBy    string `json:"created_by"`
}

type UpdatePriceRequest struct {
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type UpdateStockRequest struct {
	Delta int64 `json:"delta"`
}

type RateProductRequest struct {
	Rating float64 `json:"rating"`
}

type ApplyDiscountRequest struct {
	Percentage float64 `json:"percentage"`
}

type InventoryAdjustRequest struct {
	Quantity int64 `json:"quantity"`
}

type CreateProductResponse struct {
	ProductID string `json:"product_id"`
}

type ProductResponse struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Sku           string  `json:"sku"`
	Description   *string `json:"description,omitempty"`
	Price         string  `json:"price"`
	Currency      string  `json:"currency"`
	DiscountPrice *string `json:"discount_price,omitempty"`
	StockQuantity int64   `json:"stock_quantity"`
	Category      *string `json:"category,omitempty"`
	Brand         *string `json:"brand,omitempty"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     *string `json:"created_at,omitempty"`
	UpdatedAt     *string `json:"updated_at,omitempty"`
}

type ProductListResponse struct {
	Products []*ProductResponse `json:"products"`
	Count    int                `json:"count"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type StockStatusResponse struct {
	ProductID         string `json:"product_id"`
	RequestedQuantity int64  `json:"requested_quantity"`
	AvailableQuantity int64  `json:"available_quantity"`
	IsAvailable       bool   `json:"is_available"`
	IsLowStock        bool   `json:"is_low_stock"`
}

type InventoryResponse struct {
	ProductID        string `json:"product_id"`
	AvailableStock   int64  `json:"available_stock"`
	ReservedStock    int64  `json:"reserved_stock"`
	AvailableForSale int64  `json:"available_for_sale"`
	ReorderThreshold int64  `json:"reorder_threshold"`
	MaxStock         int64  `json:"max_stock"`
	NeedsReorder     bool   `json:"needs_reorder"`
}

func productResponse(d *dto.ProductDTO) *ProductResponse {
	out := &ProductResponse{
		ProductID:     d.ProductID,
		Name:          d.Name,
		Sku:           d.Sku,
		Description:   d.Description,
		Price:         centsToDecimal(d.PriceCents),
		Currency:      d.Currency,
		StockQuantity: d.StockQuantity,
		Category:      d.Category,
		Brand:         d.Brand,
		AverageRating: d.AverageRating,
		ReviewCount:   d.ReviewCount,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.DiscountPriceCents != nil {
		s := centsToDecimal(*d.DiscountPriceCents)
		out.DiscountPrice = &s
	}
	return out
}

func productListResponse(rows []*dto.ProductDTO) *ProductListResponse {
	out := &ProductListResponse{Products: make([]*ProductResponse, 0, len(rows))}
	for _, d := range rows {
		out.Products = append(out.Products, productResponse(d))
	}
	out.Count = len(out.Products)
	return out
}

func stockStatusResponse(s *dto.StockStatusDTO) *StockStatusResponse {
	return &StockStatusResponse{
		ProductID:         s.ProductID,
		RequestedQuantity: s.RequestedQuantity,
		AvailableQuantity: s.AvailableQuantity,
		IsAvailable:       s.IsAvailable,
		IsLowStock:        s.IsLowStock,
	}
}

func inventoryResponse(d *dto.InventoryDTO) *InventoryResponse {
	return &InventoryResponse{
		ProductID:        d.ProductID,
		AvailableStock:   d.AvailableStock,
		ReservedStock:    d.ReservedStock,
		AvailableForSale: d.AvailableStock - d.ReservedStock,
		ReorderThreshold: d.ReorderThreshold,
		MaxStock:         d.MaxStock,
		NeedsReorder:     d.AvailableStock <= d.ReorderThreshold,
	}
}

package check_stock

import (
	"context"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
)

// LowStockThreshold is the default cutoff for flagging a product low.
const LowStockThreshold = 10

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute reports whether the requested quantity of a product is on hand.
func (h *Handler) Execute(ctx context.Context, productID string, quantity int64) (*dto.StockStatusDTO, error) {
	if quantity <= 0 {
		return nil, domain.ErrNonPositiveQuantity
	}

	p, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &dto.StockStatusDTO{
		ProductID:         p.ProductID,
		RequestedQuantity: quantity,
		AvailableQuantity: p.StockQuantity,
		IsAvailable:       p.StockQuantity >= quantity,
		IsLowStock:        p.StockQuantity <= LowStockThreshold,
	}, nil
}

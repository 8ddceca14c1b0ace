package low_stock

import (
	"context"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, threshold int64) ([]*dto.ProductDTO, error) {
	if threshold < 0 {
		return nil, domain.ErrNegativeThreshold
	}
	return h.readModel.ListLowStock(ctx, threshold)
}

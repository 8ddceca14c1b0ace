package featured_products

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

func (h *Handler) Execute(ctx context.Context, count int64) ([]*dto.ProductDTO, error) {
	if count < 1 {
		return nil, domain.ErrNonPositiveCount
	}
	return h.readModel.ListFeatured(ctx, count)
}

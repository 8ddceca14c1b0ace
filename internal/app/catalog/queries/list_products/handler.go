package list_products

import (
	"context"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
)

const MaxPageSize = 100

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) ExecuteAll(ctx context.Context) ([]*dto.ProductDTO, error) {
	return h.readModel.ListAll(ctx)
}

// ExecuteByCategory validates paging input before touching storage.
func (h *Handler) ExecuteByCategory(ctx context.Context, category string, page, pageSize int64) ([]*dto.ProductDTO, error) {
	if category == "" {
		return nil, domain.ErrEmptyCategory
	}
	if page < 1 {
		return nil, domain.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, domain.ErrInvalidPageSize
	}
	return h.readModel.ListByCategory(ctx, category, page, pageSize)
}

func (h *Handler) ExecuteCountActive(ctx context.Context) (int64, error) {
	return h.readModel.CountActive(ctx)
}

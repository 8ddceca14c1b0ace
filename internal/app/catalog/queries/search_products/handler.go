package search_products

import (
	"context"
	"strings"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/list_products"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute runs a paginated product search. A blank term lists everything.
func (h *Handler) Execute(ctx context.Context, term string, page, pageSize int64) ([]*dto.ProductDTO, error) {
	if page < 1 {
		return nil, domain.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > list_products.MaxPageSize {
		return nil, domain.ErrInvalidPageSize
	}
	if strings.TrimSpace(term) == "" {
		return h.readModel.ListAll(ctx)
	}
	return h.readModel.Search(ctx, term, page, pageSize)
}

package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
)

type stubReadModel struct {
	contracts.ReadModel
	byCategory []*dto.ProductDTO
}

func (s *stubReadModel) ListByCategory(_ context.Context, _ string, _, _ int64) ([]*dto.ProductDTO, error) {
	return s.byCategory, nil
}

func TestExecuteByCategory_ValidatesInput(t *testing.T) {
	h := NewHandler(&stubReadModel{})

	_, err := h.ExecuteByCategory(context.Background(), "", 1, 20)
	assert.ErrorIs(t, err, domain.ErrEmptyCategory)

	_, err = h.ExecuteByCategory(context.Background(), "coffee", 0, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)

	_, err = h.ExecuteByCategory(context.Background(), "coffee", 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPageSize)

	_, err = h.ExecuteByCategory(context.Background(), "coffee", 1, MaxPageSize+1)
	assert.ErrorIs(t, err, domain.ErrInvalidPageSize)
}

func TestExecuteByCategory_PassesThrough(t *testing.T) {
	rows := []*dto.ProductDTO{{ProductID: "p1"}, {ProductID: "p2"}}
	h := NewHandler(&stubReadModel{byCategory: rows})

	out, err := h.ExecuteByCategory(context.Background(), "coffee", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, rows, out)
}

package shared

import (
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/dto"
	"github.com/addismart/catalog-service/internal/app/catalog/utils"
)

// ProductFromDTO rehydrates the product aggregate from a read-model row.
func ProductFromDTO(d *dto.ProductDTO) (*domain.Product, error) {
	price, err := domain.NewMoneyFromCents(d.PriceCents, d.Currency)
	if err != nil {
		return nil, err
	}

	var discount *domain.Money
	if d.DiscountPriceCents != nil {
		discount, err = domain.NewMoneyFromCents(*d.DiscountPriceCents, d.Currency)
		if err != nil {
			return nil, err
		}
	}

	return domain.ReconstructProduct(
		d.ProductID,
		d.Name,
		d.Sku,
		strOrEmpty(d.Description),
		price,
		d.StockQuantity,
		strOrEmpty(d.Category),
		strOrEmpty(d.Brand),
		discount,
		d.AverageRating,
		d.ReviewCount,
		d.IsActive,
		d.IsDeleted,
		utils.ParseTimePtr(d.DeletedAt),
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		utils.ParseTimePtr(d.UpdatedAt),
		strOrEmpty(d.CreatedBy),
		strOrEmpty(d.UpdatedBy),
	), nil
}

// InventoryFromDTO rehydrates the inventory aggregate from a read-model row.
func InventoryFromDTO(d *dto.InventoryDTO) *domain.Inventory {
	return domain.ReconstructInventory(
		d.InventoryID,
		d.ProductID,
		d.AvailableStock,
		d.ReservedStock,
		d.ReorderThreshold,
		d.MaxStock,
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		utils.ParseTimePtr(d.UpdatedAt),
	)
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

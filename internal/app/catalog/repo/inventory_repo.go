package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/models/m_inventory"
)

// InventoryRepo is the Spanner implementation of the inventory write side.
type InventoryRepo struct{}

func NewInventoryRepo() *InventoryRepo {
	return &InventoryRepo{}
}

func buildInventoryInsertValues(inv *domain.Inventory) map[string]interface{} {
	values := map[string]interface{}{
		m_inventory.ColInventoryID:      inv.ID(),
		m_inventory.ColProductID:        inv.ProductID(),
		m_inventory.ColAvailableStock:   inv.AvailableStock(),
		m_inventory.ColReservedStock:    inv.ReservedStock(),
		m_inventory.ColReorderThreshold: inv.ReorderThreshold(),
		m_inventory.ColMaxStock:         inv.MaxStock(),
		m_inventory.ColCreatedAt:        inv.CreatedAt().UTC(),
	}
	if t := inv.UpdatedAt(); t != nil {
		values[m_inventory.ColUpdatedAt] = t.UTC()
	} else {
		values[m_inventory.ColUpdatedAt] = nil
	}
	return values
}

func (r *InventoryRepo) InsertMut(inv *domain.Inventory) *spanner.Mutation {
	if inv == nil {
		return nil
	}
	return m_inventory.InsertMutation(buildInventoryInsertValues(inv))
}

func (r *InventoryRepo) UpdateMut(inv *domain.Inventory) *spanner.Mutation {
	if inv == nil || inv.Changes() == nil || !inv.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if inv.Changes().Dirty(domain.FieldAvailableStock) {
		updates[m_inventory.ColAvailableStock] = inv.AvailableStock()
	}
	if inv.Changes().Dirty(domain.FieldReservedStock) {
		updates[m_inventory.ColReservedStock] = inv.ReservedStock()
	}
	if inv.Changes().Dirty(domain.FieldReorderThreshold) {
		updates[m_inventory.ColReorderThreshold] = inv.ReorderThreshold()
	}
	if inv.Changes().Dirty(domain.FieldMaxStock) {
		updates[m_inventory.ColMaxStock] = inv.MaxStock()
	}

	if len(updates) == 0 {
		return nil
	}

	if t := inv.UpdatedAt(); t != nil {
		updates[m_inventory.ColUpdatedAt] = t.UTC()
	}
	return m_inventory.UpdateMutation(inv.ID(), updates)
}

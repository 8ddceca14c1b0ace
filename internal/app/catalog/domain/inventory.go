package domain

import "time"

// Inventory field constants for change tracking.
const (
	FieldAvailableStock   = "available_stock"
	FieldReservedStock    = "reserved_stock"
	FieldReorderThreshold = "reorder_threshold"
	FieldMaxStock         = "max_stock"
)

// Default inventory limits for records created on first restock.
const (
	DefaultReorderThreshold = 10
	DefaultMaxStock         = 1000
)

// Inventory tracks reservation-style stock counters for one product.
// It is a separate record keyed by product id, not owned by Product, and
// is the authoritative availability signal for order flows. The invariant
// reservedStock <= availableStock is enforced per operation.
type Inventory struct {
	id               string
	productID        string
	availableStock   int64
	reservedStock    int64
	reorderThreshold int64
	maxStock         int64
	createdAt        time.Time
	updatedAt        *time.Time
	changes          *ChangeTracker
	events           []DomainEvent
}

// NewInventory creates an empty inventory record for a product.
// Non-positive limits fall back to the defaults.
func NewInventory(id, productID string, reorderThreshold, maxStock int64, now time.Time) *Inventory {
	if reorderThreshold <= 0 {
		reorderThreshold = DefaultReorderThreshold
	}
	if maxStock <= 0 {
		maxStock = DefaultMaxStock
	}
	return &Inventory{
		id:               id,
		productID:        productID,
		reorderThreshold: reorderThreshold,
		maxStock:         maxStock,
		createdAt:        now,
		changes:          NewChangeTracker(),
		events:           make([]DomainEvent, 0),
	}
}

// ReconstructInventory rebuilds an inventory record from persisted state.
func ReconstructInventory(
	id, productID string,
	availableStock, reservedStock, reorderThreshold, maxStock int64,
	createdAt time.Time,
	updatedAt *time.Time,
) *Inventory {
	return &Inventory{
		id:               id,
		productID:        productID,
		availableStock:   availableStock,
		reservedStock:    reservedStock,
		reorderThreshold: reorderThreshold,
		maxStock:         maxStock,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		changes:          NewChangeTracker(),
		events:           make([]DomainEvent, 0),
	}
}

func (i *Inventory) ID() string              { return i.id }
func (i *Inventory) ProductID() string       { return i.productID }
func (i *Inventory) AvailableStock() int64   { return i.availableStock }
func (i *Inventory) ReservedStock() int64    { return i.reservedStock }
func (i *Inventory) ReorderThreshold() int64 { return i.reorderThreshold }
func (i *Inventory) MaxStock() int64         { return i.maxStock }
func (i *Inventory) CreatedAt() time.Time    { return i.createdAt }
func (i *Inventory) UpdatedAt() *time.Time   { return i.updatedAt }

func (i *Inventory) Changes() *ChangeTracker     { return i.changes }
func (i *Inventory) DomainEvents() []DomainEvent { return i.events }

// ClearEvents drops accumulated events, called after they are persisted.
func (i *Inventory) ClearEvents() {
	i.events = make([]DomainEvent, 0)
}

// AvailableForSale returns the units not yet set aside for pending orders.
func (i *Inventory) AvailableForSale() int64 {
	return i.availableStock - i.reservedStock
}

// NeedsReorder reports whether available stock has fallen to the reorder
// threshold.
func (i *Inventory) NeedsReorder() bool {
	return i.availableStock <= i.reorderThreshold
}

// Reserve sets quantity units aside for a pending order.
func (i *Inventory) Reserve(quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if i.AvailableForSale() < quantity {
		return &InsufficientStockError{Requested: quantity, Available: i.AvailableForSale()}
	}

	i.reservedStock += quantity
	i.changes.MarkDirty(FieldReservedStock)
	i.adjusted(AdjustReserve, quantity, now)
	return nil
}

// Release returns reserved units to the sellable pool.
func (i *Inventory) Release(quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if quantity > i.reservedStock {
		return ErrReleaseExceedsReserved
	}

	i.reservedStock -= quantity
	i.changes.MarkDirty(FieldReservedStock)
	i.adjusted(AdjustRelease, quantity, now)
	return nil
}

// Fulfill converts reserved units into shipped ones, removing them from
// both counters.
func (i *Inventory) Fulfill(quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if quantity > i.reservedStock {
		return ErrFulfillExceedsReserved
	}

	i.availableStock -= quantity
	i.reservedStock -= quantity
	i.changes.MarkDirty(FieldAvailableStock)
	i.changes.MarkDirty(FieldReservedStock)
	i.adjusted(AdjustFulfill, quantity, now)
	return nil
}

// Restock adds quantity units, bounded by the maximum stock level.
func (i *Inventory) Restock(quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if i.availableStock+quantity > i.maxStock {
		return ErrMaxStockExceeded
	}

	i.availableStock += quantity
	i.changes.MarkDirty(FieldAvailableStock)
	i.adjusted(AdjustRestock, quantity, now)
	return nil
}

func (i *Inventory) adjusted(kind string, quantity int64, now time.Time) {
	t := now
	i.updatedAt = &t
	i.events = append(i.events, &InventoryAdjustedEvent{
		ProductID:  i.productID,
		Kind:       kind,
		Quantity:   quantity,
		Available:  i.availableStock,
		Reserved:   i.reservedStock,
		AdjustedAt: now,
	})
}

package domain

import "time"

// DomainEvent is a fact about something that happened in the catalog.
// Events are collected on the aggregate and drained into the outbox by
// the write usecases.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreatedEvent is raised when a new product enters the catalog.
type ProductCreatedEvent struct {
	ProductID     string
	Name          string
	Sku           string
	Category      string
	Price         *Money
	StockQuantity int64
	CreatedAt     time.Time
}

func (e *ProductCreatedEvent) EventType() string     { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// StockReducedEvent is raised when units are removed from a product's stock.
type StockReducedEvent struct {
	ProductID string
	Quantity  int64
	Remaining int64
	ReducedAt time.Time
}

func (e *StockReducedEvent) EventType() string     { return "product.stock_reduced" }
func (e *StockReducedEvent) AggregateID() string   { return e.ProductID }
func (e *StockReducedEvent) OccurredAt() time.Time { return e.ReducedAt }

// StockIncreasedEvent is raised when units are added to a product's stock.
type StockIncreasedEvent struct {
	ProductID   string
	Quantity    int64
	Remaining   int64
	IncreasedAt time.Time
}

func (e *StockIncreasedEvent) EventType() string     { return "product.stock_increased" }
func (e *StockIncreasedEvent) AggregateID() string   { return e.ProductID }
func (e *StockIncreasedEvent) OccurredAt() time.Time { return e.IncreasedAt }

// PriceChangedEvent is raised when the base price changes.
type PriceChangedEvent struct {
	ProductID string
	OldPrice  *Money
	NewPrice  *Money
	ChangedAt time.Time
}

func (e *PriceChangedEvent) EventType() string     { return "product.price_changed" }
func (e *PriceChangedEvent) AggregateID() string   { return e.ProductID }
func (e *PriceChangedEvent) OccurredAt() time.Time { return e.ChangedAt }

// ProductRatedEvent is raised when a rating is folded into the running average.
type ProductRatedEvent struct {
	ProductID     string
	Rating        float64
	AverageRating float64
	ReviewCount   int64
	RatedAt       time.Time
}

func (e *ProductRatedEvent) EventType() string     { return "product.rated" }
func (e *ProductRatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductRatedEvent) OccurredAt() time.Time { return e.RatedAt }

// DiscountAppliedEvent is raised when a percentage discount is applied.
type DiscountAppliedEvent struct {
	ProductID     string
	Percentage    float64
	DiscountPrice *Money
	AppliedAt     time.Time
}

func (e *DiscountAppliedEvent) EventType() string     { return "product.discount_applied" }
func (e *DiscountAppliedEvent) AggregateID() string   { return e.ProductID }
func (e *DiscountAppliedEvent) OccurredAt() time.Time { return e.AppliedAt }

// DiscountRemovedEvent is raised when a discount is cleared.
type DiscountRemovedEvent struct {
	ProductID string
	RemovedAt time.Time
}

func (e *DiscountRemovedEvent) EventType() string     { return "product.discount_removed" }
func (e *DiscountRemovedEvent) AggregateID() string   { return e.ProductID }
func (e *DiscountRemovedEvent) OccurredAt() time.Time { return e.RemovedAt }

// ProductDeletedEvent is raised on soft delete.
type ProductDeletedEvent struct {
	ProductID string
	DeletedBy string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string     { return "product.deleted" }
func (e *ProductDeletedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

// ProductRestoredEvent is raised when a soft-deleted product is restored.
type ProductRestoredEvent struct {
	ProductID  string
	RestoredAt time.Time
}

func (e *ProductRestoredEvent) EventType() string     { return "product.restored" }
func (e *ProductRestoredEvent) AggregateID() string   { return e.ProductID }
func (e *ProductRestoredEvent) OccurredAt() time.Time { return e.RestoredAt }

// ProductActivatedEvent is raised when a product becomes visible for sale.
type ProductActivatedEvent struct {
	ProductID   string
	ActivatedAt time.Time
}

func (e *ProductActivatedEvent) EventType() string     { return "product.activated" }
func (e *ProductActivatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductActivatedEvent) OccurredAt() time.Time { return e.ActivatedAt }

// ProductDeactivatedEvent is raised when a product is hidden from sale.
type ProductDeactivatedEvent struct {
	ProductID     string
	DeactivatedAt time.Time
}

func (e *ProductDeactivatedEvent) EventType() string     { return "product.deactivated" }
func (e *ProductDeactivatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductDeactivatedEvent) OccurredAt() time.Time { return e.DeactivatedAt }

// Inventory adjustment kinds.
const (
	AdjustReserve = "reserve"
	AdjustRelease = "release"
	AdjustFulfill = "fulfill"
	AdjustRestock = "restock"
)

// InventoryAdjustedEvent is raised by every inventory counter operation.
type InventoryAdjustedEvent struct {
	ProductID  string
	Kind       string
	Quantity   int64
	Available  int64
	Reserved   int64
	AdjustedAt time.Time
}

func (e *InventoryAdjustedEvent) EventType() string     { return "inventory." + e.Kind }
func (e *InventoryAdjustedEvent) AggregateID() string   { return e.ProductID }
func (e *InventoryAdjustedEvent) OccurredAt() time.Time { return e.AdjustedAt }

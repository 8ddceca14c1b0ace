package domain

import (
	"math/big"
	"strings"
	"time"
)

// Field constants for change tracking.
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldStockQuantity = "stock_quantity"
	FieldCategory      = "category"
	FieldBrand         = "brand"
	FieldDiscountPrice = "discount_price"
	FieldRating        = "rating"
	FieldIsActive      = "is_active"
	FieldIsDeleted     = "is_deleted"
	FieldUpdatedBy     = "updated_by"
)

// Product is the aggregate root of the catalog. All mutation goes through
// the named operations below; validation always precedes state change, so
// a failed call leaves the aggregate untouched.
type Product struct {
	id            string
	name          string
	sku           string
	description   string
	price         *Money
	stockQuantity int64
	category      string
	brand         string
	discountPrice *Money
	averageRating float64
	reviewCount   int64
	isActive      bool
	isDeleted     bool
	deletedAt     *time.Time
	createdAt     time.Time
	updatedAt     *time.Time
	createdBy     string
	updatedBy     string
	changes       *ChangeTracker
	events        []DomainEvent
}

// NewProduct creates a product with the given identifier and details.
// The product starts active, with zero rating and no discount.
func NewProduct(id, name, sku, description string, price *Money, category, brand string, initialStock int64, createdBy string, now time.Time) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateSku(sku); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if initialStock < 0 {
		return nil, ErrNegativeInitialStock
	}

	p := &Product{
		id:            id,
		name:          strings.TrimSpace(name),
		sku:           strings.TrimSpace(sku),
		description:   strings.TrimSpace(description),
		price:         price,
		stockQuantity: initialStock,
		category:      strings.TrimSpace(category),
		brand:         strings.TrimSpace(brand),
		isActive:      true,
		createdAt:     now,
		createdBy:     createdBy,
		changes:       NewChangeTracker(),
		events:        make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		ProductID:     p.id,
		Name:          p.name,
		Sku:           p.sku,
		Category:      p.category,
		Price:         p.price,
		StockQuantity: p.stockQuantity,
		CreatedAt:     now,
	})

	return p, nil
}

// ReconstructProduct rebuilds a product from persisted state. Used when
// loading from the read model; performs no validation or event capture.
func ReconstructProduct(
	id, name, sku, description string,
	price *Money,
	stockQuantity int64,
	category, brand string,
	discountPrice *Money,
	averageRating float64,
	reviewCount int64,
	isActive, isDeleted bool,
	deletedAt *time.Time,
	createdAt time.Time,
	updatedAt *time.Time,
	createdBy, updatedBy string,
) *Product {
	return &Product{
		id:            id,
		name:          name,
		sku:           sku,
		description:   description,
		price:         price,
		stockQuantity: stockQuantity,
		category:      category,
		brand:         brand,
		discountPrice: discountPrice,
		averageRating: averageRating,
		reviewCount:   reviewCount,
		isActive:      isActive,
		isDeleted:     isDeleted,
		deletedAt:     deletedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		createdBy:     createdBy,
		updatedBy:     updatedBy,
		changes:       NewChangeTracker(),
		events:        make([]DomainEvent, 0),
	}
}

// Getters

func (p *Product) ID() string             { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Sku() string            { return p.sku }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() *Money          { return p.price }
func (p *Product) StockQuantity() int64   { return p.stockQuantity }
func (p *Product) Category() string       { return p.category }
func (p *Product) Brand() string          { return p.brand }
func (p *Product) DiscountPrice() *Money  { return p.discountPrice }
func (p *Product) AverageRating() float64 { return p.averageRating }
func (p *Product) ReviewCount() int64     { return p.reviewCount }
func (p *Product) IsActive() bool         { return p.isActive }
func (p *Product) IsDeleted() bool        { return p.isDeleted }
func (p *Product) DeletedAt() *time.Time  { return p.deletedAt }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() *time.Time  { return p.updatedAt }
func (p *Product) CreatedBy() string      { return p.createdBy }
func (p *Product) UpdatedBy() string      { return p.updatedBy }

func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// ClearEvents drops accumulated events, called after they are persisted.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

// Stock

// IsInStock reports whether any units remain.
func (p *Product) IsInStock() bool { return p.stockQuantity > 0 }

// IsOutOfStock reports whether no units remain.
func (p *Product) IsOutOfStock() bool { return p.stockQuantity <= 0 }

// HasSufficientStock reports whether quantity units can be taken.
func (p *Product) HasSufficientStock(quantity int64) bool {
	return p.stockQuantity >= quantity
}

// ReduceStock removes quantity units. Fails with InsufficientStockError
// when fewer units are available.
func (p *Product) ReduceStock(quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if !p.HasSufficientStock(quantity) {
		return &InsufficientStockError{Requested: quantity, Available: p.stockQuantity}
	}

	p.stockQuantity -= quantity
	p.changes.MarkDirty(FieldStockQuantity)
	p.touch(now)

	p.events = append(p.events, &StockReducedEvent{
		ProductID: p.id,
		Quantity:  quantity,
		Remaining: p.stockQuantity,
		ReducedAt: now,
	})
	return nil
}

// IncreaseStock adds quantity units. No upper bound is enforced here;
// Inventory.Restock is the capped operation.
func (p *Product) IncreaseStock(quantity int64, now time.Time) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}

	p.stockQuantity += quantity
	p.changes.MarkDirty(FieldStockQuantity)
	p.touch(now)

	p.events = append(p.events, &StockIncreasedEvent{
		ProductID:   p.id,
		Quantity:    quantity,
		Remaining:   p.stockQuantity,
		IncreasedAt: now,
	})
	return nil
}

// Pricing

// UpdatePrice replaces the base price and its currency.
func (p *Product) UpdatePrice(newPrice *Money, now time.Time) error {
	if newPrice == nil {
		return ErrPriceRequired
	}
	if err := validatePrice(newPrice); err != nil {
		return err
	}
	if newPrice.Equals(p.price) {
		return nil
	}

	oldPrice := p.price
	p.price = newPrice
	p.changes.MarkDirty(FieldPrice)
	p.touch(now)

	p.events = append(p.events, &PriceChangedEvent{
		ProductID: p.id,
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
		ChangedAt: now,
	})
	return nil
}

// ApplyDiscount derives a discounted price from the base price.
// The percentage must be within [0, 100].
func (p *Product) ApplyDiscount(percentage float64, now time.Time) error {
	if percentage < 0 || percentage > 100 {
		return ErrInvalidDiscountPercentage
	}

	remaining := new(big.Rat).SetFloat64(100 - percentage)
	discounted, err := p.price.ApplyPercentage(remaining)
	if err != nil {
		return err
	}

	p.discountPrice = discounted
	p.changes.MarkDirty(FieldDiscountPrice)
	p.touch(now)

	p.events = append(p.events, &DiscountAppliedEvent{
		ProductID:     p.id,
		Percentage:    percentage,
		DiscountPrice: discounted,
		AppliedAt:     now,
	})
	return nil
}

// RemoveDiscount clears any discounted price.
func (p *Product) RemoveDiscount(now time.Time) {
	if p.discountPrice == nil {
		return
	}
	p.discountPrice = nil
	p.changes.MarkDirty(FieldDiscountPrice)
	p.touch(now)

	p.events = append(p.events, &DiscountRemovedEvent{
		ProductID: p.id,
		RemovedAt: now,
	})
}

// CurrentPrice returns the discounted price when one is set, otherwise
// the base price.
func (p *Product) CurrentPrice() *Money {
	if p.discountPrice != nil {
		return p.discountPrice
	}
	return p.price
}

// Rating

// UpdateAverageRating folds a new rating into the running mean and bumps
// the review count. Exact only if every prior rating went through here.
func (p *Product) UpdateAverageRating(rating float64, now time.Time) error {
	if rating < 0 || rating > 5 {
		return ErrInvalidRating
	}

	p.averageRating = (p.averageRating*float64(p.reviewCount) + rating) / float64(p.reviewCount+1)
	p.reviewCount++
	p.changes.MarkDirty(FieldRating)
	p.touch(now)

	p.events = append(p.events, &ProductRatedEvent{
		ProductID:     p.id,
		Rating:        rating,
		AverageRating: p.averageRating,
		ReviewCount:   p.reviewCount,
		RatedAt:       now,
	})
	return nil
}

// Lifecycle

// Delete soft-deletes the product. Deleted products are never active.
// Calling Delete on an already-deleted product is a no-op in effect.
func (p *Product) Delete(deletedBy string, now time.Time) {
	p.isDeleted = true
	p.deletedAt = &now
	p.isActive = false
	p.updatedBy = deletedBy
	p.changes.MarkDirty(FieldIsDeleted)
	p.changes.MarkDirty(FieldIsActive)
	p.changes.MarkDirty(FieldUpdatedBy)
	p.touch(now)

	p.events = append(p.events, &ProductDeletedEvent{
		ProductID: p.id,
		DeletedBy: deletedBy,
		DeletedAt: now,
	})
}

// Restore reverses a soft delete and reactivates the product.
func (p *Product) Restore(now time.Time) {
	p.isDeleted = false
	p.deletedAt = nil
	p.isActive = true
	p.changes.MarkDirty(FieldIsDeleted)
	p.changes.MarkDirty(FieldIsActive)
	p.touch(now)

	p.events = append(p.events, &ProductRestoredEvent{
		ProductID:  p.id,
		RestoredAt: now,
	})
}

// Activate makes the product visible for sale. Fails on deleted products
// to preserve the deleted-implies-inactive invariant; use Restore first.
func (p *Product) Activate(now time.Time) error {
	if p.isDeleted {
		return ErrProductDeleted
	}
	if p.isActive {
		return nil
	}
	p.isActive = true
	p.changes.MarkDirty(FieldIsActive)
	p.touch(now)

	p.events = append(p.events, &ProductActivatedEvent{
		ProductID:   p.id,
		ActivatedAt: now,
	})
	return nil
}

// Deactivate hides the product from sale without deleting it.
func (p *Product) Deactivate(now time.Time) {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.changes.MarkDirty(FieldIsActive)
	p.touch(now)

	p.events = append(p.events, &ProductDeactivatedEvent{
		ProductID:     p.id,
		DeactivatedAt: now,
	})
}

func (p *Product) touch(now time.Time) {
	t := now
	p.updatedAt = &t
}

// Validation helpers

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if len(trimmed) > 200 {
		return ErrProductNameTooLong
	}
	return nil
}

func validateSku(sku string) error {
	trimmed := strings.TrimSpace(sku)
	if trimmed == "" {
		return ErrEmptySku
	}
	if len(trimmed) > 50 {
		return ErrSkuTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if len(strings.TrimSpace(description)) > 2000 {
		return ErrDescriptionTooLong
	}
	return nil
}

func validatePrice(price *Money) error {
	if price == nil {
		return ErrPriceRequired
	}
	if !price.IsPositive() {
		return ErrNonPositivePrice
	}
	return nil
}

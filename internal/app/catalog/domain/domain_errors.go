package domain

import (
	"errors"
	"fmt"
)

// Money errors
var (
	// ErrNegativeAmount indicates a monetary amount below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrCurrencyRequired indicates a blank currency code.
	ErrCurrencyRequired = errors.New("currency is required")

	// ErrUnknownCurrency indicates a currency outside the allowed set.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrCurrencyMismatch indicates arithmetic or comparison between two
	// Money values of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Product validation errors
var (
	// ErrEmptyProductName indicates a blank product name.
	ErrEmptyProductName = errors.New("product name is required")

	// ErrProductNameTooLong indicates the name exceeds 200 characters.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 200 characters")

	// ErrEmptySku indicates a blank SKU.
	ErrEmptySku = errors.New("sku is required")

	// ErrSkuTooLong indicates the SKU exceeds 50 characters.
	ErrSkuTooLong = errors.New("sku exceeds maximum length of 50 characters")

	// ErrDescriptionTooLong indicates the description exceeds 2000 characters.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length of 2000 characters")

	// ErrPriceRequired indicates a missing price.
	ErrPriceRequired = errors.New("price is required")

	// ErrNonPositivePrice indicates a price that is not strictly positive.
	ErrNonPositivePrice = errors.New("price must be greater than zero")

	// ErrNegativeInitialStock indicates a negative initial stock quantity.
	ErrNegativeInitialStock = errors.New("initial stock cannot be negative")

	// ErrNonPositiveQuantity indicates a stock quantity that must be positive.
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidRating indicates a rating outside [0, 5].
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrInvalidDiscountPercentage indicates a discount outside [0, 100].
	ErrInvalidDiscountPercentage = errors.New("discount percentage must be between 0 and 100")

	// ErrProductDeleted indicates an operation that requires a live product
	// was attempted on a soft-deleted one.
	ErrProductDeleted = errors.New("product is deleted")
)

// Lookup and uniqueness errors
var (
	// ErrProductNotFound indicates the product does not exist or is soft-deleted.
	ErrProductNotFound = errors.New("product not found")

	// ErrInventoryNotFound indicates no inventory record exists for the product.
	ErrInventoryNotFound = errors.New("inventory not found")

	// ErrSkuAlreadyExists indicates another live product already uses the SKU.
	ErrSkuAlreadyExists = errors.New("sku already exists")
)

// Inventory errors
var (
	// ErrReleaseExceedsReserved indicates a release larger than the reserved count.
	ErrReleaseExceedsReserved = errors.New("cannot release more than reserved")

	// ErrFulfillExceedsReserved indicates a fulfillment larger than the reserved count.
	ErrFulfillExceedsReserved = errors.New("cannot fulfill more than reserved")

	// ErrMaxStockExceeded indicates a restock that would exceed the maximum stock level.
	ErrMaxStockExceeded = errors.New("restock would exceed maximum stock level")
)

// Caller-input errors raised by query handlers before any storage round-trip.
var (
	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("page must be greater than or equal to 1")

	// ErrInvalidPageSize indicates a page size outside [1, 100].
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")

	// ErrEmptyCategory indicates a blank category in a category listing.
	ErrEmptyCategory = errors.New("category is required")

	// ErrNonPositiveCount indicates a non-positive result count.
	ErrNonPositiveCount = errors.New("count must be greater than zero")

	// ErrNegativeThreshold indicates a negative low-stock threshold.
	ErrNegativeThreshold = errors.New("threshold cannot be negative")
)

// InsufficientStockError is returned when a stock operation requests more
// units than are available. It carries both counts for caller display.
type InsufficientStockError struct {
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

// IsInsufficientStock reports whether err is an InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}

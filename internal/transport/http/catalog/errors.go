package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/addismart/catalog-service/internal/app/catalog/domain"
)

var (
	errInvalidPageParam     = errors.New("invalid page")
	errInvalidPageSizeParam = errors.New("invalid page_size")
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Requested int64  `json:"requested,omitempty"`
	Available int64  `json:"available,omitempty"`
}

var badRequestErrs = []error{
	domain.ErrNegativeAmount,
	domain.ErrCurrencyRequired,
	domain.ErrUnknownCurrency,
	domain.ErrEmptyProductName,
	domain.ErrProductNameTooLong,
	domain.ErrEmptySku,
	domain.ErrSkuTooLong,
	domain.ErrDescriptionTooLong,
	domain.ErrPriceRequired,
	domain.ErrNonPositivePrice,
	domain.ErrNegativeInitialStock,
	domain.ErrNonPositiveQuantity,
	domain.ErrInvalidRating,
	domain.ErrInvalidDiscountPercentage,
	domain.ErrInvalidPage,
	domain.ErrInvalidPageSize,
	domain.ErrEmptyCategory,
	domain.ErrNonPositiveCount,
	domain.ErrNegativeThreshold,
}

var conflictErrs = []error{
	domain.ErrSkuAlreadyExists,
	domain.ErrCurrencyMismatch,
	domain.ErrProductDeleted,
	domain.ErrReleaseExceedsReserved,
	domain.ErrFulfillExceedsReserved,
	domain.ErrMaxStockExceeded,
}

var notFoundErrs = []error{
	domain.ErrProductNotFound,
	domain.ErrInventoryNotFound,
}

// writeError maps domain errors onto HTTP statuses. Anything unrecognized
// is a 500 with a generic body so internals stay out of responses.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var ise *domain.InsufficientStockError
	if errors.As(err, &ise) {
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:     ise.Error(),
			Requested: ise.Requested,
			Available: ise.Available,
		})
	}

	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
	}
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
	}
	for _, target := range conflictErrs {
		if errors.Is(err, target) {
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		}
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

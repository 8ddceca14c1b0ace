package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/addismart/catalog-service/internal/app/catalog/contracts"
	"github.com/addismart/catalog-service/internal/app/catalog/domain"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/check_stock"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/featured_products"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/low_stock"
	"github.com/addismart/catalog-service/internal/app/catalog/queries/search_products"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/activate_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/apply_discount"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/create_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/deactivate_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/delete_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/inventory"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/rate_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/remove_discount"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/restore_product"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/update_price"
	"github.com/addismart/catalog-service/internal/app/catalog/usecases/update_stock"
	"github.com/addismart/catalog-service/internal/metrics"
)

// Commands bundles the write-side interactors the handler dispatches to.
type Commands struct {
	Create         *create_product.Interactor
	UpdatePrice    *update_price.Interactor
	UpdateStock    *update_stock.Interactor
	Rate           *rate_product.Interactor
	ApplyDiscount  *apply_discount.Interactor
	RemoveDiscount *remove_discount.Interactor
	Delete         *delete_product.Interactor
	Restore        *restore_product.Interactor
	Activate       *activate_product.Interactor
	Deactivate     *deactivate_product.Interactor
	Inventory      *inventory.Interactor
}

// Queries bundles the read-side handlers.
type Queries struct {
	Get         *get_product.Handler
	List        *list_products.Handler
	Search      *search_products.Handler
	Featured    *featured_products.Handler
	LowStock    *low_stock.Handler
	CheckStock  *check_stock.Handler
	Inventories contracts.InventoryReadModel
}

type Handler struct {
	commands Commands
	queries  Queries
	metrics  *metrics.CatalogMetrics
	log      *logrus.Entry
}

func NewHandler(commands Commands, queries Queries, m *metrics.CatalogMetrics, log *logrus.Entry) *Handler {
	return &Handler{commands: commands, queries: queries, metrics: m, log: log}
}

// failWrite counts the failed usecase before rendering the error.
func (h *Handler) failWrite(c echo.Context, usecase string, err error) error {
	if h.metrics != nil {
		h.metrics.RecordWriteFailed(usecase)
	}
	return writeError(c, err)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/products", h.create)
	e.GET("/products", h.list)
	e.GET("/products/count", h.countActive)
	e.GET("/products/search", h.search)
	e.GET("/products/featured", h.featured)
	e.GET("/products/low-stock", h.lowStock)
	e.GET("/products/sku/:sku", h.getBySku)
	e.GET("/products/:id", h.get)
	e.DELETE("/products/:id", h.delete)
	e.PUT("/products/:id/price", h.updatePrice)
	e.PUT("/products/:id/stock", h.updateStock)
	e.GET("/products/:id/stock", h.checkStock)
	e.POST("/products/:id/rating", h.rate)
	e.POST("/products/:id/discount", h.applyDiscount)
	e.DELETE("/products/:id/discount", h.removeDiscount)
	e.POST("/products/:id/restore", h.restore)
	e.POST("/products/:id/activate", h.activate)
	e.POST("/products/:id/deactivate", h.deactivate)
	e.GET("/products/:id/inventory", h.getInventory)
	e.POST("/products/:id/inventory/:action", h.adjustInventory)
}

func (h *Handler) create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	id, err := h.commands.Create.Execute(c.Request().Context(), create_product.Request{
		Name:         req.Name,
		Sku:          req.Sku,
		Description:  req.Description,
		PriceDecimal: req.Price,
		Currency:     req.Currency,
		Category:     req.Category,
		Brand:        req.Brand,
		InitialStock: req.InitialStock,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		return h.failWrite(c, "create_product", err)
	}

	if h.metrics != nil {
		h.metrics.RecordProductCreated()
	}
	h.log.WithField("product_id", id).Info("product created")
	return c.JSON(http.StatusCreated, CreateProductResponse{ProductID: id})
}

func (h *Handler) get(c echo.Context) error {
	d, err := h.queries.Get.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productResponse(d))
}

func (h *Handler) getBySku(c echo.Context) error {
	d, err := h.queries.Get.ExecuteBySku(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productResponse(d))
}

func (h *Handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	if category := c.QueryParam("category"); category != "" {
		page, pageSize, err := pagingParams(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		rows, err := h.queries.List.ExecuteByCategory(ctx, category, page, pageSize)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, productListResponse(rows))
	}

	rows, err := h.queries.List.ExecuteAll(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productListResponse(rows))
}

func (h *Handler) search(c echo.Context) error {
	page, pageSize, err := pagingParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	rows, err := h.queries.Search.Execute(c.Request().Context(), c.QueryParam("q"), page, pageSize)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productListResponse(rows))
}

func (h *Handler) featured(c echo.Context) error {
	count, err := int64Param(c, "count", 10)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid count"})
	}

	rows, err := h.queries.Featured.Execute(c.Request().Context(), count)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productListResponse(rows))
}

func (h *Handler) lowStock(c echo.Context) error {
	threshold, err := int64Param(c, "threshold", check_stock.LowStockThreshold)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid threshold"})
	}

	rows, err := h.queries.LowStock.Execute(c.Request().Context(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productListResponse(rows))
}

func (h *Handler) countActive(c echo.Context) error {
	count, err := h.queries.List.ExecuteCountActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

func (h *Handler) checkStock(c echo.Context) error {
	quantity, err := int64Param(c, "quantity", 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
	}

	status, err := h.queries.CheckStock.Execute(c.Request().Context(), c.Param("id"), quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stockStatusResponse(status))
}

func (h *Handler) updatePrice(c echo.Context) error {
	var req UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	err := h.commands.UpdatePrice.Execute(c.Request().Context(), update_price.Request{
		ProductID:    c.Param("id"),
		PriceDecimal: req.Price,
		Currency:     req.Currency,
	})
	if err != nil {
		return h.failWrite(c, "update_price", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) updateStock(c echo.Context) error {
	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	found, err := h.commands.UpdateStock.Execute(c.Request().Context(), update_stock.Request{
		ProductID: c.Param("id"),
		Delta:     req.Delta,
	})
	if err != nil {
		return h.failWrite(c, "update_stock", err)
	}
	if !found {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrProductNotFound.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) rate(c echo.Context) error {
	var req RateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	err := h.commands.Rate.Execute(c.Request().Context(), rate_product.Request{
		ProductID: c.Param("id"),
		Rating:    req.Rating,
	})
	if err != nil {
		return h.failWrite(c, "rate_product", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) applyDiscount(c echo.Context) error {
	var req ApplyDiscountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	err := h.commands.ApplyDiscount.Execute(c.Request().Context(), apply_discount.Request{
		ProductID:  c.Param("id"),
		Percentage: req.Percentage,
	})
	if err != nil {
		return h.failWrite(c, "apply_discount", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) removeDiscount(c echo.Context) error {
	if err := h.commands.RemoveDiscount.Execute(c.Request().Context(), c.Param("id")); err != nil {
		return h.failWrite(c, "remove_discount", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) delete(c echo.Context) error {
	found, err := h.commands.Delete.Execute(c.Request().Context(), delete_product.Request{
		ProductID: c.Param("id"),
		DeletedBy: c.QueryParam("deleted_by"),
	})
	if err != nil {
		return h.failWrite(c, "delete_product", err)
	}
	if !found {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: domain.ErrProductNotFound.Error()})
	}
	if h.metrics != nil {
		h.metrics.RecordProductDeleted()
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) restore(c echo.Context) error {
	if err := h.commands.Restore.Execute(c.Request().Context(), c.Param("id")); err != nil {
		return h.failWrite(c, "restore_product", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) activate(c echo.Context) error {
	if err := h.commands.Activate.Execute(c.Request().Context(), c.Param("id")); err != nil {
		return h.failWrite(c, "activate_product", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) deactivate(c echo.Context) error {
	if err := h.commands.Deactivate.Execute(c.Request().Context(), c.Param("id")); err != nil {
		return h.failWrite(c, "deactivate_product", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) getInventory(c echo.Context) error {
	d, err := h.queries.Inventories.GetInventory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, inventoryResponse(d))
}

func (h *Handler) adjustInventory(c echo.Context) error {
	var req InventoryAdjustRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	action := c.Param("action")
	switch action {
	case domain.AdjustReserve, domain.AdjustRelease, domain.AdjustFulfill, domain.AdjustRestock:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown inventory action"})
	}

	err := h.commands.Inventory.Execute(c.Request().Context(), inventory.Request{
		ProductID: c.Param("id"),
		Kind:      action,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return h.failWrite(c, "inventory", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func pagingParams(c echo.Context) (page, pageSize int64, err error) {
	page, err = int64Param(c, "page", 1)
	if err != nil {
		return 0, 0, errInvalidPageParam
	}
	pageSize, err = int64Param(c, "page_size", 20)
	if err != nil {
		return 0, 0, errInvalidPageSizeParam
	}
	return page, pageSize, nil
}

func int64Param(c echo.Context, name string, def int64) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

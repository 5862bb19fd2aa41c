package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"store/internal/delivery/api/response"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name      string `json:"name" validate:"notblank"`
	Price     int64  `json:"price" validate:"gt=0"`
	Category  string `json:"category" validate:"notblank"`
	AccountID *int64 `json:"accountId" validate:"omitempty,gt=0"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:      r.Name,
		Price:     r.Price,
		Category:  r.Category,
		AccountID: r.AccountID,
	}
}

// GetProducts handles listing products, optionally filtered by category and price
func (h *ProductHandler) GetProducts(c echo.Context) error {
	var filter usecase.ProductFilter

	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}

	if rawPrice := c.QueryParam("price"); rawPrice != "" {
		price, err := strconv.ParseInt(rawPrice, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid price")
		}
		filter.Price = &price
	}

	products, err := h.productUC.GetProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles retrieving a product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// CreateProducts handles creating several products in one transaction
func (h *ProductHandler) CreateProducts(c echo.Context) error {
	var reqs []ProductRequest
	if err := c.Bind(&reqs); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if len(reqs) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "At least one product is required")
	}

	inputs := make([]*usecase.ProductInput, 0, len(reqs))
	for i := range reqs {
		if err := c.Validate(&reqs[i]); err != nil {
			return validationError(c, err)
		}
		inputs = append(inputs, reqs[i].toInput())
	}

	products, err := h.productUC.CreateProducts(c.Request().Context(), inputs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, products)
}

// UpdateProduct handles replacing an existing product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req ProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles removing a product and detaching it from orders
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

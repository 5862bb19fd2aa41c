package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"store/internal/delivery/api/response"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// AccountRef is the nested account object some clients send instead of accountId.
// Every field but id is ignored.
type AccountRef struct {
	ID *int64 `json:"id"`
}

// OrderRequest represents the request body for creating or updating an order.
// orderDate and totalPrice are derived when omitted.
type OrderRequest struct {
	AccountID  *int64           `json:"accountId"`
	Account    *AccountRef      `json:"account"`
	ProductIDs []int64          `json:"productIds" validate:"required,min=1,dive,gt=0"`
	OrderDate  *time.Time       `json:"orderDate"`
	TotalPrice *decimal.Decimal `json:"totalPrice"`
}

func (r *OrderRequest) toInput() *usecase.OrderInput {
	accountID := r.AccountID
	if accountID == nil && r.Account != nil {
		accountID = r.Account.ID
	}

	return &usecase.OrderInput{
		AccountID:  accountID,
		ProductIDs: r.ProductIDs,
		OrderDate:  r.OrderDate,
		TotalPrice: r.TotalPrice,
	}
}

// GetOrders handles listing every order
func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.orderUC.GetOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder handles retrieving an order by ID
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrdersByAccount handles listing the orders of one account
func (h *OrderHandler) GetOrdersByAccount(c echo.Context) error {
	accountID, ok, err := pathID(c, "accountId")
	if !ok {
		return err
	}

	orders, err := h.orderUC.GetOrdersByAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// CreateOrder handles order creation
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// UpdateOrder handles replacing the products and totals of an order
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req OrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder handles removing an order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// FilterByProductCategory handles listing orders that contain a product of the category
func (h *OrderHandler) FilterByProductCategory(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return response.BadRequest(c, "INVALID_QUERY", "category is required")
	}

	orders, err := h.orderUC.FilterByProductCategory(c.Request().Context(), category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// FilterByProductPrice handles listing orders that contain a product with the price
func (h *OrderHandler) FilterByProductPrice(c echo.Context) error {
	price, err := strconv.ParseInt(c.QueryParam("price"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid price")
	}

	orders, err := h.orderUC.FilterByProductPrice(c.Request().Context(), price)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

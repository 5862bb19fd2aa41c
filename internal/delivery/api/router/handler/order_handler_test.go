package handler

import (
	"context"
	"net/http"
	"testing"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	mockUsecase "store/internal/mocks/usecase"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderHandlerFixtures struct {
	echo    *echo.Echo
	orderUC *mockUsecase.MockOrderUsecase
}

func createTestOrderHandler(t *testing.T) orderHandlerFixtures {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

	e := newTestEcho()
	e.GET("/api/orders", h.GetOrders)
	e.POST("/api/orders", h.CreateOrder)
	e.PUT("/api/orders/:id", h.UpdateOrder)
	e.GET("/api/orders/account/:accountId", h.GetOrdersByAccount)
	e.GET("/api/orders/filter/by-category-jpql", h.FilterByProductCategory)
	e.GET("/api/orders/filter/by-price-native", h.FilterByProductPrice)

	return orderHandlerFixtures{echo: e, orderUC: orderUC}
}

func TestOrderHandler_CreateOrder_RequiresProducts(t *testing.T) {
	fx := createTestOrderHandler(t)

	rec := serve(fx.echo, http.MethodPost, "/api/orders", `{"accountId":1,"productIds":[]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"productIds": "min"}, decodeError(t, rec).Details)
}

func TestOrderHandler_CreateOrder_MissingAccount(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(input *usecase.OrderInput) bool {
		return input.AccountID == nil
	})).Return(nil, domainerrors.ErrAccountIDRequired)

	rec := serve(fx.echo, http.MethodPost, "/api/orders", `{"productIds":[1,2]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ACCOUNT_ID_REQUIRED", decodeError(t, rec).Code)
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(input *usecase.OrderInput) bool {
		return *input.AccountID == 1 && len(input.ProductIDs) == 2 &&
			input.TotalPrice != nil && input.TotalPrice.Equal(decimal.RequireFromString("12.5"))
	})).Return(&entity.Order{ID: 3, AccountID: 1, TotalPrice: decimal.RequireFromString("12.5")}, nil)

	rec := serve(fx.echo, http.MethodPost, "/api/orders", `{"accountId":1,"productIds":[1,2],"totalPrice":12.5}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPrice":12.5`)
}

func TestOrderHandler_CreateOrder_NestedAccount(t *testing.T) {
	fx := createTestOrderHandler(t)

	var captured *usecase.OrderInput
	fx.orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *usecase.OrderInput) { captured = input }).
		Return(&entity.Order{ID: 4, AccountID: 1}, nil)

	rec := serve(fx.echo, http.MethodPost, "/api/orders",
		`{"productIds":[1],"account":{"id":1,"nickname":"n","orders":[]}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.AccountID)
	assert.Equal(t, int64(1), *captured.AccountID)
	assert.Equal(t, []int64{1}, captured.ProductIDs)
}

func TestOrderHandler_UpdateOrder_AccountIDWinsOverNestedAccount(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().UpdateOrder(mock.Anything, int64(7), mock.MatchedBy(func(input *usecase.OrderInput) bool {
		return input.AccountID != nil && *input.AccountID == 2
	})).Return(&entity.Order{ID: 7, AccountID: 2}, nil)

	rec := serve(fx.echo, http.MethodPut, "/api/orders/7",
		`{"accountId":2,"productIds":[1],"account":{"id":1}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_UpdateOrder_NotFound(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().UpdateOrder(mock.Anything, int64(7), mock.Anything).Return(nil, domainerrors.ErrOrderNotFound)

	rec := serve(fx.echo, http.MethodPut, "/api/orders/7", `{"productIds":[1]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestOrderHandler_Filters(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().FilterByProductCategory(mock.Anything, "books").Return([]*entity.Order{{ID: 1}}, nil)
	fx.orderUC.EXPECT().FilterByProductPrice(mock.Anything, int64(20)).Return(nil, domainerrors.ErrNoOrdersMatched)

	rec := serve(fx.echo, http.MethodGet, "/api/orders/filter/by-category-jpql?category=books", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(fx.echo, http.MethodGet, "/api/orders/filter/by-price-native?price=20", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(fx.echo, http.MethodGet, "/api/orders/filter/by-price-native", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_UnexpectedError(t *testing.T) {
	fx := createTestOrderHandler(t)

	fx.orderUC.EXPECT().GetOrdersByAccount(mock.Anything, int64(2)).Return(nil, errors.New("connection refused"))

	rec := serve(fx.echo, http.MethodGet, "/api/orders/account/2", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", errInfo.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

package usecase

import (
	"context"
	"time"

	"store/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderInput carries the client-supplied order fields.
type OrderInput struct {
	AccountID  *int64
	ProductIDs []int64

	// OrderDate defaults to the current time when nil.
	OrderDate *time.Time

	// TotalPrice defaults to the sum of the product prices when nil.
	TotalPrice *decimal.Decimal
}

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	GetOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)
	GetOrdersByAccount(ctx context.Context, accountID int64) ([]*entity.Order, error)
	CreateOrder(ctx context.Context, input *OrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, id int64, input *OrderInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id int64) error

	// FilterByProductCategory returns orders containing a product of the category.
	FilterByProductCategory(ctx context.Context, category string) ([]*entity.Order, error)

	// FilterByProductPrice returns orders containing a product with exactly this price.
	FilterByProductPrice(ctx context.Context, price int64) ([]*entity.Order, error)
}

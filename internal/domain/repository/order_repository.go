package repository

import (
	"context"

	"store/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
// Orders are always returned with their products loaded.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]*entity.Order, error)
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindByAccountID(ctx context.Context, accountID int64) ([]*entity.Order, error)

	// FindByProductID returns every order that contains the product.
	FindByProductID(ctx context.Context, productID int64) ([]*entity.Order, error)

	// FindByProductCategory returns orders containing at least one product of the category.
	FindByProductCategory(ctx context.Context, category string) ([]*entity.Order, error)

	// FindByProductPrice returns orders containing at least one product with the exact price.
	FindByProductPrice(ctx context.Context, price int64) ([]*entity.Order, error)

	// Create persists the order together with its product links.
	Create(ctx context.Context, order *entity.Order) error

	// Update overwrites the order fields and replaces its product links.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes the order and its product links.
	Delete(ctx context.Context, id int64) error

	// RemoveProduct detaches a single product from an order.
	RemoveProduct(ctx context.Context, orderID, productID int64) error

	// DeleteByAccountID removes every order of the account and returns the removed ids.
	DeleteByAccountID(ctx context.Context, accountID int64) ([]int64, error)
}

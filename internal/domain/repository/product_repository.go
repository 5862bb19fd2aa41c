package repository

import (
	"context"

	"store/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)

	FindByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	FindByPrice(ctx context.Context, price int64) ([]*entity.Product, error)
	FindByCategoryAndPrice(ctx context.Context, category string, price int64) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error

	// ClearAccount drops the owner reference from every product of the account
	// and returns the ids of the products it changed.
	ClearAccount(ctx context.Context, accountID int64) ([]int64, error)
}

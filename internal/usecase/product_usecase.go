package usecase

import (
	"context"

	"store/internal/domain/entity"
)

// ProductFilter narrows product listings. Nil fields are not applied.
type ProductFilter struct {
	Category *string
	Price    *int64
}

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name      string
	Price     int64
	Category  string
	AccountID *int64
}

// ProductUsecase defines the interface for product management use cases
type ProductUsecase interface {
	// GetProducts returns products matching filter. An empty result is a not found error.
	GetProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// CreateProducts saves all inputs atomically.
	CreateProducts(ctx context.Context, inputs []*ProductInput) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)

	// DeleteProduct detaches the product from every order before removing it.
	DeleteProduct(ctx context.Context, id int64) error
}

package usecase

import (
	"context"

	"store/internal/domain/entity"
)

// CategoryUsecase defines the interface for category management use cases
type CategoryUsecase interface {
	GetCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory returns the category with the products whose category matches its name.
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

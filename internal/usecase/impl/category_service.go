package impl

import (
	"context"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/usecase"

	"github.com/pkg/errors"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCategoryError(err, "failed to find category by ID")
	}

	products, err := s.productRepo.FindByCategory(ctx, category.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category products")
	}
	category.Products = products

	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	category := &entity.Category{Name: name}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, name string) (*entity.Category, error) {
	category := &entity.Category{ID: id, Name: name}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, mapCategoryError(err, "failed to update category")
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return mapCategoryError(err, "failed to delete category")
	}

	return nil
}

func mapCategoryError(err error, message string) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}

	return errors.Wrap(err, message)
}

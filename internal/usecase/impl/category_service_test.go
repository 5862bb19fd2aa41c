package impl

import (
	"context"
	"testing"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	mockRepo "store/internal/mocks/repository"
	"store/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	return categoryServiceFixtures{
		service:      NewCategoryService(categoryRepo, productRepo),
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func TestCategoryService_GetCategory_LoadsProducts(t *testing.T) {
	fx := createTestCategoryService(t)

	fx.categoryRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(&entity.Category{ID: 1, Name: "books"}, nil)
	fx.productRepo.EXPECT().FindByCategory(mock.Anything, "books").
		Return([]*entity.Product{newTestProduct(5, 10, "books")}, nil)

	category, err := fx.service.GetCategory(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, category.Products, 1)
	assert.Equal(t, int64(5), category.Products[0].ID)
}

func TestCategoryService_MissingCategory(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().Delete(mock.Anything, int64(9)).Return(repository.ErrCategoryNotFound)

	_, err := fx.service.GetCategory(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	_, err = fx.service.UpdateCategory(ctx, 9, "books")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	err = fx.service.DeleteCategory(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	fx := createTestCategoryService(t)

	fx.categoryRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			category.ID = 3
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(context.Background(), "garden")
	require.NoError(t, err)

	assert.Equal(t, &entity.Category{ID: 3, Name: "garden"}, category)
}

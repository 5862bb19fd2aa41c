package impl

import (
	"context"
	"testing"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/domain/service"
	infracache "store/internal/infra/cache"
	mockRepo "store/internal/mocks/repository"
	"store/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	orderRepo    *mockRepo.MockOrderRepository
	txManager    *mockRepo.MockTransactionManager
	productCache service.ProductCache
	cache        service.KeyValueCache
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	productCache := infracache.NewProductCache(newDiscardLogger())
	cache := infracache.NewMemoryCache()

	svc := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		OrderRepo:    orderRepo,
		TxManager:    txManager,
		ProductCache: productCache,
		Cache:        cache,
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      svc,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		txManager:    txManager,
		productCache: productCache,
		cache:        cache,
	}
}

func TestProductService_GetProducts_Filters(t *testing.T) {
	category := "books"
	price := int64(20)

	t.Run("no filter", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Product{newTestProduct(1, 20, "books")}, nil)

		products, err := fx.service.GetProducts(context.Background(), usecase.ProductFilter{})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("category", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().FindByCategory(mock.Anything, "books").Return([]*entity.Product{newTestProduct(1, 20, "books")}, nil)

		products, err := fx.service.GetProducts(context.Background(), usecase.ProductFilter{Category: &category})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("price", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().FindByPrice(mock.Anything, int64(20)).Return([]*entity.Product{newTestProduct(1, 20, "books")}, nil)

		products, err := fx.service.GetProducts(context.Background(), usecase.ProductFilter{Price: &price})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("category and price", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().FindByCategoryAndPrice(mock.Anything, "books", int64(20)).
			Return([]*entity.Product{newTestProduct(1, 20, "books")}, nil)

		products, err := fx.service.GetProducts(context.Background(), usecase.ProductFilter{Category: &category, Price: &price})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})
}

func TestProductService_GetProducts_NoMatch(t *testing.T) {
	fx := createTestProductService(t)
	category := "garden"

	fx.productRepo.EXPECT().FindByCategory(mock.Anything, "garden").Return([]*entity.Product{}, nil)

	products, err := fx.service.GetProducts(context.Background(), usecase.ProductFilter{Category: &category})

	assert.Nil(t, products)
	assert.ErrorIs(t, err, domainerrors.ErrNoProductsMatched)
}

func TestProductService_GetProduct_UsesCache(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newTestProduct(3, 15, "toys"), nil).Once()

	first, err := fx.service.GetProduct(ctx, 3)
	require.NoError(t, err)

	second, err := fx.service.GetProduct(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fx.productCache.Size())
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(context.Background(), 3)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Equal(t, 0, fx.productCache.Size())
}

func TestProductService_CreateProduct_PopulatesCache(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = 11
		}).
		Return(nil)

	created, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{Name: "Lamp", Price: 40, Category: "home"})
	require.NoError(t, err)

	cached, err := fx.service.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", cached.Name)
}

func TestProductService_CreateProducts_RollsBackOnFailure(t *testing.T) {
	fx := createTestProductService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)

	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewProductRepository().Return(txProductRepo)
	txProductRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	txProductRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("check constraint")).Once()

	products, err := fx.service.CreateProducts(context.Background(), []*usecase.ProductInput{
		{Name: "A", Price: 1, Category: "x"},
		{Name: "B", Price: 2, Category: "x"},
	})

	assert.Nil(t, products)
	require.Error(t, err)
	assert.Equal(t, 0, fx.productCache.Size())
}

func TestProductService_UpdateProduct_EvictsOrders(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	order := &entity.Order{ID: 7, AccountID: 2}

	require.NoError(t, fx.cache.Put(ctx, orderKey(7), order))

	fx.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newTestProduct(3, 15, "toys"), nil)
	fx.productRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.orderRepo.EXPECT().FindByProductID(mock.Anything, int64(3)).Return([]*entity.Order{order}, nil)

	updated, err := fx.service.UpdateProduct(ctx, 3, &usecase.ProductInput{Name: "Robot", Price: 25, Category: "toys"})
	require.NoError(t, err)
	assert.Equal(t, int64(25), updated.Price)

	cachedProduct, ok := fx.productCache.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Robot", cachedProduct.Name)

	cached, err := fx.cache.ContainsKey(ctx, orderKey(7))
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestProductService_DeleteProduct_DetachesFromOrders(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)

	fx.productCache.Put(newTestProduct(3, 15, "toys"))
	require.NoError(t, fx.cache.Put(ctx, keyAllOrders, []*entity.Order{{ID: 7, AccountID: 2}}))

	fx.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newTestProduct(3, 15, "toys"), nil)
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	factory.EXPECT().NewProductRepository().Return(txProductRepo)
	txOrderRepo.EXPECT().FindByProductID(mock.Anything, int64(3)).Return([]*entity.Order{{ID: 7, AccountID: 2}}, nil)
	txOrderRepo.EXPECT().RemoveProduct(mock.Anything, int64(7), int64(3)).Return(nil)
	txProductRepo.EXPECT().Delete(mock.Anything, int64(3)).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, 3))

	assert.Equal(t, 0, fx.productCache.Size())
	cached, err := fx.cache.ContainsKey(ctx, keyAllOrders)
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(context.Background(), 3)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

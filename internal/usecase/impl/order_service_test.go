package impl

import (
	"context"
	"testing"
	"time"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/domain/service"
	infracache "store/internal/infra/cache"
	mockRepo "store/internal/mocks/repository"
	"store/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	accountRepo *mockRepo.MockAccountRepository
	productRepo *mockRepo.MockProductRepository
	cache       service.KeyValueCache
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cache := infracache.NewMemoryCache()

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		AccountRepo: accountRepo,
		ProductRepo: productRepo,
		Cache:       cache,
		Logger:      newDiscardLogger(),
	})
	svc.(*orderService).now = func() time.Time { return testNow }

	return orderServiceFixtures{
		service:     svc,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		productRepo: productRepo,
		cache:       cache,
	}
}

func TestOrderService_CreateOrder_RequiresAccountID(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.CreateOrder(context.Background(), &usecase.OrderInput{ProductIDs: []int64{1}})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrAccountIDRequired)
}

func TestOrderService_CreateOrder_UnknownAccount(t *testing.T) {
	fx := createTestOrderService(t)

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(4)).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.CreateOrder(context.Background(), &usecase.OrderInput{
		AccountID:  int64Ptr(4),
		ProductIDs: []int64{1},
	})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestOrderService_CreateOrder_RequiresProducts(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), &usecase.OrderInput{AccountID: int64Ptr(4)})

	assert.ErrorIs(t, err, domainerrors.ErrProductIDsRequired)
	fx.accountRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(4)).Return(&entity.Account{ID: 4}, nil)
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, []int64{1, 2}).Return([]*entity.Product{newTestProduct(1, 10, "books")}, nil)

	_, err := fx.service.CreateOrder(context.Background(), &usecase.OrderInput{
		AccountID:  int64Ptr(4),
		ProductIDs: []int64{2, 1, 2},
	})

	assert.ErrorIs(t, err, domainerrors.ErrOrderProductsNotFound)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_RejectsNegativeTotal(t *testing.T) {
	fx := createTestOrderService(t)
	total := decimal.RequireFromString("-0.01")

	order, err := fx.service.CreateOrder(context.Background(), &usecase.OrderInput{
		AccountID:  int64Ptr(4),
		ProductIDs: []int64{1},
		TotalPrice: &total,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTotalPrice)
	assert.Equal(t, domainerrors.KindInvalidInput, domainerrors.KindOf(err))
	fx.accountRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_AppliesDefaults(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	require.NoError(t, fx.cache.Put(ctx, keyAllOrders, []*entity.Order{}))

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(4)).Return(&entity.Account{ID: 4}, nil)
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, []int64{1, 2}).
		Return([]*entity.Product{newTestProduct(1, 10, "books"), newTestProduct(2, 25, "toys")}, nil)
	fx.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = 100
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, &usecase.OrderInput{
		AccountID:  int64Ptr(4),
		ProductIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, testNow, order.OrderDate)
	assert.True(t, decimal.NewFromInt(35).Equal(order.TotalPrice), order.TotalPrice.String())
	assert.Equal(t, []int64{1, 2}, order.ProductIDs())

	cached, err := fx.cache.ContainsKey(ctx, keyAllOrders)
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestOrderService_CreateOrder_KeepsExplicitValues(t *testing.T) {
	fx := createTestOrderService(t)
	orderDate := time.Date(2023, time.December, 24, 0, 0, 0, 0, time.UTC)
	total := decimal.RequireFromString("99.50")

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(4)).Return(&entity.Account{ID: 4}, nil)
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, []int64{1}).Return([]*entity.Product{newTestProduct(1, 10, "books")}, nil)
	fx.orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	order, err := fx.service.CreateOrder(context.Background(), &usecase.OrderInput{
		AccountID:  int64Ptr(4),
		ProductIDs: []int64{1},
		OrderDate:  &orderDate,
		TotalPrice: &total,
	})
	require.NoError(t, err)

	assert.Equal(t, orderDate, order.OrderDate)
	assert.True(t, total.Equal(order.TotalPrice))
}

func TestOrderService_UpdateOrder_KeepsAccountAndDate(t *testing.T) {
	fx := createTestOrderService(t)
	existingDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().FindByID(mock.Anything, int64(8)).Return(&entity.Order{
		ID:        8,
		AccountID: 4,
		OrderDate: existingDate,
	}, nil)
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, []int64{3}).Return([]*entity.Product{newTestProduct(3, 12, "food")}, nil)
	fx.orderRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.UpdateOrder(context.Background(), 8, &usecase.OrderInput{
		AccountID:  int64Ptr(4),
		ProductIDs: []int64{3},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), order.AccountID)
	assert.Equal(t, existingDate, order.OrderDate)
	assert.True(t, decimal.NewFromInt(12).Equal(order.TotalPrice))
	fx.accountRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrder_ChecksNewAccount(t *testing.T) {
	fx := createTestOrderService(t)

	fx.orderRepo.EXPECT().FindByID(mock.Anything, int64(8)).Return(&entity.Order{ID: 8, AccountID: 4}, nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.UpdateOrder(context.Background(), 8, &usecase.OrderInput{
		AccountID:  int64Ptr(5),
		ProductIDs: []int64{3},
	})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestOrderService_UpdateOrder_RejectsNegativeTotal(t *testing.T) {
	fx := createTestOrderService(t)
	total := decimal.NewFromInt(-5)

	_, err := fx.service.UpdateOrder(context.Background(), 8, &usecase.OrderInput{
		ProductIDs: []int64{3},
		TotalPrice: &total,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTotalPrice)
	fx.orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	fx.orderRepo.EXPECT().FindByID(mock.Anything, int64(8)).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.UpdateOrder(context.Background(), 8, &usecase.OrderInput{ProductIDs: []int64{3}})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_DeleteOrder_EvictsCache(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	require.NoError(t, fx.cache.Put(ctx, orderKey(8), &entity.Order{ID: 8, AccountID: 4}))
	require.NoError(t, fx.cache.Put(ctx, accountOrdersKey(4), []*entity.Order{{ID: 8, AccountID: 4}}))

	fx.orderRepo.EXPECT().FindByID(mock.Anything, int64(8)).Return(&entity.Order{ID: 8, AccountID: 4}, nil)
	fx.orderRepo.EXPECT().Delete(mock.Anything, int64(8)).Return(nil)

	require.NoError(t, fx.service.DeleteOrder(ctx, 8))

	for _, key := range []string{orderKey(8), accountOrdersKey(4)} {
		cached, err := fx.cache.ContainsKey(ctx, key)
		require.NoError(t, err)
		assert.False(t, cached, key)
	}
}

func TestOrderService_GetOrdersByAccount_CachesResult(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByAccountID(mock.Anything, int64(4)).
		Return([]*entity.Order{{ID: 8, AccountID: 4, TotalPrice: decimal.NewFromInt(10)}}, nil).Once()

	first, err := fx.service.GetOrdersByAccount(ctx, 4)
	require.NoError(t, err)

	second, err := fx.service.GetOrdersByAccount(ctx, 4)
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.True(t, first[0].TotalPrice.Equal(second[0].TotalPrice))
}

func TestOrderService_Filters_NoMatch(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByProductCategory(mock.Anything, "garden").Return(nil, nil)
	fx.orderRepo.EXPECT().FindByProductPrice(mock.Anything, int64(999)).Return([]*entity.Order{}, nil)

	_, err := fx.service.FilterByProductCategory(ctx, "garden")
	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersMatched)

	_, err = fx.service.FilterByProductPrice(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrNoOrdersMatched)
}

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

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockRepo.MockAccountRepository
	orderRepo    *mockRepo.MockOrderRepository
	txManager    *mockRepo.MockTransactionManager
	cache        service.KeyValueCache
	productCache service.ProductCache
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cache := infracache.NewMemoryCache()
	productCache := infracache.NewProductCache(newDiscardLogger())

	svc := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		OrderRepo:    orderRepo,
		TxManager:    txManager,
		Cache:        cache,
		ProductCache: productCache,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		orderRepo:    orderRepo,
		txManager:    txManager,
		cache:        cache,
		productCache: productCache,
	}
}

func newTestAccount(id int64, nickname string) *entity.Account {
	return &entity.Account{
		ID:        id,
		Nickname:  nickname,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     nickname + "@example.com",
	}
}

func TestAccountService_GetAccount_CachesResult(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	orders := []*entity.Order{{ID: 10, AccountID: 1, Products: []*entity.Product{newTestProduct(3, 15, "toys")}}}
	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(newTestAccount(1, "jane"), nil).Once()
	fx.orderRepo.EXPECT().FindByAccountID(mock.Anything, int64(1)).Return(orders, nil).Once()

	first, err := fx.service.GetAccount(ctx, 1)
	require.NoError(t, err)

	second, err := fx.service.GetAccount(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first.Nickname, second.Nickname)
	require.Len(t, first.Orders, 1)
	require.Len(t, second.Orders, 1)
	assert.Equal(t, int64(10), second.Orders[0].ID)
	assert.Equal(t, []int64{3}, second.Orders[0].ProductIDs())
}

func TestAccountService_GetAccount_ReloadsOrdersAfterOrderWrite(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(newTestAccount(1, "jane"), nil).Once()
	fx.orderRepo.EXPECT().FindByAccountID(mock.Anything, int64(1)).Return([]*entity.Order{}, nil).Once()

	before, err := fx.service.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, before.Orders)

	// An order write for the account evicts its order list.
	require.NoError(t, fx.cache.Remove(ctx, accountOrdersKey(1)))
	fx.orderRepo.EXPECT().FindByAccountID(mock.Anything, int64(1)).
		Return([]*entity.Order{{ID: 11, AccountID: 1}}, nil).Once()

	after, err := fx.service.GetAccount(ctx, 1)
	require.NoError(t, err)
	require.Len(t, after.Orders, 1)
	assert.Equal(t, int64(11), after.Orders[0].ID)
}

func TestAccountService_GetAccounts_GroupsOrders(t *testing.T) {
	fx := createTestAccountService(t)

	fx.accountRepo.EXPECT().FindAll(mock.Anything).
		Return([]*entity.Account{newTestAccount(1, "jane"), newTestAccount(2, "john")}, nil)
	fx.orderRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{
		{ID: 10, AccountID: 1},
		{ID: 11, AccountID: 1},
	}, nil)

	accounts, err := fx.service.GetAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, []int64{10, 11}, []int64{accounts[0].Orders[0].ID, accounts[0].Orders[1].ID})
	assert.NotNil(t, accounts[1].Orders)
	assert.Empty(t, accounts[1].Orders)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccount(context.Background(), 9)

	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_GetAccountByNickname(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByNickname(mock.Anything, "jane").Return(newTestAccount(1, "jane"), nil).Once()
	fx.orderRepo.EXPECT().FindByAccountID(mock.Anything, int64(1)).Return([]*entity.Order{}, nil).Once()

	account, err := fx.service.GetAccountByNickname(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)

	cached, err := fx.cache.ContainsKey(ctx, accountNicknameKey("jane"))
	require.NoError(t, err)
	assert.True(t, cached)
}

func TestAccountService_CreateAccount_EvictsList(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Account{newTestAccount(1, "jane")}, nil).Times(2)
	fx.orderRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{}, nil).Once()
	fx.accountRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = 2
		}).
		Return(nil)

	_, err := fx.service.GetAccounts(ctx)
	require.NoError(t, err)

	created, err := fx.service.CreateAccount(ctx, &usecase.AccountInput{
		Nickname:  "john",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
	assert.Empty(t, created.Orders)

	_, err = fx.service.GetAccounts(ctx)
	require.NoError(t, err)
}

func TestAccountService_CreateAccount_Duplicate(t *testing.T) {
	fx := createTestAccountService(t)

	fx.accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateAccount)

	account, err := fx.service.CreateAccount(context.Background(), &usecase.AccountInput{Nickname: "jane"})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_UpdateAccount_EvictsOldNickname(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	require.NoError(t, fx.cache.Put(ctx, accountNicknameKey("old"), newTestAccount(1, "old")))
	require.NoError(t, fx.cache.Put(ctx, accountKey(1), newTestAccount(1, "old")))

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(newTestAccount(1, "old"), nil)
	fx.accountRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.orderRepo.EXPECT().FindByAccountID(mock.Anything, int64(1)).Return([]*entity.Order{{ID: 10, AccountID: 1}}, nil)

	updated, err := fx.service.UpdateAccount(ctx, 1, &usecase.AccountInput{
		Nickname:  "new",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Nickname)
	assert.Len(t, updated.Orders, 1)

	for _, key := range []string{accountNicknameKey("old"), accountKey(1)} {
		cached, err := fx.cache.ContainsKey(ctx, key)
		require.NoError(t, err)
		assert.False(t, cached, key)
	}
}

func TestAccountService_UpdateAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.UpdateAccount(context.Background(), 5, &usecase.AccountInput{Nickname: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, repository.ErrAccountNotFound)

	err := fx.service.DeleteAccount(context.Background(), 5)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_DeleteAccount_RemovesOrdersAndDetachesProducts(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)

	require.NoError(t, fx.cache.Put(ctx, orderKey(10), &entity.Order{ID: 10, AccountID: 1}))
	require.NoError(t, fx.cache.Put(ctx, accountOrdersKey(1), []*entity.Order{{ID: 10, AccountID: 1}}))

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(newTestAccount(1, "jane"), nil)
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	factory.EXPECT().NewProductRepository().Return(txProductRepo)
	factory.EXPECT().NewAccountRepository().Return(txAccountRepo)
	txOrderRepo.EXPECT().DeleteByAccountID(mock.Anything, int64(1)).Return([]int64{10}, nil)
	txProductRepo.EXPECT().ClearAccount(mock.Anything, int64(1)).Return(nil, nil)
	txAccountRepo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, 1))

	for _, key := range []string{orderKey(10), accountOrdersKey(1)} {
		cached, err := fx.cache.ContainsKey(ctx, key)
		require.NoError(t, err)
		assert.False(t, cached, key)
	}
}

func TestAccountService_DeleteAccount_DropsDetachedProductsFromCaches(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)

	owned := newTestProduct(5, 30, "books")
	owned.AccountID = int64Ptr(1)
	fx.productCache.Put(owned)

	// Order 20 belongs to account 2 but contains the product owned by account 1.
	otherOrder := &entity.Order{ID: 20, AccountID: 2, Products: []*entity.Product{owned}}
	require.NoError(t, fx.cache.Put(ctx, orderKey(20), otherOrder))
	require.NoError(t, fx.cache.Put(ctx, accountOrdersKey(2), []*entity.Order{otherOrder}))
	require.NoError(t, fx.cache.Put(ctx, keyAllOrders, []*entity.Order{otherOrder}))

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(newTestAccount(1, "jane"), nil)
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	factory.EXPECT().NewProductRepository().Return(txProductRepo)
	factory.EXPECT().NewAccountRepository().Return(txAccountRepo)
	txOrderRepo.EXPECT().DeleteByAccountID(mock.Anything, int64(1)).Return([]int64{}, nil)
	txProductRepo.EXPECT().ClearAccount(mock.Anything, int64(1)).Return([]int64{5}, nil)
	txOrderRepo.EXPECT().FindByProductID(mock.Anything, int64(5)).Return([]*entity.Order{otherOrder}, nil)
	txAccountRepo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, 1))

	_, ok := fx.productCache.Get(5)
	assert.False(t, ok)

	for _, key := range []string{orderKey(20), accountOrdersKey(2), keyAllOrders} {
		cached, err := fx.cache.ContainsKey(ctx, key)
		require.NoError(t, err)
		assert.False(t, cached, key)
	}
}

func TestAccountService_DeleteAccount_TransactionFailure(t *testing.T) {
	fx := createTestAccountService(t)

	fx.accountRepo.EXPECT().FindByID(mock.Anything, int64(1)).Return(newTestAccount(1, "jane"), nil)
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	err := fx.service.DeleteAccount(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete account")
}

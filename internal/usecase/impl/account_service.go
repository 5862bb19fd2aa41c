package impl

import (
	"context"
	"log/slog"

	deliverycontext "store/internal/delivery/context"
	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/domain/service"
	"store/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	accountRepo  repository.AccountRepository
	orderRepo    repository.OrderRepository
	txManager    repository.TransactionManager
	cache        service.KeyValueCache
	productCache service.ProductCache
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	OrderRepo    repository.OrderRepository
	TxManager    repository.TransactionManager
	Cache        service.KeyValueCache
	ProductCache service.ProductCache
	Logger       *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		orderRepo:    params.OrderRepo,
		txManager:    params.TxManager,
		cache:        params.Cache,
		productCache: params.ProductCache,
		logger:       params.Logger,
	}
}

// Account cache entries never hold orders. Orders are attached on every read from
// the order keys, which order and product writes already invalidate.

func (s *accountService) GetAccounts(ctx context.Context) ([]*entity.Account, error) {
	var accounts []*entity.Account
	if !cacheLookup(ctx, s.logger, s.cache, keyAllAccounts, &accounts) {
		var err error
		accounts, err = s.accountRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find accounts")
		}
		cacheStore(ctx, s.logger, s.cache, keyAllAccounts, accounts)
	}

	var orders []*entity.Order
	if !cacheLookup(ctx, s.logger, s.cache, keyAllOrders, &orders) {
		var err error
		orders, err = s.orderRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find orders")
		}
		cacheStore(ctx, s.logger, s.cache, keyAllOrders, orders)
	}

	byAccount := make(map[int64][]*entity.Order, len(accounts))
	for _, order := range orders {
		byAccount[order.AccountID] = append(byAccount[order.AccountID], order)
	}
	for _, account := range accounts {
		account.Orders = byAccount[account.ID]
		if account.Orders == nil {
			account.Orders = []*entity.Order{}
		}
	}

	return accounts, nil
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (*entity.Account, error) {
	var account entity.Account
	if cacheLookup(ctx, s.logger, s.cache, accountKey(id), &account) {
		return s.withOrders(ctx, &account)
	}

	found, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapAccountError(err, "failed to find account by ID")
	}
	cacheStore(ctx, s.logger, s.cache, accountKey(id), found)

	return s.withOrders(ctx, found)
}

func (s *accountService) GetAccountByNickname(ctx context.Context, nickname string) (*entity.Account, error) {
	key := accountNicknameKey(nickname)

	var account entity.Account
	if cacheLookup(ctx, s.logger, s.cache, key, &account) {
		return s.withOrders(ctx, &account)
	}

	found, err := s.accountRepo.FindByNickname(ctx, nickname)
	if err != nil {
		return nil, mapAccountError(err, "failed to find account by nickname")
	}
	cacheStore(ctx, s.logger, s.cache, key, found)

	return s.withOrders(ctx, found)
}

func (s *accountService) CreateAccount(ctx context.Context, input *usecase.AccountInput) (*entity.Account, error) {
	account := accountFromInput(0, input)

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, mapAccountError(err, "failed to create account")
	}

	cacheEvict(ctx, s.logger, s.cache,
		keyAllAccounts,
		accountKey(account.ID),
		accountNicknameKey(account.Nickname),
	)
	account.Orders = []*entity.Order{}

	return account, nil
}

// UpdateAccount also evicts the previous nickname so that lookups by the old
// nickname stop resolving to this account.
func (s *accountService) UpdateAccount(ctx context.Context, id int64, input *usecase.AccountInput) (*entity.Account, error) {
	existing, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapAccountError(err, "failed to find account by ID")
	}

	account := accountFromInput(id, input)
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, mapAccountError(err, "failed to update account")
	}

	cacheEvict(ctx, s.logger, s.cache,
		keyAllAccounts,
		accountKey(id),
		accountNicknameKey(account.Nickname),
		accountNicknameKey(existing.Nickname),
	)

	return s.withOrders(ctx, account)
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	existing, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return mapAccountError(err, "failed to find account by ID")
	}

	var (
		removedOrderIDs []int64
		detachedIDs     []int64
		affectedOrders  []*entity.Order
	)
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var txErr error
		txOrderRepo := txRepoFactory.NewOrderRepository()

		removedOrderIDs, txErr = txOrderRepo.DeleteByAccountID(ctx, id)
		if txErr != nil {
			return txErr
		}

		detachedIDs, txErr = txRepoFactory.NewProductRepository().ClearAccount(ctx, id)
		if txErr != nil {
			return txErr
		}

		// Orders of other accounts embed the detached products.
		for _, productID := range detachedIDs {
			orders, findErr := txOrderRepo.FindByProductID(ctx, productID)
			if findErr != nil {
				return findErr
			}
			affectedOrders = append(affectedOrders, orders...)
		}

		return txRepoFactory.NewAccountRepository().Delete(ctx, id)
	})
	if err != nil {
		return mapAccountError(err, "failed to delete account")
	}

	for _, productID := range detachedIDs {
		s.productCache.Remove(productID)
	}

	keys := []string{
		keyAllAccounts,
		accountKey(id),
		accountNicknameKey(existing.Nickname),
		accountOrdersKey(id),
	}
	for _, orderID := range removedOrderIDs {
		keys = append(keys, orderKey(orderID))
	}
	keys = append(keys, orderCacheKeys(affectedOrders)...)
	cacheEvict(ctx, s.logger, s.cache, keys...)

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Account deleted",
		slog.Int64("account_id", id),
		slog.Int("orders_removed", len(removedOrderIDs)),
		slog.Int("products_detached", len(detachedIDs)),
	)

	return nil
}

func (s *accountService) withOrders(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	key := accountOrdersKey(account.ID)

	var orders []*entity.Order
	if !cacheLookup(ctx, s.logger, s.cache, key, &orders) {
		var err error
		orders, err = s.orderRepo.FindByAccountID(ctx, account.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find orders by account")
		}
		cacheStore(ctx, s.logger, s.cache, key, orders)
	}

	if orders == nil {
		orders = []*entity.Order{}
	}
	account.Orders = orders

	return account, nil
}

func accountFromInput(id int64, input *usecase.AccountInput) *entity.Account {
	return &entity.Account{
		ID:        id,
		Nickname:  input.Nickname,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
}

func mapAccountError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound
	case errors.Is(err, repository.ErrDuplicateAccount):
		return domainerrors.ErrAccountAlreadyExists
	default:
		return errors.Wrap(err, message)
	}
}

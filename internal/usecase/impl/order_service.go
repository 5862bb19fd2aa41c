package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/domain/service"
	"store/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	accountRepo repository.AccountRepository
	productRepo repository.ProductRepository
	cache       service.KeyValueCache
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	AccountRepo repository.AccountRepository
	ProductRepo repository.ProductRepository
	Cache       service.KeyValueCache
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		accountRepo: params.AccountRepo,
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *orderService) GetOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if cacheLookup(ctx, s.logger, s.cache, keyAllOrders, &orders) {
		return orders, nil
	}

	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}
	cacheStore(ctx, s.logger, s.cache, keyAllOrders, orders)

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	var order entity.Order
	if cacheLookup(ctx, s.logger, s.cache, orderKey(id), &order) {
		return &order, nil
	}

	found, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderError(err, "failed to find order by ID")
	}
	cacheStore(ctx, s.logger, s.cache, orderKey(id), found)

	return found, nil
}

func (s *orderService) GetOrdersByAccount(ctx context.Context, accountID int64) ([]*entity.Order, error) {
	key := accountOrdersKey(accountID)

	var orders []*entity.Order
	if cacheLookup(ctx, s.logger, s.cache, key, &orders) {
		return orders, nil
	}

	orders, err := s.orderRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by account")
	}
	cacheStore(ctx, s.logger, s.cache, key, orders)

	return orders, nil
}

func (s *orderService) CreateOrder(ctx context.Context, input *usecase.OrderInput) (*entity.Order, error) {
	if input.AccountID == nil {
		return nil, domainerrors.ErrAccountIDRequired
	}

	if len(input.ProductIDs) == 0 {
		return nil, domainerrors.ErrProductIDsRequired
	}

	if err := validateTotalPrice(input); err != nil {
		return nil, err
	}

	if err := s.ensureAccount(ctx, *input.AccountID); err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, input.ProductIDs)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		AccountID: *input.AccountID,
		Products:  products,
	}
	s.applyDefaults(order, input)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	cacheEvict(ctx, s.logger, s.cache, keyAllOrders, accountOrdersKey(order.AccountID))

	return order, nil
}

// UpdateOrder keeps the current account unless a new one is supplied, in which
// case the new account must exist.
func (s *orderService) UpdateOrder(ctx context.Context, id int64, input *usecase.OrderInput) (*entity.Order, error) {
	if err := validateTotalPrice(input); err != nil {
		return nil, err
	}

	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderError(err, "failed to find order by ID")
	}

	accountID := existing.AccountID
	if input.AccountID != nil && *input.AccountID != existing.AccountID {
		if err := s.ensureAccount(ctx, *input.AccountID); err != nil {
			return nil, err
		}
		accountID = *input.AccountID
	}

	products, err := s.resolveProducts(ctx, input.ProductIDs)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:        id,
		AccountID: accountID,
		OrderDate: existing.OrderDate,
		Products:  products,
	}
	s.applyDefaults(order, input)

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, mapOrderError(err, "failed to update order")
	}

	cacheEvict(ctx, s.logger, s.cache,
		keyAllOrders,
		orderKey(id),
		accountOrdersKey(existing.AccountID),
		accountOrdersKey(accountID),
	)

	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return mapOrderError(err, "failed to find order by ID")
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return mapOrderError(err, "failed to delete order")
	}

	cacheEvict(ctx, s.logger, s.cache, orderCacheKeys([]*entity.Order{existing})...)

	return nil
}

func (s *orderService) FilterByProductCategory(ctx context.Context, category string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByProductCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter orders by category")
	}

	if len(orders) == 0 {
		return nil, domainerrors.ErrNoOrdersMatched
	}

	return orders, nil
}

func (s *orderService) FilterByProductPrice(ctx context.Context, price int64) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByProductPrice(ctx, price)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter orders by price")
	}

	if len(orders) == 0 {
		return nil, domainerrors.ErrNoOrdersMatched
	}

	return orders, nil
}

func (s *orderService) ensureAccount(ctx context.Context, accountID int64) error {
	if _, err := s.accountRepo.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to find account by ID")
	}

	return nil
}

// resolveProducts loads every distinct requested product. Any unknown id fails the whole request.
func (s *orderService) resolveProducts(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, domainerrors.ErrProductIDsRequired
	}

	distinct := slices.Clone(ids)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)

	products, err := s.productRepo.FindByIDs(ctx, distinct)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	if len(products) != len(distinct) {
		return nil, domainerrors.ErrOrderProductsNotFound
	}

	return products, nil
}

func validateTotalPrice(input *usecase.OrderInput) error {
	if input.TotalPrice != nil && input.TotalPrice.IsNegative() {
		return domainerrors.ErrInvalidTotalPrice
	}

	return nil
}

func (s *orderService) applyDefaults(order *entity.Order, input *usecase.OrderInput) {
	switch {
	case input.OrderDate != nil:
		order.OrderDate = *input.OrderDate
	case order.OrderDate.IsZero():
		order.OrderDate = s.now()
	}

	if input.TotalPrice != nil {
		order.TotalPrice = *input.TotalPrice
	} else {
		order.TotalPrice = entity.SumPrices(order.Products)
	}
}

func mapOrderError(err error, message string) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	return errors.Wrap(err, message)
}

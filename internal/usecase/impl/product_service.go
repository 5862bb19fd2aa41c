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

type productService struct {
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	txManager    repository.TransactionManager
	productCache service.ProductCache
	cache        service.KeyValueCache
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	OrderRepo    repository.OrderRepository
	TxManager    repository.TransactionManager
	ProductCache service.ProductCache
	Cache        service.KeyValueCache
	Logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		orderRepo:    params.OrderRepo,
		txManager:    params.TxManager,
		productCache: params.ProductCache,
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (s *productService) GetProducts(ctx context.Context, filter usecase.ProductFilter) ([]*entity.Product, error) {
	var (
		products []*entity.Product
		err      error
	)

	switch {
	case filter.Category != nil && filter.Price != nil:
		products, err = s.productRepo.FindByCategoryAndPrice(ctx, *filter.Category, *filter.Price)
	case filter.Category != nil:
		products, err = s.productRepo.FindByCategory(ctx, *filter.Category)
	case filter.Price != nil:
		products, err = s.productRepo.FindByPrice(ctx, *filter.Price)
	default:
		products, err = s.productRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	if len(products) == 0 {
		return nil, domainerrors.ErrNoProductsMatched
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	if product, ok := s.productCache.Get(id); ok {
		return product, nil
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err, "failed to find product by ID")
	}
	s.productCache.Put(product)

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(0, input)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	s.productCache.Put(product)

	return product, nil
}

func (s *productService) CreateProducts(ctx context.Context, inputs []*usecase.ProductInput) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(inputs))
	for _, input := range inputs {
		products = append(products, productFromInput(0, input))
	}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		productRepo := txRepoFactory.NewProductRepository()
		for _, product := range products {
			if err := productRepo.Create(ctx, product); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create products")
	}

	for _, product := range products {
		s.productCache.Put(product)
	}

	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return nil, mapProductError(err, "failed to find product by ID")
	}

	product := productFromInput(id, input)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, mapProductError(err, "failed to update product")
	}
	s.productCache.Put(product)

	// Cached orders embed product snapshots.
	orders, err := s.orderRepo.FindByProductID(ctx, id)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to resolve orders for cache invalidation",
			slog.Int64("product_id", id),
			slog.Any("error", err),
		)
		orders = nil
	}
	cacheEvict(ctx, s.logger, s.cache, orderCacheKeys(orders)...)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return mapProductError(err, "failed to find product by ID")
	}

	var affected []*entity.Order
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()

		orders, err := orderRepo.FindByProductID(ctx, id)
		if err != nil {
			return err
		}
		for _, order := range orders {
			if err := orderRepo.RemoveProduct(ctx, order.ID, id); err != nil {
				return err
			}
		}
		affected = orders

		return txRepoFactory.NewProductRepository().Delete(ctx, id)
	})
	if err != nil {
		return mapProductError(err, "failed to delete product")
	}

	s.productCache.Remove(id)
	cacheEvict(ctx, s.logger, s.cache, orderCacheKeys(affected)...)

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Product deleted",
		slog.Int64("product_id", id),
		slog.Int("orders_detached", len(affected)),
	)

	return nil
}

func productFromInput(id int64, input *usecase.ProductInput) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      input.Name,
		Price:     input.Price,
		Category:  input.Category,
		AccountID: input.AccountID,
	}
}

func mapProductError(err error, message string) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, message)
}

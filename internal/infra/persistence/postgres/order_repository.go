package postgres

import (
	"context"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const ordersByProductPriceSQL = `
SELECT DISTINCT o.id
FROM orders o
JOIN order_product op ON op.order_id = o.id
JOIN products p ON p.id = op.product_id
WHERE p.price = ?
ORDER BY o.id`

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to find orders")
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withProducts(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindByAccountID(ctx context.Context, accountID int64) ([]*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx).Where("account_id = ?", accountID), "failed to find orders by account")
}

func (repo *orderRepository) FindByProductID(ctx context.Context, productID int64) ([]*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx).
		Where("id IN (?)", repo.db.Model(&model.OrderProductModel{}).Select("order_id").Where("product_id = ?", productID)),
		"failed to find orders by product",
	)
}

// FindByProductCategory is served by a read replica when one is configured.
func (repo *orderRepository) FindByProductCategory(ctx context.Context, category string) ([]*entity.Order, error) {
	orderIDs := repo.db.
		Model(&model.OrderProductModel{}).
		Select("order_product.order_id").
		Joins("JOIN products ON products.id = order_product.product_id").
		Where("products.category = ?", category)

	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Where("id IN (?)", orderIDs),
		"failed to find orders by product category",
	)
}

// FindByProductPrice resolves matching ids with a native query, then loads the orders.
func (repo *orderRepository) FindByProductPrice(ctx context.Context, price int64) ([]*entity.Order, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(ordersByProductPriceSQL, price).
		Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order IDs by product price")
	}

	if len(ids) == 0 {
		return []*entity.Order{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Where("id IN ?", ids),
		"failed to find orders by product price",
	)
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products").Create(orderM).Error; err != nil {
			return err
		}

		return insertOrderLinks(tx, orderM.ID, order.ProductIDs())
	})
	if err != nil {
		return repo.mapWriteError(ctx, err, orderM.AccountID, "failed to create order")
	}

	order.ID = orderM.ID

	return nil
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.OrderModel{}).
			Where("id = ?", orderM.ID).
			Updates(map[string]any{
				"order_date":  orderM.OrderDate,
				"total_price": orderM.TotalPrice,
				"account_id":  orderM.AccountID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrOrderNotFound
		}

		if err := tx.Where("order_id = ?", orderM.ID).Delete(&model.OrderProductModel{}).Error; err != nil {
			return err
		}

		return insertOrderLinks(tx, orderM.ID, order.ProductIDs())
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return repository.ErrOrderNotFound
		}

		return repo.mapWriteError(ctx, err, orderM.AccountID, "failed to update order")
	}

	return nil
}

func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	var rowsAffected int64

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderProductModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.OrderModel{})
		rowsAffected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	if rowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&model.OrderProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove product from order")
	}

	return nil
}

func (repo *orderRepository) DeleteByAccountID(ctx context.Context, accountID int64) ([]int64, error) {
	var ids []int64

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.OrderModel{}).
			Where("account_id = ?", accountID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}

		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("order_id IN ?", ids).Delete(&model.OrderProductModel{}).Error; err != nil {
			return err
		}

		return tx.Where("id IN ?", ids).Delete(&model.OrderModel{}).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete orders by account")
	}

	return ids, nil
}

func (repo *orderRepository) withProducts(query *gorm.DB) *gorm.DB {
	return query.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("products.id")
	})
}

func (repo *orderRepository) find(query *gorm.DB, failure string) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.withProducts(query).Order("id").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func insertOrderLinks(tx *gorm.DB, orderID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}

	links := make([]model.OrderProductModel, 0, len(productIDs))
	for _, productID := range productIDs {
		links = append(links, model.OrderProductModel{OrderID: orderID, ProductID: productID})
	}

	return tx.Create(&links).Error
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	products := make([]*entity.Product, 0, len(data.Products))
	for i := range data.Products {
		products = append(products, toProductDomain(&data.Products[i]))
	}

	return &entity.Order{
		ID:         data.ID,
		OrderDate:  data.OrderDate,
		TotalPrice: data.TotalPrice,
		AccountID:  data.AccountID,
		Products:   products,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:         data.ID,
		OrderDate:  data.OrderDate,
		TotalPrice: data.TotalPrice,
		AccountID:  data.AccountID,
	}
}

// mapWriteError tells an unknown account apart from an unknown product. A
// translated foreign key error carries no constraint name, so the account is looked up.
func (repo *orderRepository) mapWriteError(ctx context.Context, err error, accountID int64, message string) error {
	switch {
	case isUnknownAccountViolation(err):
		return domainerrors.ErrAccountNotFound.WrapMessage("invalid account reference")
	case isForeignKeyConstraintViolation(err):
		var count int64
		if lookupErr := repo.db.WithContext(ctx).
			Model(&model.AccountModel{}).
			Where("id = ?", accountID).
			Count(&count).Error; lookupErr == nil && count == 0 {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid account reference")
		}

		return domainerrors.ErrOrderProductsNotFound.WrapMessage("invalid product reference")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidTotalPrice.WrapMessage("rejected by check constraint")
	default:
		return domainerrors.NewDatabaseExecuteError(err, message)
	}
}

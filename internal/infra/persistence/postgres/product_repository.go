package postgres

import (
	"context"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to find products")
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).Where("id IN ?", ids), "failed to find products by IDs")
}

func (repo *productRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).Where("category = ?", category), "failed to find products by category")
}

func (repo *productRepository) FindByPrice(ctx context.Context, price int64) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).Where("price = ?", price), "failed to find products by price")
}

func (repo *productRepository) FindByCategoryAndPrice(ctx context.Context, category string, price int64) ([]*entity.Product, error) {
	return repo.find(
		repo.db.WithContext(ctx).Where("category = ? AND price = ?", category, price),
		"failed to find products by category and price",
	)
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":       product.Name,
			"price":      product.Price,
			"category":   product.Category,
			"account_id": product.AccountID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "product is still referenced by an order")
		}

		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) ClearAccount(ctx context.Context, accountID int64) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("account_id = ?", accountID).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products of account")
	}

	if len(ids) == 0 {
		return ids, nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ?", ids).
		Update("account_id", nil).Error; err != nil {
		return nil, errors.Wrap(err, "failed to clear product account")
	}

	return ids, nil
}

func (repo *productRepository) find(query *gorm.DB, failure string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := query.Order("id").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	return toProductsDomain(productModels), nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		Category:  data.Category,
		AccountID: data.AccountID,
	}
}

func toProductsDomain(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		Category:  data.Category,
		AccountID: data.AccountID,
	}
}

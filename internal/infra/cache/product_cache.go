package cache

import (
	"log/slog"
	"sync"

	"store/internal/domain/entity"
	"store/internal/domain/service"
)

type productCache struct {
	mu       sync.RWMutex
	products map[int64]*entity.Product
	logger   *slog.Logger
}

// NewProductCache creates an empty id to product cache.
func NewProductCache(logger *slog.Logger) service.ProductCache {
	return &productCache{
		products: make(map[int64]*entity.Product),
		logger:   logger,
	}
}

func (c *productCache) Get(id int64) (*entity.Product, bool) {
	c.mu.RLock()
	product, ok := c.products[id]
	c.mu.RUnlock()

	observeLookup(cacheLabelProduct, ok)
	if !ok {
		return nil, false
	}
	c.logger.Debug("Product served from cache", slog.Int64("product_id", id))

	return product.Clone(), true
}

func (c *productCache) Put(product *entity.Product) {
	if product == nil || product.ID == 0 {
		return
	}

	c.mu.Lock()
	c.products[product.ID] = product.Clone()
	c.mu.Unlock()

	c.logger.Debug("Product cached", slog.Int64("product_id", product.ID))
}

func (c *productCache) Remove(id int64) {
	c.mu.Lock()
	delete(c.products, id)
	c.mu.Unlock()
}

func (c *productCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.products)
}

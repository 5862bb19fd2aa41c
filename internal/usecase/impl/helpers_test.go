package impl

import (
	"io"
	"log/slog"

	"store/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func int64Ptr(v int64) *int64 {
	return &v
}

func newTestProduct(id, price int64, category string) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     "product-" + category,
		Price:    price,
		Category: category,
	}
}

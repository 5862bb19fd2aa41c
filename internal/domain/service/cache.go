package service

import (
	"context"

	"store/internal/domain/entity"
)

// KeyValueCache is an untyped lookup cache. Values are stored encoded and
// decoded into the caller's destination on read. Entries never expire.
type KeyValueCache interface {
	// Get decodes the value stored under key into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value any) error

	// ContainsKey reports whether key is present.
	ContainsKey(ctx context.Context, key string) (bool, error)

	// Remove deletes the given keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error

	// Clear drops every entry.
	Clear(ctx context.Context) error
}

// ProductCache is a typed id to product lookup used by product reads.
type ProductCache interface {
	Get(id int64) (*entity.Product, bool)

	// Put stores a copy of product. Nil products and products without an id are ignored.
	Put(product *entity.Product)

	Remove(id int64)
	Size() int
}

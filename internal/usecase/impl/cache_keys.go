package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "store/internal/delivery/context"
	"store/internal/domain/entity"
	"store/internal/domain/service"
)

const (
	keyAllAccounts = "all_accounts"
	keyAllOrders   = "all_orders"
)

func accountKey(id int64) string {
	return "account_" + strconv.FormatInt(id, 10)
}

func accountNicknameKey(nickname string) string {
	return "account_nickname_" + nickname
}

func orderKey(id int64) string {
	return "order_" + strconv.FormatInt(id, 10)
}

func accountOrdersKey(accountID int64) string {
	return "orders_account_" + strconv.FormatInt(accountID, 10)
}

// cacheLookup is best effort: a cache failure is logged and treated as a miss.
func cacheLookup(ctx context.Context, logger *slog.Logger, cache service.KeyValueCache, key string, dest any) bool {
	found, err := cache.Get(ctx, key, dest)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Cache read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false
	}

	return found
}

func cacheStore(ctx context.Context, logger *slog.Logger, cache service.KeyValueCache, key string, value any) {
	if err := cache.Put(ctx, key, value); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Cache write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func cacheEvict(ctx context.Context, logger *slog.Logger, cache service.KeyValueCache, keys ...string) {
	if err := cache.Remove(ctx, keys...); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Cache invalidation failed",
			slog.Any("keys", keys),
			slog.Any("error", err),
		)
	}
}

// orderCacheKeys lists every cache key that can hold any of the given orders.
func orderCacheKeys(orders []*entity.Order) []string {
	keys := []string{keyAllOrders}
	for _, order := range orders {
		keys = append(keys, orderKey(order.ID), accountOrdersKey(order.AccountID))
	}

	return keys
}

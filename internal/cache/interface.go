package cache

import (
	"context"
	"time"
)

// Cache stores JSON encoded values under string keys. A ttl <= 0 means the
// configured default.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	GetEx(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ProductKeyPrefix = "product"
	CartKeyPrefix    = "cart"
	SessionKeyPrefix = "session"
)

// ProductListKey holds the unfiltered catalog listing.
var ProductListKey = Key(ProductKeyPrefix, "list")

package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=cache_interface.go -destination=mocks/cache_mock.go -package=mock_interfaces

// ICacheStore is a string key/value cache. Get returns ok=false on a miss.
type ICacheStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

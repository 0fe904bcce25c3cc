package cache

import (
	"context"
	"fmt"
)

type noopCache struct{}

// NewNoopCache returns a RedisCache that stores nothing and misses on every Get.
func NewNoopCache() RedisCache {
	return noopCache{}
}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

func (noopCache) Get(_ context.Context, key string, _ any) error {
	return fmt.Errorf("cache disabled for %s: %w", key, Nil)
}

func (noopCache) Delete(_ context.Context, _ string) error {
	return nil
}

func (noopCache) Clear(_ context.Context, _ string) error {
	return nil
}

func (noopCache) Incr(_ context.Context, key string, _ int) (int64, error) {
	return 0, fmt.Errorf("cache disabled for %s: %w", key, Nil)
}

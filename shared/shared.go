package shared

import (
	"context"
	"fmt"
	"kidstrainer/shared/cache"
	"kidstrainer/shared/dto"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts into a single redis key.
func BuildCacheKey(prefix string, parts ...any) string {
	key := []string{prefix}
	for _, part := range parts {
		key = append(key, fmt.Sprint(part))
	}

	return strings.Join(key, cacheKeySeparator)
}

// InvalidateCaches drops every key under prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

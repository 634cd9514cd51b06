package cache

import (
	"context"
	"log/slog"
)

// SafeDelete drops cache keys without surfacing the failure. Repositories
// call this after mutations; a failed invalidation only extends the stats
// TTL window, it never fails the write.
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

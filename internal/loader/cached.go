package loader

import (
	"context"

	"github.com/MKhiriev/go-config-resolver/internal/cache"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

type cachedLoader struct {
	Loader
	cache  *cache.LayeredCache
	logger *logger.Logger
}

// Cached wraps next so its results are kept in c under
// "{layerPrefix}{type}:{appID}". The layer follows from the source type.
// Failed loads are not cached.
func Cached(next Loader, c *cache.LayeredCache, logger *logger.Logger) Loader {
	return &cachedLoader{Loader: next, cache: c, logger: logger}
}

// CacheKey returns the cache key a cached loader of source uses for appID.
func CacheKey(source models.SourceType, appID string) string {
	return cache.KeyPrefix(cache.LayerForSource(source)) + string(source) + ":" + appID
}

func (l *cachedLoader) Load(ctx context.Context, appID string) (models.ConfigMap, error) {
	key := CacheKey(l.Type(), appID)
	if v, ok := l.cache.Get(key, ""); ok {
		if data, ok := v.(models.ConfigMap); ok {
			return data.Clone(), nil
		}
	}

	data, err := l.Loader.Load(ctx, appID)
	if err != nil {
		return nil, err
	}
	if err = l.cache.Set(key, data.Clone(), l.Type()); err != nil {
		l.logger.Warn().Err(err).Str("key", key).Msg("loader result not cached")
	}
	return data, nil
}

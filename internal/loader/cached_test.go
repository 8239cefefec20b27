package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-resolver/internal/cache"
	"github.com/MKhiriev/go-config-resolver/internal/config"
	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/models"
)

type countingLoader struct {
	source models.SourceType
	data   models.ConfigMap
	err    error
	calls  int
}

func (c *countingLoader) Type() models.SourceType { return c.source }
func (c *countingLoader) Priority() int           { return 7 }
func (c *countingLoader) Load(context.Context, string) (models.ConfigMap, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.data.Clone(), nil
}

func newCache(t *testing.T) *cache.LayeredCache {
	t.Helper()
	c := cache.New(cache.WithEnvironment(utils.NewMapEnvironment(nil)))
	t.Cleanup(c.Destroy)
	return c
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "remote:remote-service:admin", CacheKey(models.SourceRemote, "admin"))
	assert.Equal(t, "env:app-env-vars:admin", CacheKey(models.SourceAppEnv, "admin"))
	assert.Equal(t, "file:root-env-file:admin", CacheKey(models.SourceRootEnvFile, "admin"))
}

func TestCached_ServesFromCache(t *testing.T) {
	c := newCache(t)
	inner := &countingLoader{source: models.SourceRemote, data: models.ConfigMap{"a": "1"}}
	l := Cached(inner, c, logger.Nop())

	assert.Equal(t, models.SourceRemote, l.Type())
	assert.Equal(t, 7, l.Priority())

	first, err := l.Load(context.Background(), "admin")
	require.NoError(t, err)
	first["a"] = "mutated"

	second, err := l.Load(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ConfigMap{"a": "1"}, second)
	assert.Equal(t, 1, inner.calls)

	_, ok := c.Get("remote:remote-service:admin", cache.LayerRemote)
	assert.True(t, ok)
}

func TestCached_InvalidationReloads(t *testing.T) {
	c := newCache(t)
	inner := &countingLoader{source: models.SourceAppEnvFile, data: models.ConfigMap{"a": "1"}}
	l := Cached(inner, c, logger.Nop())

	_, err := l.Load(context.Background(), "admin")
	require.NoError(t, err)
	_, err = c.Invalidate("*:admin", "")
	require.NoError(t, err)
	_, err = l.Load(context.Background(), "admin")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	c := newCache(t)
	inner := &countingLoader{source: models.SourceRemote, err: errors.New("down")}
	l := Cached(inner, c, logger.Nop())

	_, err := l.Load(context.Background(), "admin")
	assert.Error(t, err)
	_, err = l.Load(context.Background(), "admin")
	assert.Error(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCached_ProcessEnvDriftReloads(t *testing.T) {
	patterns, err := CompilePatterns(config.DefaultDirectEnvPatterns)
	require.NoError(t, err)

	env := utils.NewMapEnvironment(map[string]string{"REDIS_HOST": "a"})
	c := cache.New(
		cache.WithEnvironment(env),
		cache.WithRelevancePatterns(cache.DefaultRelevancePatterns("CONFIG", patterns...)...),
	)
	t.Cleanup(c.Destroy)

	l := Cached(NewProcessEnvLoader(env, keytransform.New("CONFIG"), patterns), c, logger.Nop())

	before, err := l.Load(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "a", before["redis.host"])

	env.Set("REDIS_HOST", "b")

	after, err := l.Load(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "b", after["redis.host"])
}

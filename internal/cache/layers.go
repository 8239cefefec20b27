package cache

import (
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-config-resolver/models"
)

// Layer names one partition of the cache.
type Layer string

const (
	LayerRemote   Layer = "remote"
	LayerEnvVars  Layer = "env-vars"
	LayerEnvFiles Layer = "env-files"
	LayerMerged   Layer = "merged"
)

// Layers lists every layer in a stable order.
var Layers = []Layer{LayerRemote, LayerEnvVars, LayerEnvFiles, LayerMerged}

// Key prefixes used to infer a layer from a cache key.
const (
	RemoteKeyPrefix   = "remote:"
	EnvVarsKeyPrefix  = "env:"
	EnvFilesKeyPrefix = "file:"
	MergedKeyPrefix   = "merged:"
)

// LayerConfig is the TTL and capacity of one layer. EnvSensitive layers are
// cleared whenever the tracked environment changes.
type LayerConfig struct {
	TTL          time.Duration
	MaxEntries   int
	EnvSensitive bool
}

// DefaultLayerConfigs returns the built-in layer settings.
func DefaultLayerConfigs() map[Layer]LayerConfig {
	return map[Layer]LayerConfig{
		LayerRemote:   {TTL: 15 * time.Minute, MaxEntries: 500},
		LayerEnvVars:  {TTL: 5 * time.Minute, MaxEntries: 1000, EnvSensitive: true},
		LayerEnvFiles: {TTL: 2 * time.Minute, MaxEntries: 500},
		LayerMerged:   {TTL: 30 * time.Second, MaxEntries: 200, EnvSensitive: true},
	}
}

// InferLayer picks a layer from the key prefix: "remote:", "env:" and
// "file:" select their layers, anything else is merged.
func InferLayer(key string) Layer {
	switch {
	case strings.HasPrefix(key, RemoteKeyPrefix):
		return LayerRemote
	case strings.HasPrefix(key, EnvVarsKeyPrefix):
		return LayerEnvVars
	case strings.HasPrefix(key, EnvFilesKeyPrefix):
		return LayerEnvFiles
	default:
		return LayerMerged
	}
}

// LayerForSource maps a source type to the layer its data is cached in.
func LayerForSource(source models.SourceType) Layer {
	switch source {
	case models.SourceRemote:
		return LayerRemote
	case models.SourceGenericEnv, models.SourceAppEnv, models.SourceProcessEnv:
		return LayerEnvVars
	case models.SourceRootEnvFile, models.SourceAppEnvFile:
		return LayerEnvFiles
	default:
		return LayerMerged
	}
}

// KeyPrefix returns the key prefix that InferLayer maps back to l.
func KeyPrefix(l Layer) string {
	switch l {
	case LayerRemote:
		return RemoteKeyPrefix
	case LayerEnvVars:
		return EnvVarsKeyPrefix
	case LayerEnvFiles:
		return EnvFilesKeyPrefix
	default:
		return MergedKeyPrefix
	}
}

type entry struct {
	value       any
	timestamp   time.Time
	ttl         time.Duration
	source      models.SourceType
	contentHash string
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.timestamp) > e.ttl
}

type layer struct {
	name    Layer
	cfg     LayerConfig
	entries map[string]*entry

	hits            uint64
	misses          uint64
	evictions       uint64
	invalidations   uint64
	expiredRemovals uint64
}

func newLayer(name Layer, cfg LayerConfig) *layer {
	return &layer{
		name:    name,
		cfg:     cfg,
		entries: make(map[string]*entry),
	}
}

// evictOldest drops the oldest fifth of the entries by insertion time,
// at least one entry.
func (l *layer) evictOldest() {
	n := len(l.entries) / 5
	if n < 1 {
		n = 1
	}

	type aged struct {
		key string
		ts  time.Time
	}
	all := make([]aged, 0, len(l.entries))
	for k, e := range l.entries {
		all = append(all, aged{key: k, ts: e.timestamp})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].ts.Equal(all[j].ts) {
			return all[i].key < all[j].key
		}
		return all[i].ts.Before(all[j].ts)
	})

	for _, a := range all[:n] {
		delete(l.entries, a.key)
		l.evictions++
	}
}

func (l *layer) removeExpired(now time.Time) int {
	removed := 0
	for k, e := range l.entries {
		if e.expired(now) {
			delete(l.entries, k)
			removed++
		}
	}
	l.expiredRemovals += uint64(removed)
	return removed
}

func (l *layer) clear() int {
	n := len(l.entries)
	clear(l.entries)
	l.invalidations += uint64(n)
	return n
}

func (l *layer) stats() models.LayerStats {
	return models.LayerStats{
		Name:            string(l.name),
		Entries:         len(l.entries),
		MaxEntries:      l.cfg.MaxEntries,
		TTL:             l.cfg.TTL,
		EnvSensitive:    l.cfg.EnvSensitive,
		Hits:            l.hits,
		Misses:          l.misses,
		Evictions:       l.evictions,
		Invalidations:   l.invalidations,
		ExpiredRemovals: l.expiredRemovals,
	}
}

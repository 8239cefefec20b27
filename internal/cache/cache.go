// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache implements the layered configuration cache.
//
// Entries live in one of four layers (remote, env-vars, env-files, merged),
// each with its own TTL and capacity. Layers marked env-sensitive are dropped
// as a whole when the relevant part of the process environment changes
// between reads.
package cache

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/models"
)

// DefaultSweepInterval is how often Run removes expired entries.
const DefaultSweepInterval = time.Minute

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// LayeredCache is a multi-layer TTL cache with environment drift detection.
// It is safe for concurrent use.
type LayeredCache struct {
	mu        sync.Mutex
	layers    map[Layer]*layer
	snapshot  models.EnvironmentSnapshot
	lastSweep time.Time
	envDrifts uint64

	clock         Clock
	env           utils.Environment
	relevance     []*regexp.Regexp
	sweepInterval time.Duration
	logger        *logger.Logger

	runMu     sync.Mutex
	destroyed bool
	stop      chan struct{}
	wg        sync.WaitGroup
}

// Option configures a LayeredCache.
type Option func(*LayeredCache)

func WithClock(clock Clock) Option {
	return func(c *LayeredCache) { c.clock = clock }
}

func WithEnvironment(env utils.Environment) Option {
	return func(c *LayeredCache) { c.env = env }
}

// WithLayerConfig overrides the settings of one layer.
func WithLayerConfig(l Layer, cfg LayerConfig) Option {
	return func(c *LayeredCache) {
		if existing, ok := c.layers[l]; ok {
			existing.cfg = cfg
		}
	}
}

func WithRelevancePatterns(patterns ...*regexp.Regexp) Option {
	return func(c *LayeredCache) { c.relevance = patterns }
}

func WithSweepInterval(d time.Duration) Option {
	return func(c *LayeredCache) {
		if d > 0 {
			c.sweepInterval = d
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(c *LayeredCache) { c.logger = l }
}

// New creates a LayeredCache with the default layer settings, the real
// clock and the process environment, then applies opts.
func New(opts ...Option) *LayeredCache {
	c := &LayeredCache{
		layers:        make(map[Layer]*layer, len(Layers)),
		clock:         realClock{},
		env:           utils.NewOSEnvironment(),
		relevance:     DefaultRelevancePatterns(""),
		sweepInterval: DefaultSweepInterval,
		logger:        logger.Nop(),
		stop:          make(chan struct{}),
	}
	for name, cfg := range DefaultLayerConfigs() {
		c.layers[name] = newLayer(name, cfg)
	}
	for _, opt := range opts {
		opt(c)
	}

	now := c.clock.Now()
	c.snapshot = takeSnapshot(c.env, c.relevance, now)
	c.lastSweep = now
	return c
}

// Get returns the value stored under key. An empty layer is inferred from
// the key prefix.
func (c *LayeredCache) Get(key string, l Layer) (any, bool) {
	if l == "" {
		l = InferLayer(key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ly, ok := c.layers[l]
	if !ok {
		return nil, false
	}

	if ly.cfg.EnvSensitive && c.checkEnvironmentLocked() {
		ly.misses++
		return nil, false
	}

	e, ok := ly.entries[key]
	if !ok {
		ly.misses++
		return nil, false
	}
	if e.expired(c.clock.Now()) {
		delete(ly.entries, key)
		ly.expiredRemovals++
		ly.misses++
		return nil, false
	}

	ly.hits++
	return e.value, true
}

type setOptions struct {
	layer Layer
	ttl   time.Duration
}

// SetOption adjusts a single Set call.
type SetOption func(*setOptions)

// WithLayer stores the entry in l instead of the layer derived from the source.
func WithLayer(l Layer) SetOption {
	return func(o *setOptions) { o.layer = l }
}

// WithTTL overrides the layer TTL for one entry.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) { o.ttl = ttl }
}

// Set stores value under key. Without WithLayer the layer is chosen by
// LayerForSource. A full layer evicts its oldest fifth first.
func (c *LayeredCache) Set(key string, value any, source models.SourceType, opts ...SetOption) error {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.layer == "" {
		o.layer = LayerForSource(source)
	}

	hash, err := utils.ContentHash(value)
	if err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("content hash unavailable")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ly, ok := c.layers[o.layer]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, o.layer)
	}
	if o.ttl <= 0 {
		o.ttl = ly.cfg.TTL
	}

	if _, exists := ly.entries[key]; !exists && ly.cfg.MaxEntries > 0 && len(ly.entries) >= ly.cfg.MaxEntries {
		ly.evictOldest()
		c.logger.Debug().Str("layer", string(ly.name)).Int("entries", len(ly.entries)).Msg("cache layer evicted")
	}

	ly.entries[key] = &entry{
		value:       value,
		timestamp:   c.clock.Now(),
		ttl:         o.ttl,
		source:      source,
		contentHash: hash,
	}
	return nil
}

// ContentHash returns the content hash recorded for key.
func (c *LayeredCache) ContentHash(key string, l Layer) (string, bool) {
	if l == "" {
		l = InferLayer(key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ly, ok := c.layers[l]
	if !ok {
		return "", false
	}
	e, ok := ly.entries[key]
	if !ok || e.expired(c.clock.Now()) {
		return "", false
	}
	return e.contentHash, true
}

// Invalidate removes the keys matching a glob pattern and reports how many
// were removed. An empty pattern matches every key, an empty layer means all
// layers.
func (c *LayeredCache) Invalidate(pattern string, l Layer) (int, error) {
	if pattern != "" {
		if _, err := path.Match(pattern, ""); err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrBadPattern, pattern, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	targets, err := c.targetsLocked(l)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, ly := range targets {
		if pattern == "" {
			removed += ly.clear()
			continue
		}
		for k := range ly.entries {
			if ok, _ := path.Match(pattern, k); ok {
				delete(ly.entries, k)
				ly.invalidations++
				removed++
			}
		}
	}

	if removed > 0 {
		c.logger.Debug().Str("pattern", pattern).Str("layer", string(l)).Int("removed", removed).Msg("cache invalidated")
	}
	return removed, nil
}

// Clear empties every layer.
func (c *LayeredCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ly := range c.layers {
		ly.clear()
	}
}

// Stats returns the current counters.
func (c *LayeredCache) Stats() models.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := models.CacheStats{
		Layers:          make([]models.LayerStats, 0, len(c.layers)),
		EnvironmentHash: c.snapshot.Hash,
		TrackedVars:     len(c.snapshot.Variables),
		LastSweep:       c.lastSweep,
		EnvDrifts:       c.envDrifts,
	}
	for _, name := range Layers {
		if ly, ok := c.layers[name]; ok {
			stats.Layers = append(stats.Layers, ly.stats())
		}
	}
	return stats
}

// Snapshot returns the environment snapshot the cache currently trusts.
func (c *LayeredCache) Snapshot() models.EnvironmentSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

func (c *LayeredCache) targetsLocked(l Layer) ([]*layer, error) {
	if l == "" {
		out := make([]*layer, 0, len(c.layers))
		for _, ly := range c.layers {
			out = append(out, ly)
		}
		return out, nil
	}
	ly, ok := c.layers[l]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, l)
	}
	return []*layer{ly}, nil
}

// checkEnvironmentLocked takes a fresh snapshot and, when its hash differs
// from the stored one, clears every env-sensitive layer and keeps the new
// snapshot. It reports whether drift was found.
func (c *LayeredCache) checkEnvironmentLocked() bool {
	current := takeSnapshot(c.env, c.relevance, c.clock.Now())
	if current.Hash == c.snapshot.Hash {
		return false
	}

	cleared := 0
	for _, ly := range c.layers {
		if ly.cfg.EnvSensitive {
			cleared += ly.clear()
		}
	}
	c.snapshot = current
	c.envDrifts++

	c.logger.Info().
		Int("cleared", cleared).
		Int("tracked_vars", len(current.Variables)).
		Msg("environment changed, env-sensitive cache layers cleared")
	return true
}

// Sweep removes expired entries from every layer and re-checks the
// environment.
func (c *LayeredCache) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	removed := 0
	for _, ly := range c.layers {
		removed += ly.removeExpired(now)
	}
	c.checkEnvironmentLocked()
	c.lastSweep = now

	if removed > 0 {
		c.logger.Debug().Int("removed", removed).Msg("expired cache entries swept")
	}
}

// Run sweeps the cache on a ticker until ctx is done or Destroy is called.
func (c *LayeredCache) Run(ctx context.Context) {
	c.runMu.Lock()
	if c.destroyed {
		c.runMu.Unlock()
		return
	}
	c.wg.Add(1)
	c.runMu.Unlock()
	defer c.wg.Done()

	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", c.sweepInterval).Msg("cache sweeper started")
	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("cache sweeper stopped")
			return
		case <-c.stop:
			c.logger.Info().Msg("cache sweeper stopped")
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// Destroy stops the sweeper, waits for it to exit and clears the cache.
// Calling it more than once is a no-op.
func (c *LayeredCache) Destroy() {
	c.runMu.Lock()
	if c.destroyed {
		c.runMu.Unlock()
		return
	}
	c.destroyed = true
	close(c.stop)
	c.runMu.Unlock()

	c.wg.Wait()
	c.Clear()
}

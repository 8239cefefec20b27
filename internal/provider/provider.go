// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider merges the configuration sources of an application into
// one mapping.
//
// Sources are loaded concurrently, ordered by priority and folded from the
// lowest to the highest, so the remote service always wins over local
// sources when it has the key. A failing source is logged and counts as
// empty; only when every source comes back empty does the provider return
// an app.ConfigurationError.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"dario.cat/mergo"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-config-resolver/internal/app"
	"github.com/MKhiriev/go-config-resolver/internal/cache"
	"github.com/MKhiriev/go-config-resolver/internal/config"
	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/loader"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/resolver"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/internal/validators"
	"github.com/MKhiriev/go-config-resolver/models"
)

// SnapshotRecorder persists freshly merged configurations.
type SnapshotRecorder interface {
	Save(ctx context.Context, snapshot models.Snapshot) error
}

// Provider is the resolution provider. It is safe for concurrent use.
type Provider struct {
	loaders     []loader.Loader
	cache       *cache.LayeredCache
	registry    *Registry
	transformer *keytransform.Transformer
	resolver    *resolver.Resolver
	recorder    SnapshotRecorder
	now         func() time.Time

	group singleflight.Group

	logger *logger.Logger
}

type Option func(*Provider)

// WithRegistry shares a registry with the loaders.
func WithRegistry(r *Registry) Option {
	return func(p *Provider) { p.registry = r }
}

func WithTransformer(t *keytransform.Transformer) Option {
	return func(p *Provider) { p.transformer = t }
}

func WithResolver(r *resolver.Resolver) Option {
	return func(p *Provider) { p.resolver = r }
}

// WithSnapshotRecorder enables snapshot history.
func WithSnapshotRecorder(r SnapshotRecorder) Option {
	return func(p *Provider) { p.recorder = r }
}

func WithLogger(l *logger.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// New builds a provider over loaders. Missing collaborators are derived
// from cfg.
func New(cfg config.Resolver, loaders []loader.Loader, c *cache.LayeredCache, env utils.Environment, opts ...Option) *Provider {
	p := &Provider{
		loaders: loaders,
		cache:   c,
		now:     time.Now,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.transformer == nil {
		p.transformer = keytransform.New(cfg.EnvPrefix)
	}
	if p.resolver == nil {
		p.resolver = resolver.New(p.transformer,
			resolver.WithFuzzyThreshold(cfg.FuzzyThreshold),
			resolver.WithPartialThreshold(cfg.PartialThreshold),
		)
	}
	if p.registry == nil {
		p.registry = NewRegistry(cfg.RootDir, cfg.AppsDir, env, p.transformer, p.logger)
	}
	if _, err := p.registry.Discover(); err != nil {
		p.logger.Error().Err(err).Msg("application discovery failed")
	}
	return p
}

// MergedKey is the cache key of the merged configuration of appID.
func MergedKey(appID string) string {
	return cache.MergedKeyPrefix + appID
}

// GetAppConfiguration returns a copy of the merged configuration of appID.
func (p *Provider) GetAppConfiguration(ctx context.Context, appID string) (models.ConfigMap, error) {
	resolved, err := p.Resolve(ctx, appID)
	if err != nil {
		return nil, err
	}
	return resolved.Data, nil
}

// Resolve is GetAppConfiguration with per-source reports.
func (p *Provider) Resolve(ctx context.Context, appID string) (models.ResolvedConfiguration, error) {
	if err := validators.ValidateAppID(appID); err != nil {
		return models.ResolvedConfiguration{}, app.ValidationError("resolve", appID, err)
	}

	if v, ok := p.cache.Get(MergedKey(appID), cache.LayerMerged); ok {
		if cached, ok := v.(models.ResolvedConfiguration); ok {
			return copyResolved(cached), nil
		}
	}

	// the load is shared, so one caller going away must not cut it short
	ch := p.group.DoChan(appID, func() (any, error) {
		return p.load(context.WithoutCancel(ctx), appID)
	})

	select {
	case <-ctx.Done():
		return models.ResolvedConfiguration{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return models.ResolvedConfiguration{}, res.Err
		}
		if res.Shared {
			p.logger.Debug().Str("app_id", appID).Msg("configuration load shared with a concurrent caller")
		}
		return copyResolved(res.Val.(models.ResolvedConfiguration)), nil
	}
}

// loaded is one source after its load attempt; a failed source carries an
// empty mapping and the error.
type loaded struct {
	models.ConfigurationSource
	err error
}

func (p *Provider) load(ctx context.Context, appID string) (models.ResolvedConfiguration, error) {
	results := make([]loaded, len(p.loaders))

	g, gctx := errgroup.WithContext(ctx)
	for i, l := range p.loaders {
		g.Go(func() error {
			data, err := l.Load(gctx, appID)
			if err != nil {
				p.logger.Warn().Err(err).
					Str("source", string(l.Type())).
					Str("app_id", appID).
					Msg("configuration source failed, treating as empty")
				data = models.ConfigMap{}
			}
			results[i] = loaded{
				ConfigurationSource: models.ConfigurationSource{Type: l.Type(), Data: data, Priority: l.Priority()},
				err:                 err,
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Priority < results[b].Priority
	})

	resolved := models.ResolvedConfiguration{
		AppID:      appID,
		Data:       models.ConfigMap{},
		Sources:    make([]models.SourceReport, 0, len(results)),
		ResolvedAt: p.now().UTC(),
	}

	var loadErrs *multierror.Error
	total := 0
	interrupted := false
	for _, r := range results {
		report := models.SourceReport{Type: r.Type, Priority: r.Priority, Keys: len(r.Data)}
		if r.err != nil {
			report.Error = r.err.Error()
			loadErrs = multierror.Append(loadErrs, fmt.Errorf("%s: %w", r.Type, r.err))
			if isInterrupted(r.err) {
				interrupted = true
			}
		}
		resolved.Sources = append(resolved.Sources, report)
		total += len(r.Data)

		if err := mergo.Merge(&resolved.Data, r.Data.Clone(), mergo.WithOverride); err != nil {
			return models.ResolvedConfiguration{}, app.ConfigurationError("merge", appID, fmt.Errorf("%w: %w", ErrMerge, err))
		}
	}

	if total == 0 {
		var cause error = ErrNoConfiguration
		if err := loadErrs.ErrorOrNil(); err != nil {
			cause = fmt.Errorf("%w: %w", ErrNoConfiguration, err)
		}
		p.logger.Error().Err(cause).Str("app_id", appID).Msg("every configuration source is empty")
		return models.ResolvedConfiguration{}, app.ConfigurationError("resolve", appID, cause)
	}

	// an interrupted source says nothing about its data; the partial merge
	// is served once but neither cached nor recorded
	if interrupted {
		p.logger.Warn().Str("app_id", appID).Msg("source load interrupted, merged configuration not cached")
		return resolved, nil
	}

	if err := p.cache.Set(MergedKey(appID), copyResolved(resolved), models.SourceMerged); err != nil {
		p.logger.Error().Err(app.CacheError("cache merged configuration", appID, err)).Msg("merged configuration not cached")
	}
	p.recordSnapshot(ctx, resolved)

	p.logger.Debug().Str("app_id", appID).Int("keys", len(resolved.Data)).Msg("configuration merged")
	return resolved, nil
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (p *Provider) recordSnapshot(ctx context.Context, resolved models.ResolvedConfiguration) {
	if p.recorder == nil {
		return
	}

	hash, err := utils.ContentHash(resolved.Data)
	if err != nil {
		p.logger.Error().Err(app.CacheError("snapshot", resolved.AppID, err)).Msg("snapshot not recorded")
		return
	}

	snapshot := models.Snapshot{
		AppID:       resolved.AppID,
		ContentHash: hash,
		KeyCount:    len(resolved.Data),
		Data:        resolved.Data.Clone(),
		CreatedAt:   resolved.ResolvedAt,
	}
	for _, s := range resolved.Sources {
		if s.Keys > 0 {
			snapshot.Sources = append(snapshot.Sources, s.Type)
		}
	}

	if err = p.recorder.Save(ctx, snapshot); err != nil {
		p.logger.Error().Err(app.CacheError("snapshot", resolved.AppID, err)).Msg("snapshot not recorded")
	}
}

func copyResolved(r models.ResolvedConfiguration) models.ResolvedConfiguration {
	r.Data = r.Data.Clone()
	r.Sources = append([]models.SourceReport(nil), r.Sources...)
	return r
}

// GetAppConfigValue looks key up in the merged configuration of appID
// through the client resolver.
func (p *Provider) GetAppConfigValue(ctx context.Context, appID, key string) (any, bool, error) {
	res, err := p.ResolveValue(ctx, appID, key)
	if err != nil {
		return nil, false, err
	}
	return res.Value, res.Success, nil
}

// ResolveValue is GetAppConfigValue with the full resolution result.
func (p *Provider) ResolveValue(ctx context.Context, appID, key string) (models.ResolutionResult, error) {
	data, err := p.GetAppConfiguration(ctx, appID)
	if err != nil {
		return models.ResolutionResult{RequestedKey: key, AttemptedKeys: []string{}}, err
	}
	return p.resolver.Resolve(key, data, appID), nil
}

// RefreshAppConfiguration drops every cached entry of appID.
func (p *Provider) RefreshAppConfiguration(appID string) (int, error) {
	if err := validators.ValidateAppID(appID); err != nil {
		return 0, app.ValidationError("refresh", appID, err)
	}
	n, err := p.cache.Invalidate("*:"+appID, "")
	if err != nil {
		return 0, app.CacheError("refresh", appID, err)
	}
	p.logger.Info().Str("app_id", appID).Int("entries", n).Msg("configuration refreshed")
	return n, nil
}

// RefreshAllConfigurations clears the cache and re-runs app discovery.
func (p *Provider) RefreshAllConfigurations() error {
	p.cache.Clear()
	if _, err := p.registry.Discover(); err != nil {
		return app.ConfigurationError("discover", "", err)
	}
	p.logger.Info().Msg("all configurations refreshed")
	return nil
}

// GetAvailableApps re-runs discovery and returns every known app.
func (p *Provider) GetAvailableApps() []string {
	if _, err := p.registry.Discover(); err != nil {
		p.logger.Error().Err(err).Msg("application discovery failed")
	}
	return p.registry.Known()
}

// KnownApps returns the known apps without touching the filesystem.
func (p *Provider) KnownApps() []string {
	return p.registry.Known()
}

func (p *Provider) GetCacheStats() models.CacheStats {
	return p.cache.Stats()
}

// Transformer returns the key transformer the provider resolves with.
func (p *Provider) Transformer() *keytransform.Transformer {
	return p.transformer
}

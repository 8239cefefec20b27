// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-config-resolver/internal/app"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/store"
	"github.com/MKhiriev/go-config-resolver/models"
)

// configService composes the provider with the fallback system and the
// snapshot history.
type configService struct {
	provider ConfigProvider

	// fallback is nil when the fallback system is disabled.
	fallback FallbackProvider

	resolver KeyResolver

	// snapshots is nil when no database is configured.
	snapshots store.SnapshotRepository

	logger *logger.Logger
}

// NewConfigService builds the ConfigService. fallback and snapshots may be
// nil.
func NewConfigService(provider ConfigProvider, fallback FallbackProvider, resolver KeyResolver, snapshots store.SnapshotRepository, logger *logger.Logger) ConfigService {
	return &configService{
		provider:  provider,
		fallback:  fallback,
		resolver:  resolver,
		snapshots: snapshots,
		logger:    logger,
	}
}

// GetConfiguration returns the merged configuration of appID. When every
// source came back empty, or the remote service contributed nothing, the
// fallback system fills in the keys the merge did not produce. Merged values
// always win over fallback values.
func (s *configService) GetConfiguration(ctx context.Context, appID string) (models.ResolvedConfiguration, error) {
	log := logger.FromContext(ctx)

	resolved, err := s.provider.Resolve(ctx, appID)
	switch {
	case err == nil && resolved.RemoteAvailable():
		return resolved, nil
	case err != nil && !errors.Is(err, app.ErrConfiguration):
		return models.ResolvedConfiguration{}, err
	case s.fallback == nil:
		return resolved, err
	}

	fb, fbErr := s.fallback.GetFallbackConfiguration(appID, false)
	if fbErr != nil || !fb.Success {
		if err != nil {
			log.Err(err).Str("app_id", appID).Msg("no configuration and no fallback")
		}
		return resolved, err
	}

	if err != nil {
		resolved = models.ResolvedConfiguration{AppID: appID, Data: models.ConfigMap{}}
	}
	added := 0
	for k, v := range fb.Data {
		if _, ok := resolved.Data[k]; !ok {
			resolved.Data[k] = v
			added++
		}
	}
	resolved.FallbackUsed = added > 0
	resolved.Sources = append(resolved.Sources, models.SourceReport{
		Type:     models.SourceFallback,
		Priority: -1,
		Keys:     added,
	})

	log.Debug().Str("app_id", appID).Int("keys", added).Msg("fallback filled in configuration")
	return resolved, nil
}

// GetValue resolves key in the merged configuration, falling back to the
// environment when the merge has no match.
func (s *configService) GetValue(ctx context.Context, appID, key string) (models.ResolutionResult, error) {
	res, err := s.provider.ResolveValue(ctx, appID, key)
	switch {
	case err == nil && res.Success:
		return res, nil
	case err != nil && !errors.Is(err, app.ErrConfiguration):
		return res, err
	case s.fallback == nil:
		return res, err
	}

	fb, fbErr := s.fallback.GetFallbackConfigurationValue(appID, key)
	if fbErr != nil {
		return res, fbErr
	}
	if !fb.Success && err != nil {
		return fb, err
	}
	fb.AttemptedKeys = slices.Concat(res.AttemptedKeys, fb.AttemptedKeys)
	return fb, nil
}

func (s *configService) ResolveValues(ctx context.Context, req models.ResolveRequest) (models.ResolveResponse, error) {
	resolved, err := s.GetConfiguration(ctx, req.AppID)
	if err != nil {
		return models.ResolveResponse{}, err
	}

	return models.ResolveResponse{
		AppID:   req.AppID,
		Results: s.resolver.ResolveMany(req.Keys, resolved.Data, req.AppID),
	}, nil
}

func (s *configService) Refresh(_ context.Context, appID string) (int, error) {
	return s.provider.RefreshAppConfiguration(appID)
}

func (s *configService) RefreshAll(_ context.Context) error {
	return s.provider.RefreshAllConfigurations()
}

func (s *configService) AvailableApps(_ context.Context) []string {
	return s.provider.GetAvailableApps()
}

func (s *configService) CacheStats(_ context.Context) models.CacheStats {
	return s.provider.GetCacheStats()
}

func (s *configService) Fallback(_ context.Context, appID string, debug bool) (models.FallbackResult, error) {
	if s.fallback == nil {
		return models.FallbackResult{AppID: appID, Data: models.ConfigMap{}}, nil
	}
	return s.fallback.GetFallbackConfiguration(appID, debug)
}

func (s *configService) Snapshots(ctx context.Context, query models.SnapshotQuery) ([]models.Snapshot, error) {
	if s.snapshots == nil {
		return nil, app.CacheError("list snapshots", query.AppID, ErrSnapshotsDisabled)
	}

	snapshots, err := s.snapshots.List(ctx, query)
	if err != nil {
		return nil, app.CacheError("list snapshots", query.AppID, err)
	}
	return snapshots, nil
}

func (s *configService) LatestSnapshot(ctx context.Context, appID string) (models.Snapshot, error) {
	if s.snapshots == nil {
		return models.Snapshot{}, app.CacheError("latest snapshot", appID, ErrSnapshotsDisabled)
	}

	snapshot, err := s.snapshots.Latest(ctx, appID)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return models.Snapshot{}, app.ConfigurationError("latest snapshot", appID, err)
	}
	if err != nil {
		return models.Snapshot{}, app.CacheError("latest snapshot", appID, fmt.Errorf("snapshot lookup failed: %w", err))
	}
	return snapshot, nil
}

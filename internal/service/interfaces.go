package service

import (
	"context"

	"github.com/MKhiriev/go-config-resolver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfigService is the programmatic surface of the resolver.
type ConfigService interface {
	GetConfiguration(ctx context.Context, appID string) (models.ResolvedConfiguration, error)
	GetValue(ctx context.Context, appID, key string) (models.ResolutionResult, error)
	ResolveValues(ctx context.Context, req models.ResolveRequest) (models.ResolveResponse, error)

	Refresh(ctx context.Context, appID string) (int, error)
	RefreshAll(ctx context.Context) error

	AvailableApps(ctx context.Context) []string
	CacheStats(ctx context.Context) models.CacheStats

	Fallback(ctx context.Context, appID string, debug bool) (models.FallbackResult, error)

	Snapshots(ctx context.Context, query models.SnapshotQuery) ([]models.Snapshot, error)
	LatestSnapshot(ctx context.Context, appID string) (models.Snapshot, error)
}

type AuthService interface {
	// Enabled reports whether requests must carry a bearer token.
	Enabled() bool
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// ConfigServiceWrapper defines middleware composition for ConfigService.
// Implementations wrap an existing ConfigService to add behavior such as
// validating.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService // returns a decorated ConfigService applying additional behavior
}

// ConfigProvider is the merged-source view the service reads through.
type ConfigProvider interface {
	Resolve(ctx context.Context, appID string) (models.ResolvedConfiguration, error)
	ResolveValue(ctx context.Context, appID, key string) (models.ResolutionResult, error)
	RefreshAppConfiguration(appID string) (int, error)
	RefreshAllConfigurations() error
	GetAvailableApps() []string
	GetCacheStats() models.CacheStats
}

// FallbackProvider reconstructs configuration from the environment when
// the merged view is missing or incomplete.
type FallbackProvider interface {
	GetFallbackConfiguration(appID string, includeDebug bool) (models.FallbackResult, error)
	GetFallbackConfigurationValue(appID, key string) (models.ResolutionResult, error)
}

// KeyResolver matches requested keys against a mapping.
type KeyResolver interface {
	ResolveMany(keys []string, mapping models.ConfigMap, appID string) map[string]models.ResolutionResult
}

package service

import (
	"github.com/MKhiriev/go-config-resolver/internal/config"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/store"
	"github.com/MKhiriev/go-config-resolver/models"
)

type Services struct {
	ConfigService  ConfigService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// Dependencies are the engine components the services compose.
type Dependencies struct {
	Provider  ConfigProvider
	Fallback  FallbackProvider
	Resolver  KeyResolver
	Storages  *store.Storages
	BuildInfo models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	var snapshots store.SnapshotRepository
	if deps.Storages != nil {
		snapshots = deps.Storages.SnapshotRepository
	}

	var fallback FallbackProvider
	if !cfg.Resolver.DisableFallback {
		fallback = deps.Fallback
	}

	appInfo, err := NewAppInfoService(deps.BuildInfo, logger)
	if err != nil {
		return nil, err
	}

	configService := NewConfigService(deps.Provider, fallback, deps.Resolver, snapshots, logger)

	return &Services{
		ConfigService:  NewConfigValidationService().Wrap(configService),
		AuthService:    NewAuthService(cfg.Auth, logger),
		AppInfoService: appInfo,
	}, nil
}

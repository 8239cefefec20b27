package service

import (
	"context"

	"github.com/MKhiriev/go-config-resolver/internal/app"
	"github.com/MKhiriev/go-config-resolver/internal/validators"
	"github.com/MKhiriev/go-config-resolver/models"
)

// ConfigValidationService rejects malformed requests before they reach the
// wrapped ConfigService.
type ConfigValidationService struct {
	inner     ConfigService
	validator validators.Validator
}

func NewConfigValidationService() ConfigServiceWrapper {
	return &ConfigValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ConfigValidationService) Wrap(wrapped ConfigService) ConfigService {
	v.inner = wrapped
	return v
}

func (v *ConfigValidationService) GetConfiguration(ctx context.Context, appID string) (models.ResolvedConfiguration, error) {
	if err := validators.ValidateAppID(appID); err != nil {
		return models.ResolvedConfiguration{}, app.ValidationError("get configuration", appID, err)
	}
	return v.inner.GetConfiguration(ctx, appID)
}

func (v *ConfigValidationService) GetValue(ctx context.Context, appID, key string) (models.ResolutionResult, error) {
	req := models.ResolveRequest{AppID: appID, Keys: []string{key}}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ResolutionResult{RequestedKey: key, AttemptedKeys: []string{}}, app.ValidationError("get value", appID, err)
	}
	return v.inner.GetValue(ctx, appID, key)
}

func (v *ConfigValidationService) ResolveValues(ctx context.Context, req models.ResolveRequest) (models.ResolveResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ResolveResponse{}, app.ValidationError("resolve values", req.AppID, err)
	}
	return v.inner.ResolveValues(ctx, req)
}

func (v *ConfigValidationService) Refresh(ctx context.Context, appID string) (int, error) {
	if err := validators.ValidateAppID(appID); err != nil {
		return 0, app.ValidationError("refresh", appID, err)
	}
	return v.inner.Refresh(ctx, appID)
}

func (v *ConfigValidationService) RefreshAll(ctx context.Context) error {
	return v.inner.RefreshAll(ctx)
}

func (v *ConfigValidationService) AvailableApps(ctx context.Context) []string {
	return v.inner.AvailableApps(ctx)
}

func (v *ConfigValidationService) CacheStats(ctx context.Context) models.CacheStats {
	return v.inner.CacheStats(ctx)
}

func (v *ConfigValidationService) Fallback(ctx context.Context, appID string, debug bool) (models.FallbackResult, error) {
	if err := validators.ValidateAppID(appID); err != nil {
		return models.FallbackResult{AppID: appID}, app.ValidationError("fallback", appID, err)
	}
	return v.inner.Fallback(ctx, appID, debug)
}

func (v *ConfigValidationService) Snapshots(ctx context.Context, query models.SnapshotQuery) ([]models.Snapshot, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return nil, app.ValidationError("list snapshots", query.AppID, err)
	}
	return v.inner.Snapshots(ctx, query)
}

func (v *ConfigValidationService) LatestSnapshot(ctx context.Context, appID string) (models.Snapshot, error) {
	if err := v.validator.Validate(ctx, models.SnapshotQuery{AppID: appID}, validators.FieldAppID); err != nil {
		return models.Snapshot{}, app.ValidationError("latest snapshot", appID, err)
	}
	return v.inner.LatestSnapshot(ctx, appID)
}

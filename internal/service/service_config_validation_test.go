package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-resolver/internal/app"
	"github.com/MKhiriev/go-config-resolver/internal/validators"
	"github.com/MKhiriev/go-config-resolver/models"
)

// countingService records which methods reached it.
type countingService struct {
	ConfigService
	calls int
}

func (c *countingService) GetConfiguration(context.Context, string) (models.ResolvedConfiguration, error) {
	c.calls++
	return models.ResolvedConfiguration{}, nil
}

func (c *countingService) GetValue(context.Context, string, string) (models.ResolutionResult, error) {
	c.calls++
	return models.ResolutionResult{}, nil
}

func (c *countingService) ResolveValues(context.Context, models.ResolveRequest) (models.ResolveResponse, error) {
	c.calls++
	return models.ResolveResponse{}, nil
}

func (c *countingService) Refresh(context.Context, string) (int, error) {
	c.calls++
	return 0, nil
}

func (c *countingService) Fallback(context.Context, string, bool) (models.FallbackResult, error) {
	c.calls++
	return models.FallbackResult{}, nil
}

func (c *countingService) Snapshots(context.Context, models.SnapshotQuery) ([]models.Snapshot, error) {
	c.calls++
	return nil, nil
}

func (c *countingService) LatestSnapshot(context.Context, string) (models.Snapshot, error) {
	c.calls++
	return models.Snapshot{}, nil
}

func TestConfigValidationService_RejectsBadInput(t *testing.T) {
	inner := &countingService{}
	s := NewConfigValidationService().Wrap(inner)
	ctx := context.Background()

	tooMany := make([]string, validators.MaxResolveKeys+1)
	for i := range tooMany {
		tooMany[i] = "k" + strconv.Itoa(i)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"configuration traversal", func() error { _, err := s.GetConfiguration(ctx, "../etc"); return err }},
		{"value with slash", func() error { _, err := s.GetValue(ctx, "a/b", "api.url"); return err }},
		{"value with blank key", func() error { _, err := s.GetValue(ctx, "admin", "  "); return err }},
		{"resolve without keys", func() error {
			_, err := s.ResolveValues(ctx, models.ResolveRequest{AppID: "admin"})
			return err
		}},
		{"resolve too many keys", func() error {
			_, err := s.ResolveValues(ctx, models.ResolveRequest{AppID: "admin", Keys: tooMany})
			return err
		}},
		{"refresh empty app", func() error { _, err := s.Refresh(ctx, ""); return err }},
		{"fallback bad app", func() error { _, err := s.Fallback(ctx, "-admin", false); return err }},
		{"snapshots negative limit", func() error {
			_, err := s.Snapshots(ctx, models.SnapshotQuery{AppID: "admin", Limit: -1})
			return err
		}},
		{"latest snapshot bad app", func() error { _, err := s.LatestSnapshot(ctx, ".."); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), app.ErrValidation)
		})
	}
	assert.Zero(t, inner.calls)
}

func TestConfigValidationService_PassesValidInput(t *testing.T) {
	inner := &countingService{}
	s := NewConfigValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := s.GetConfiguration(ctx, "admin-api")
	require.NoError(t, err)
	_, err = s.GetValue(ctx, "admin", "api.url")
	require.NoError(t, err)
	_, err = s.ResolveValues(ctx, models.ResolveRequest{AppID: "admin", Keys: []string{"a"}})
	require.NoError(t, err)
	_, err = s.Snapshots(ctx, models.SnapshotQuery{AppID: "admin"})
	require.NoError(t, err)
	_, err = s.LatestSnapshot(ctx, "admin")
	require.NoError(t, err)

	assert.Equal(t, 5, inner.calls)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_Defaults verifies that the built-in defaults are valid on
// their own.
func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, Defaults().validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty root dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Resolver.RootDir = "" },
			wantErr: ErrInvalidResolverConfigs,
		},
		{
			name:    "apps dir escapes root",
			mutate:  func(cfg *StructuredConfig) { cfg.Resolver.AppsDir = "../apps" },
			wantErr: ErrInvalidResolverConfigs,
		},
		{
			name:    "prefix with trailing underscore",
			mutate:  func(cfg *StructuredConfig) { cfg.Resolver.EnvPrefix = "CONFIG_" },
			wantErr: ErrInvalidResolverConfigs,
		},
		{
			name:    "prefix starting with digit",
			mutate:  func(cfg *StructuredConfig) { cfg.Resolver.EnvPrefix = "1CFG" },
			wantErr: ErrInvalidResolverConfigs,
		},
		{
			name:    "fuzzy threshold above one",
			mutate:  func(cfg *StructuredConfig) { cfg.Resolver.FuzzyThreshold = 1.5 },
			wantErr: ErrInvalidResolverConfigs,
		},
		{
			name:    "bad direct env pattern",
			mutate:  func(cfg *StructuredConfig) { cfg.Resolver.DirectEnvPatterns = []string{"(["} },
			wantErr: ErrInvalidResolverConfigs,
		},
		{
			name:    "zero merged ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.Cache.MergedTTL = 0 },
			wantErr: ErrInvalidCacheConfigs,
		},
		{
			name:    "zero capacity",
			mutate:  func(cfg *StructuredConfig) { cfg.Cache.RemoteMaxEntries = 0 },
			wantErr: ErrInvalidCacheConfigs,
		},
		{
			name:    "endpoint without scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Remote.Endpoint = "config.example.com" },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name: "vault template without placeholder",
			mutate: func(cfg *StructuredConfig) {
				cfg.Remote.Endpoint = "https://config.example.com"
				cfg.Remote.VaultURLTemplate = "https://vault.example.com"
			},
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "negative retry count",
			mutate:  func(cfg *StructuredConfig) { cfg.Remote.RetryCount = -1 },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "empty server address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "sign key without issuer",
			mutate: func(cfg *StructuredConfig) {
				cfg.Auth.TokenSignKey = "secret"
				cfg.Auth.TokenIssuer = ""
			},
			wantErr: ErrInvalidAuthConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestValidate_ReportsEveryGroup verifies that failures of several groups are
// joined into one error.
func TestValidate_ReportsEveryGroup(t *testing.T) {
	cfg := Defaults()
	cfg.Resolver.RootDir = ""
	cfg.Server.HTTPAddress = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidResolverConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestRemote_EnabledValid(t *testing.T) {
	cfg := Defaults()
	cfg.Remote.Endpoint = "https://config.example.com"
	cfg.Remote.VaultURLTemplate = "https://{vault}.vault.example.com"

	assert.True(t, cfg.Remote.Enabled())
	assert.NoError(t, cfg.validate())
}

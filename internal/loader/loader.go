// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package loader implements the configuration sources merged by the
// resolution provider: the remote configuration service, the root and
// per-app .env files, and the process environment read three ways (generic,
// app-scoped and the permissive well-known-name scan).
//
// Every loader returns keys in clean service form ("api.url") so sources
// merge key-by-key regardless of where a value came from.
package loader

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-config-resolver/models"
)

// Loader reads one configuration source for one application.
type Loader interface {
	// Type identifies the source.
	Type() models.SourceType
	// Priority ranks the source in the merge; higher wins.
	Priority() int
	// Load returns the source's data for appID. A source with nothing to
	// offer returns an empty map and a nil error.
	Load(ctx context.Context, appID string) (models.ConfigMap, error)
}

// KnownAppsFunc returns the applications currently known to the provider.
type KnownAppsFunc func() []string

// withApp returns the known apps plus appID, deduplicated.
func withApp(known KnownAppsFunc, appID string) []string {
	var apps []string
	if known != nil {
		apps = known()
	}
	if appID != "" && !slices.Contains(apps, appID) {
		apps = append(slices.Clone(apps), appID)
	}
	return apps
}

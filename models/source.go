// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SourceType names one origin of configuration data.
type SourceType string

const (
	// SourceProcessEnv is the permissive scan of well-known process
	// environment variable names (DATABASE_URL, *_SECRET, ...).
	SourceProcessEnv SourceType = "process-env"
	// SourceRootEnvFile is the .env file at the repository root.
	SourceRootEnvFile SourceType = "root-env-file"
	// SourceAppEnvFile is the per-application apps/{appId}/.env file.
	SourceAppEnvFile SourceType = "app-env-file"
	// SourceGenericEnv holds PREFIX_{KEY} variables not scoped to any app.
	SourceGenericEnv SourceType = "generic-env-vars"
	// SourceAppEnv holds PREFIX_{APP}_{KEY} variables of one application.
	SourceAppEnv SourceType = "app-env-vars"
	// SourceRemote is the remote configuration service.
	SourceRemote SourceType = "remote-service"
	// SourceMerged marks the materialized result of a precedence merge.
	SourceMerged SourceType = "merged"
	// SourceFallback marks data reconstructed by the fallback system.
	SourceFallback SourceType = "fallback"
	// SourceDefaults marks built-in default values.
	SourceDefaults SourceType = "defaults"
)

// Merge priorities of the resolution sources. Later (higher) wins.
const (
	PriorityProcessEnv  = 0
	PriorityRootEnvFile = 1
	PriorityAppEnvFile  = 2
	PriorityGenericEnv  = 3
	PriorityAppEnv      = 4
	PriorityRemote      = 5
)

// ConfigurationSource is one loaded source ready to be folded into the
// merged mapping.
type ConfigurationSource struct {
	Type     SourceType `json:"type"`
	Data     ConfigMap  `json:"data"`
	Priority int        `json:"priority"`
}

// SourceReport describes what a single source contributed to a resolution.
type SourceReport struct {
	Type     SourceType `json:"type"`
	Priority int        `json:"priority"`
	Keys     int        `json:"keys"`
	Error    string     `json:"error,omitempty"`
}

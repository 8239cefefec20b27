// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResolutionResult is the outcome of looking up one requested key in a
// configuration mapping. AttemptedKeys lists every literal key tried, in
// order, and is filled on failure as well.
type ResolutionResult struct {
	Success       bool     `json:"success"`
	RequestedKey  string   `json:"requested_key"`
	Value         any      `json:"value,omitempty"`
	Strategy      string   `json:"strategy,omitempty"`
	MatchedKey    string   `json:"matched_key,omitempty"`
	Score         float64  `json:"score,omitempty"`
	AttemptedKeys []string `json:"attempted_keys"`
}

// TransformationTrace records one environment variable turned into its
// key shapes by the fallback system.
type TransformationTrace struct {
	Source   SourceType    `json:"source"`
	EnvKey   string        `json:"env_key"`
	Keys     AppContextKey `json:"keys"`
	Priority int           `json:"priority"`
}

// SourceAvailability tells whether a fallback source produced anything.
type SourceAvailability struct {
	Source        SourceType `json:"source"`
	Priority      int        `json:"priority"`
	Available     bool       `json:"available"`
	VariableCount int        `json:"variable_count"`
}

// FallbackDebug carries the diagnostic traces of a fallback run.
type FallbackDebug struct {
	Transformations    []TransformationTrace `json:"transformations"`
	ResolutionAttempts []ResolutionResult    `json:"resolution_attempts"`
	Sources            []SourceAvailability  `json:"sources"`
}

// FallbackResult is the envelope returned by the fallback system.
type FallbackResult struct {
	Success         bool           `json:"success"`
	AppID           string         `json:"app_id"`
	Data            ConfigMap      `json:"data"`
	VariablesFound  int            `json:"variables_found"`
	KeysTransformed int            `json:"keys_transformed"`
	SourcesUsed     []SourceType   `json:"sources_used"`
	Debug           *FallbackDebug `json:"debug,omitempty"`
}

// ResolvedConfiguration is the service-level envelope around a merged
// mapping, carrying the source metadata consumers use to tell whether the
// remote service was reachable.
type ResolvedConfiguration struct {
	AppID        string         `json:"app_id"`
	Data         ConfigMap      `json:"data"`
	Sources      []SourceReport `json:"sources"`
	FallbackUsed bool           `json:"fallback_used"`
	ResolvedAt   time.Time      `json:"resolved_at"`
}

// RemoteAvailable reports whether the remote source contributed keys.
func (r ResolvedConfiguration) RemoteAvailable() bool {
	for _, s := range r.Sources {
		if s.Type == SourceRemote {
			return s.Error == "" && s.Keys > 0
		}
	}
	return false
}

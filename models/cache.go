// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EnvironmentSnapshot is a filtered copy of the process environment used to
// detect drift between cache reads.
type EnvironmentSnapshot struct {
	Hash      uint64            `json:"hash"`
	Timestamp time.Time         `json:"timestamp"`
	Variables map[string]string `json:"-"`
}

// LayerStats are the counters of a single cache layer.
type LayerStats struct {
	Name            string        `json:"name"`
	Entries         int           `json:"entries"`
	MaxEntries      int           `json:"max_entries"`
	TTL             time.Duration `json:"ttl"`
	EnvSensitive    bool          `json:"env_sensitive"`
	Hits            uint64        `json:"hits"`
	Misses          uint64        `json:"misses"`
	Evictions       uint64        `json:"evictions"`
	Invalidations   uint64        `json:"invalidations"`
	ExpiredRemovals uint64        `json:"expired_removals"`
}

// CacheStats is a point-in-time view of a layered cache.
type CacheStats struct {
	Layers          []LayerStats `json:"layers"`
	EnvironmentHash uint64       `json:"environment_hash"`
	TrackedVars     int          `json:"tracked_vars"`
	LastSweep       time.Time    `json:"last_sweep"`
	EnvDrifts       uint64       `json:"env_drifts"`
}

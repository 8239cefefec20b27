// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is a persisted copy of one merged configuration. Snapshots are
// identified by (AppID, ContentHash); storing an unchanged mapping twice
// yields a single row.
type Snapshot struct {
	AppID       string       `json:"app_id"`
	ContentHash string       `json:"content_hash"`
	KeyCount    int          `json:"key_count"`
	Sources     []SourceType `json:"sources"`
	Data        ConfigMap    `json:"data,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// SnapshotQuery selects the most recent snapshots of one app. A zero Limit
// means the store default.
type SnapshotQuery struct {
	AppID string
	Limit int
}

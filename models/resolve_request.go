// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResolveRequest is the body of the value-resolution API.
type ResolveRequest struct {
	AppID string   `json:"-"`
	Keys  []string `json:"keys"`
}

// ResolveResponse maps every requested key to its resolution result.
type ResolveResponse struct {
	AppID   string                      `json:"app_id"`
	Results map[string]ResolutionResult `json:"results"`
}

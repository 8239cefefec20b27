// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP clients for the remote configuration
// service and the secret vault behind it.
//
// Transport failures are mapped from HTTP status codes to the sentinel values
// in errors.go (see mapHTTPError) and wrapped as app.RemoteClientError, so
// callers can use [errors.Is] both for the error kind and for the cause
// (e.g. [ErrUnauthorized] for 401 and 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-config-resolver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteConfigClient lists key/value settings stored in the remote
// configuration service.
type RemoteConfigClient interface {
	// ListSettings returns every setting whose key matches keyFilter
	// (a "*" suffix selects a key prefix, e.g. "admin:*") under label.
	// An empty label selects unlabelled settings.
	ListSettings(ctx context.Context, keyFilter, label string) ([]models.RemoteSetting, error)

	// Enabled reports whether an endpoint is configured. A disabled client
	// returns ErrRemoteDisabled from every call.
	Enabled() bool
}

// SecretClient reads secret values from a named vault.
type SecretClient interface {
	GetSecret(ctx context.Context, vault, name string) (string, error)
}

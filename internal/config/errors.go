package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidResolverConfigs indicates invalid resolver settings
	// (for example, a missing root directory or a malformed env prefix).
	ErrInvalidResolverConfigs = errors.New("invalid resolver configuration")
	// ErrInvalidCacheConfigs indicates a non-positive TTL, capacity or sweep
	// interval.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidRemoteConfigs indicates an unusable remote endpoint or retry
	// policy.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates a sign key without an issuer.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)

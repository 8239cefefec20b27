// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// resolver process. It aggregates all sub-configurations and is populated by
// merging built-in defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Resolver controls how application configuration is discovered,
	// transformed and resolved.
	Resolver Resolver `envPrefix:"RESOLVER_"`

	// Cache holds TTLs and capacities of the layered cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Remote holds connection settings for the remote configuration service
	// and the secret vault.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the snapshot history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds JWT settings of the HTTP API. An empty sign key disables
	// authentication.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via RESOLVER_CONFIG_FILE or the -c / -config flag.
	JSONFilePath string `env:"RESOLVER_CONFIG_FILE"`
}

// Resolver holds settings of the resolution engine.
type Resolver struct {
	// RootDir is the monorepo root containing the root .env file.
	// Env: RESOLVER_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// AppsDir is the directory under RootDir that holds one sub-directory
	// per application (e.g. "apps").
	// Env: RESOLVER_APPS_DIR
	AppsDir string `env:"APPS_DIR"`

	// EnvPrefix is the generic environment variable prefix, without the
	// trailing underscore (e.g. "CONFIG").
	// Env: RESOLVER_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// Defaults are static fallback values keyed by dotted service key.
	// Env: RESOLVER_DEFAULTS ("api.timeout:30,log.level:info")
	Defaults map[string]string `env:"DEFAULTS"`

	// MappingsFile is an optional JSON file with per-app custom key mappings.
	// Env: RESOLVER_MAPPINGS_FILE
	MappingsFile string `env:"MAPPINGS_FILE"`

	// FuzzyThreshold is the minimum normalized Levenshtein similarity the
	// fuzzy strategy accepts.
	// Env: RESOLVER_FUZZY_THRESHOLD
	FuzzyThreshold float64 `env:"FUZZY_THRESHOLD"`

	// PartialThreshold is the minimum similarity the partial (substring)
	// strategy accepts.
	// Env: RESOLVER_PARTIAL_THRESHOLD
	PartialThreshold float64 `env:"PARTIAL_THRESHOLD"`

	// DirectEnvPatterns are regular expressions selecting process
	// environment variables that are read without the generic prefix.
	// Env: RESOLVER_DIRECT_ENV_PATTERNS (comma separated)
	DirectEnvPatterns []string `env:"DIRECT_ENV_PATTERNS"`

	// DisableFallback turns off the fallback system for GetConfiguration.
	// Env: RESOLVER_DISABLE_FALLBACK
	DisableFallback bool `env:"DISABLE_FALLBACK"`

	// LogLevel is the zerolog level name.
	// Env: RESOLVER_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Cache holds the layered cache settings.
type Cache struct {
	RemoteTTL   time.Duration `env:"REMOTE_TTL"`
	EnvVarsTTL  time.Duration `env:"ENV_VARS_TTL"`
	EnvFilesTTL time.Duration `env:"ENV_FILES_TTL"`
	MergedTTL   time.Duration `env:"MERGED_TTL"`

	RemoteMaxEntries   int `env:"REMOTE_MAX_ENTRIES"`
	EnvVarsMaxEntries  int `env:"ENV_VARS_MAX_ENTRIES"`
	EnvFilesMaxEntries int `env:"ENV_FILES_MAX_ENTRIES"`
	MergedMaxEntries   int `env:"MERGED_MAX_ENTRIES"`

	// SweepInterval is how often expired entries are removed.
	// Env: CACHE_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// WatchFiles enables the fsnotify watcher that invalidates an app's
	// cache entries when one of its .env files changes.
	// Env: CACHE_WATCH_FILES
	WatchFiles bool `env:"WATCH_FILES"`
}

// Remote holds the remote configuration service settings. An empty Endpoint
// disables the remote source.
type Remote struct {
	// Endpoint is the base URL of the configuration service.
	// Env: REMOTE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// APIKey is sent as a bearer token.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// Label selects the labelled revision of every setting (e.g. "prod").
	// Env: REMOTE_LABEL
	Label string `env:"LABEL"`

	// Timeout bounds every request including retries.
	// Env: REMOTE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	RetryCount       int           `env:"RETRY_COUNT"`
	RetryWaitTime    time.Duration `env:"RETRY_WAIT_TIME"`
	RetryMaxWaitTime time.Duration `env:"RETRY_MAX_WAIT_TIME"`

	// VaultURLTemplate builds a vault base URL from a vault name; "{vault}"
	// is replaced (e.g. "https://{vault}.vault.example.com").
	// Env: REMOTE_VAULT_URL_TEMPLATE
	VaultURLTemplate string `env:"VAULT_URL_TEMPLATE"`

	// VaultToken is sent as a bearer token to the vault. Falls back to
	// APIKey when empty.
	// Env: REMOTE_VAULT_TOKEN
	VaultToken string `env:"VAULT_TOKEN"`

	// SecretTTL is how long resolved secret values are cached.
	// Env: REMOTE_SECRET_TTL
	SecretTTL time.Duration `env:"SECRET_TTL"`
}

// Enabled reports whether a remote endpoint is configured.
func (r Remote) Enabled() bool {
	return r.Endpoint != ""
}

// Storage groups the configuration for the snapshot history store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://..." / "postgresql://..." use pgx,
	// anything else is treated as a SQLite file path or "file:" URI.
	// An empty DSN disables snapshot history.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the HTTP API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Auth holds JWT settings for the HTTP API.
type Auth struct {
	// TokenSignKey is the HS256 key used to verify bearer tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Enabled reports whether bearer authentication is required.
func (a Auth) Enabled() bool {
	return a.TokenSignKey != ""
}

// GetStructuredConfig loads, merges, and validates the resolver
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

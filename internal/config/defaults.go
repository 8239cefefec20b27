package config

import "time"

const (
	DefaultAppsDir          = "apps"
	DefaultEnvPrefix        = "CONFIG"
	DefaultFuzzyThreshold   = 0.8
	DefaultPartialThreshold = 0.7
	DefaultLogLevel         = "debug"
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRemoteRetryCount = 3
)

// DefaultDirectEnvPatterns selects process variables that many frameworks
// read without any prefix.
var DefaultDirectEnvPatterns = []string{
	`_URL$`,
	`_KEY$`,
	`_SECRET$`,
	`_TOKEN$`,
	`^OKTA_`,
	`^DATABASE_URL$`,
	`^NEXTAUTH_`,
	`^REDIS_`,
}

// Defaults returns the built-in configuration. It is the lowest-priority
// source of the builder.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Resolver: Resolver{
			RootDir:           ".",
			AppsDir:           DefaultAppsDir,
			EnvPrefix:         DefaultEnvPrefix,
			FuzzyThreshold:    DefaultFuzzyThreshold,
			PartialThreshold:  DefaultPartialThreshold,
			DirectEnvPatterns: append([]string(nil), DefaultDirectEnvPatterns...),
			LogLevel:          DefaultLogLevel,
		},
		Cache: Cache{
			RemoteTTL:          15 * time.Minute,
			EnvVarsTTL:         5 * time.Minute,
			EnvFilesTTL:        2 * time.Minute,
			MergedTTL:          30 * time.Second,
			RemoteMaxEntries:   500,
			EnvVarsMaxEntries:  1000,
			EnvFilesMaxEntries: 500,
			MergedMaxEntries:   200,
			SweepInterval:      time.Minute,
		},
		Remote: Remote{
			Timeout:          10 * time.Second,
			RetryCount:       DefaultRemoteRetryCount,
			RetryWaitTime:    200 * time.Millisecond,
			RetryMaxWaitTime: 2 * time.Second,
			SecretTTL:        15 * time.Minute,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Auth: Auth{
			TokenIssuer: "config-resolver",
		},
	}
}

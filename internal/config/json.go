package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	Resolver struct {
		RootDir           string            `json:"root_dir"`
		AppsDir           string            `json:"apps_dir"`
		EnvPrefix         string            `json:"env_prefix"`
		Defaults          map[string]string `json:"defaults"`
		MappingsFile      string            `json:"mappings_file"`
		FuzzyThreshold    float64           `json:"fuzzy_threshold"`
		PartialThreshold  float64           `json:"partial_threshold"`
		DirectEnvPatterns []string          `json:"direct_env_patterns"`
		DisableFallback   bool              `json:"disable_fallback"`
		LogLevel          string            `json:"log_level"`
	} `json:"resolver,omitempty"`

	Cache struct {
		RemoteTTL          Duration `json:"remote_ttl"`
		EnvVarsTTL         Duration `json:"env_vars_ttl"`
		EnvFilesTTL        Duration `json:"env_files_ttl"`
		MergedTTL          Duration `json:"merged_ttl"`
		RemoteMaxEntries   int      `json:"remote_max_entries"`
		EnvVarsMaxEntries  int      `json:"env_vars_max_entries"`
		EnvFilesMaxEntries int      `json:"env_files_max_entries"`
		MergedMaxEntries   int      `json:"merged_max_entries"`
		SweepInterval      Duration `json:"sweep_interval"`
		WatchFiles         bool     `json:"watch_files"`
	} `json:"cache,omitempty"`

	Remote struct {
		Endpoint         string   `json:"endpoint"`
		APIKey           string   `json:"api_key"`
		Label            string   `json:"label"`
		Timeout          Duration `json:"timeout"`
		RetryCount       int      `json:"retry_count"`
		RetryWaitTime    Duration `json:"retry_wait_time"`
		RetryMaxWaitTime Duration `json:"retry_max_wait_time"`
		VaultURLTemplate string   `json:"vault_url_template"`
		VaultToken       string   `json:"vault_token"`
		SecretTTL        Duration `json:"secret_ttl"`
	} `json:"remote,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Auth struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"auth,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	r, c, rem := jsonCfg.Resolver, jsonCfg.Cache, jsonCfg.Remote
	cfg := &StructuredConfig{
		Resolver: Resolver{
			RootDir:           r.RootDir,
			AppsDir:           r.AppsDir,
			EnvPrefix:         r.EnvPrefix,
			Defaults:          r.Defaults,
			MappingsFile:      r.MappingsFile,
			FuzzyThreshold:    r.FuzzyThreshold,
			PartialThreshold:  r.PartialThreshold,
			DirectEnvPatterns: r.DirectEnvPatterns,
			DisableFallback:   r.DisableFallback,
			LogLevel:          r.LogLevel,
		},
		Cache: Cache{
			RemoteTTL:          time.Duration(c.RemoteTTL),
			EnvVarsTTL:         time.Duration(c.EnvVarsTTL),
			EnvFilesTTL:        time.Duration(c.EnvFilesTTL),
			MergedTTL:          time.Duration(c.MergedTTL),
			RemoteMaxEntries:   c.RemoteMaxEntries,
			EnvVarsMaxEntries:  c.EnvVarsMaxEntries,
			EnvFilesMaxEntries: c.EnvFilesMaxEntries,
			MergedMaxEntries:   c.MergedMaxEntries,
			SweepInterval:      time.Duration(c.SweepInterval),
			WatchFiles:         c.WatchFiles,
		},
		Remote: Remote{
			Endpoint:         rem.Endpoint,
			APIKey:           rem.APIKey,
			Label:            rem.Label,
			Timeout:          time.Duration(rem.Timeout),
			RetryCount:       rem.RetryCount,
			RetryWaitTime:    time.Duration(rem.RetryWaitTime),
			RetryMaxWaitTime: time.Duration(rem.RetryMaxWaitTime),
			VaultURLTemplate: rem.VaultURLTemplate,
			VaultToken:       rem.VaultToken,
			SecretTTL:        time.Duration(rem.SecretTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Auth: Auth{
			TokenSignKey: jsonCfg.Auth.TokenSignKey,
			TokenIssuer:  jsonCfg.Auth.TokenIssuer,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

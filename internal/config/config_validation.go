// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var envPrefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Every failing group is reported.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.Resolver.validate(),
		cfg.Cache.validate(),
		cfg.Remote.validate(),
		cfg.Server.validate(),
		cfg.Auth.validate(),
	)
}

func (r Resolver) validate() error {
	switch {
	case r.RootDir == "":
		return fmt.Errorf("%w: root dir is empty", ErrInvalidResolverConfigs)
	case r.AppsDir == "" || strings.Contains(r.AppsDir, ".."):
		return fmt.Errorf("%w: apps dir %q", ErrInvalidResolverConfigs, r.AppsDir)
	case !envPrefixPattern.MatchString(r.EnvPrefix) || strings.HasSuffix(r.EnvPrefix, "_"):
		return fmt.Errorf("%w: env prefix %q", ErrInvalidResolverConfigs, r.EnvPrefix)
	case r.FuzzyThreshold <= 0 || r.FuzzyThreshold > 1:
		return fmt.Errorf("%w: fuzzy threshold %v not in (0,1]", ErrInvalidResolverConfigs, r.FuzzyThreshold)
	case r.PartialThreshold <= 0 || r.PartialThreshold > 1:
		return fmt.Errorf("%w: partial threshold %v not in (0,1]", ErrInvalidResolverConfigs, r.PartialThreshold)
	}

	for _, p := range r.DirectEnvPatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("%w: direct env pattern %q: %w", ErrInvalidResolverConfigs, p, err)
		}
	}
	return nil
}

func (c Cache) validate() error {
	if c.RemoteTTL <= 0 || c.EnvVarsTTL <= 0 || c.EnvFilesTTL <= 0 || c.MergedTTL <= 0 {
		return fmt.Errorf("%w: every layer TTL must be positive", ErrInvalidCacheConfigs)
	}
	if c.RemoteMaxEntries <= 0 || c.EnvVarsMaxEntries <= 0 || c.EnvFilesMaxEntries <= 0 || c.MergedMaxEntries <= 0 {
		return fmt.Errorf("%w: every layer capacity must be positive", ErrInvalidCacheConfigs)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive", ErrInvalidCacheConfigs)
	}
	return nil
}

func (r Remote) validate() error {
	if r.RetryCount < 0 {
		return fmt.Errorf("%w: negative retry count", ErrInvalidRemoteConfigs)
	}
	if !r.Enabled() {
		return nil
	}

	u, err := url.Parse(r.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q", ErrInvalidRemoteConfigs, r.Endpoint)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidRemoteConfigs)
	}
	if r.VaultURLTemplate != "" && !strings.Contains(r.VaultURLTemplate, "{vault}") {
		return fmt.Errorf("%w: vault url template lacks {vault}", ErrInvalidRemoteConfigs)
	}
	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}
	return nil
}

func (a Auth) validate() error {
	if a.Enabled() && a.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is empty", ErrInvalidAuthConfigs)
	}
	return nil
}

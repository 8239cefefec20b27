// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fallback rebuilds an application's configuration from the live
// environment and static defaults when the regular sources cannot deliver.
//
// Three sources are read, highest priority first: the app-scoped environment
// variables, the global ones rewritten into the app's context, and the
// configured defaults. Each variable is expanded into every key shape by the
// key transformer and the shapes are merged lowest priority first, so a
// higher source overwrites a lower one key by key.
package fallback

import (
	"regexp"
	"sort"

	"github.com/MKhiriev/go-config-resolver/internal/app"
	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/resolver"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/internal/validators"
	"github.com/MKhiriev/go-config-resolver/models"
)

// Priorities of the fallback sources.
const (
	PriorityAppEnv    = 3
	PriorityGlobalEnv = 2
	PriorityDefaults  = 1
)

// Strategy names used by GetFallbackConfigurationValue beyond the resolver's.
const (
	StrategyFallbackKeys = "fallback-keys"
	StrategyEnvironment  = "environment"
)

// System is the fallback configuration builder. It is safe for concurrent
// use.
type System struct {
	transformer *keytransform.Transformer
	resolver    *resolver.Resolver
	env         utils.Environment
	defaults    map[string]string
	knownApps   func() []string
	direct      []*regexp.Regexp

	logger *logger.Logger
}

// Option configures a System.
type Option func(*System)

// WithDirectPatterns adds well-known unprefixed variables (DATABASE_URL, ...)
// to the global source.
func WithDirectPatterns(patterns []*regexp.Regexp) Option {
	return func(s *System) { s.direct = patterns }
}

func New(
	transformer *keytransform.Transformer,
	resolver *resolver.Resolver,
	env utils.Environment,
	defaults map[string]string,
	knownApps func() []string,
	logger *logger.Logger,
	opts ...Option,
) *System {
	s := &System{
		transformer: transformer,
		resolver:    resolver,
		env:         env,
		defaults:    defaults,
		knownApps:   knownApps,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// variable is one input of a fallback source.
type variable struct {
	name  string
	value string
}

type source struct {
	kind     models.SourceType
	priority int
	vars     []variable
}

// GetFallbackConfiguration builds the fallback mapping of appID. An invalid
// appID yields an unsuccessful result and the validation error.
func (s *System) GetFallbackConfiguration(appID string, includeDebug bool) (models.FallbackResult, error) {
	result := models.FallbackResult{AppID: appID, Data: models.ConfigMap{}, SourcesUsed: []models.SourceType{}}
	if err := validators.ValidateAppID(appID); err != nil {
		return result, app.ValidationError("fallback configuration", appID, err)
	}

	sources := s.collect(appID)
	if includeDebug {
		result.Debug = &models.FallbackDebug{
			Transformations:    []models.TransformationTrace{},
			ResolutionAttempts: []models.ResolutionResult{},
			Sources:            make([]models.SourceAvailability, 0, len(sources)),
		}
	}

	// sources are ordered high to low; fold from the lowest.
	for i := len(sources) - 1; i >= 0; i-- {
		src := sources[i]
		for _, v := range src.vars {
			mapping := s.transformer.CreateKeyMapping(v.name, v.value, appID)
			for k, val := range mapping {
				result.Data[k] = val
			}
			result.KeysTransformed += len(mapping)

			if includeDebug {
				result.Debug.Transformations = append(result.Debug.Transformations, models.TransformationTrace{
					Source:   src.kind,
					EnvKey:   v.name,
					Keys:     s.transformer.ServiceToApp(s.transformer.EnvToService(v.name, appID), appID),
					Priority: src.priority,
				})
			}
		}
		result.VariablesFound += len(src.vars)
	}

	for _, src := range sources {
		if len(src.vars) > 0 {
			result.SourcesUsed = append(result.SourcesUsed, src.kind)
		}
		if includeDebug {
			result.Debug.Sources = append(result.Debug.Sources, models.SourceAvailability{
				Source:        src.kind,
				Priority:      src.priority,
				Available:     len(src.vars) > 0,
				VariableCount: len(src.vars),
			})
		}
	}

	result.Success = len(result.Data) > 0
	s.logger.Debug().
		Str("app_id", appID).
		Int("variables", result.VariablesFound).
		Int("keys", result.KeysTransformed).
		Bool("success", result.Success).
		Msg("fallback configuration built")
	return result, nil
}

// collect reads the three sources, highest priority first. Variables are
// sorted by name so repeated runs fold identically.
func (s *System) collect(appID string) []source {
	var known []string
	if s.knownApps != nil {
		known = s.knownApps()
	}
	known = append(append([]string(nil), known...), appID)

	appSrc := source{kind: models.SourceAppEnv, priority: PriorityAppEnv}
	globalSrc := source{kind: models.SourceGenericEnv, priority: PriorityGlobalEnv}
	for name, value := range s.env.Environ() {
		class := s.transformer.ClassifyEnvKey(name, known)
		switch {
		case class.Scoped && class.AppID == appID:
			appSrc.vars = append(appSrc.vars, variable{name: name, value: value})
		case class.Generic:
			globalSrc.vars = append(globalSrc.vars, variable{name: name, value: value})
		case !class.Scoped && s.isDirect(name):
			globalSrc.vars = append(globalSrc.vars, variable{name: name, value: value})
		}
	}

	defaultsSrc := source{kind: models.SourceDefaults, priority: PriorityDefaults}
	for k, v := range s.defaults {
		defaultsSrc.vars = append(defaultsSrc.vars, variable{name: k, value: v})
	}

	out := []source{appSrc, globalSrc, defaultsSrc}
	for i := range out {
		sort.Slice(out[i].vars, func(a, b int) bool { return out[i].vars[a].name < out[i].vars[b].name })
	}
	return out
}

func (s *System) isDirect(name string) bool {
	for _, re := range s.direct {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// GetFallbackConfigurationValue resolves key against the fallback mapping
// of appID. When the resolver finds nothing, the transformer's fallback keys
// are tried against the mapping and then against the live environment.
// AttemptedKeys lists every key tried by any stage.
func (s *System) GetFallbackConfigurationValue(appID, key string) (models.ResolutionResult, error) {
	cfg, err := s.GetFallbackConfiguration(appID, false)
	if err != nil {
		return models.ResolutionResult{RequestedKey: key, AttemptedKeys: []string{}}, err
	}

	res := s.resolver.Resolve(key, cfg.Data, appID)
	if res.Success {
		return res, nil
	}

	seen := make(map[string]struct{}, len(res.AttemptedKeys))
	for _, k := range res.AttemptedKeys {
		seen[k] = struct{}{}
	}
	note := func(k string) {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			res.AttemptedKeys = append(res.AttemptedKeys, k)
		}
	}

	candidates := s.transformer.ResolveFallbackKeys(key, appID)
	for _, k := range candidates {
		note(k)
		if v, ok := cfg.Data[k]; ok && v != nil {
			return success(res, v, k, StrategyFallbackKeys), nil
		}
	}
	for _, k := range candidates {
		if v, ok := s.env.Lookup(k); ok {
			return success(res, v, k, StrategyEnvironment), nil
		}
	}

	s.logger.Debug().Str("app_id", appID).Str("key", key).Int("attempts", len(res.AttemptedKeys)).Msg("fallback value not found")
	return res, nil
}

func success(res models.ResolutionResult, value any, key, strategy string) models.ResolutionResult {
	res.Success = true
	res.Value = value
	res.MatchedKey = key
	res.Strategy = strategy
	res.Score = 1
	return res
}

// Debug runs GetFallbackConfiguration with diagnostics and records a
// resolution attempt for every key in keys.
func (s *System) Debug(appID string, keys []string) (models.FallbackResult, error) {
	result, err := s.GetFallbackConfiguration(appID, true)
	if err != nil {
		return result, err
	}
	for _, k := range keys {
		result.Debug.ResolutionAttempts = append(result.Debug.ResolutionAttempts, s.resolver.Resolve(k, result.Data, appID))
	}
	return result, nil
}

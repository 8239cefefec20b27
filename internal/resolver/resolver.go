// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver finds a requested key in a configuration mapping no
// matter which naming convention the caller or the mapping uses.
//
// Strategies run in a fixed order and the first one yielding a non-nil
// value wins:
//
//	direct                   exact key
//	lowercase                lower-cased key
//	nested                   dotted path through nested maps
//	prefix-removal           app and generic prefixes stripped
//	underscore-to-dot        env-style key turned into its dotted form
//	transformation-variants  framework prefixes, camelCase, kebab-case,
//	                         separator-free comparison
//	partial                  substring containment scored by similarity
//	fuzzy                    normalized Levenshtein similarity
//
// Every literal key tried is reported in the result, on failure as well.
package resolver

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/models"
)

// Strategy names reported in models.ResolutionResult.
const (
	StrategyDirect        = "direct"
	StrategyLowercase     = "lowercase"
	StrategyNested        = "nested"
	StrategyPrefixRemoval = "prefix-removal"
	StrategyUnderscoreDot = "underscore-to-dot"
	StrategyVariants      = "transformation-variants"
	StrategyPartial       = "partial"
	StrategyFuzzy         = "fuzzy"
)

const (
	DefaultFuzzyThreshold   = 0.8
	DefaultPartialThreshold = 0.7
)

// DefaultVariantPrefixes are framework prefixes stripped by the
// transformation-variants strategy.
var DefaultVariantPrefixes = []string{`^NEXT_PUBLIC_`, `^REACT_APP_`, `^VITE_`, `^PUBLIC_`}

// Resolver runs the lookup strategies. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	transformer      *keytransform.Transformer
	fuzzyThreshold   float64
	partialThreshold float64
	variantPrefixes  []*regexp.Regexp
}

type Option func(*Resolver)

// WithFuzzyThreshold sets the minimum similarity, exclusive, for a fuzzy match.
func WithFuzzyThreshold(v float64) Option {
	return func(r *Resolver) {
		if v > 0 && v <= 1 {
			r.fuzzyThreshold = v
		}
	}
}

// WithPartialThreshold sets the minimum similarity, exclusive, for a partial match.
func WithPartialThreshold(v float64) Option {
	return func(r *Resolver) {
		if v > 0 && v <= 1 {
			r.partialThreshold = v
		}
	}
}

// WithVariantPrefixes replaces the framework prefixes. Invalid expressions
// are ignored.
func WithVariantPrefixes(exprs ...string) Option {
	return func(r *Resolver) {
		r.variantPrefixes = compile(exprs)
	}
}

func compile(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		if re, err := regexp.Compile("(?i)" + e); err == nil {
			out = append(out, re)
		}
	}
	return out
}

func New(transformer *keytransform.Transformer, opts ...Option) *Resolver {
	r := &Resolver{
		transformer:      transformer,
		fuzzyThreshold:   DefaultFuzzyThreshold,
		partialThreshold: DefaultPartialThreshold,
		variantPrefixes:  compile(DefaultVariantPrefixes),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type strategy struct {
	name string
	run  func(p *search) bool
}

// Resolve looks requestedKey up in mapping. appID scopes the prefix
// stripping strategies and may be empty.
func (r *Resolver) Resolve(requestedKey string, mapping models.ConfigMap, appID string) models.ResolutionResult {
	p := &search{
		resolver: r,
		mapping:  mapping,
		key:      strings.TrimSpace(requestedKey),
		appID:    appID,
		seen:     make(map[string]struct{}),
	}

	strategies := []strategy{
		{StrategyDirect, (*search).direct},
		{StrategyLowercase, (*search).lowercase},
		{StrategyNested, (*search).nested},
		{StrategyPrefixRemoval, (*search).prefixRemoval},
		{StrategyUnderscoreDot, (*search).underscoreToDot},
		{StrategyVariants, (*search).variants},
		{StrategyPartial, (*search).partial},
		{StrategyFuzzy, (*search).fuzzy},
	}

	result := models.ResolutionResult{RequestedKey: requestedKey}
	if p.key != "" && len(mapping) > 0 {
		for _, s := range strategies {
			if s.run(p) {
				result.Success = true
				result.Strategy = s.name
				result.Value = p.value
				result.MatchedKey = p.matched
				result.Score = p.score
				break
			}
		}
	}

	result.AttemptedKeys = p.attempted
	if result.AttemptedKeys == nil {
		result.AttemptedKeys = []string{}
	}
	return result
}

// ResolveMany resolves every key against the same mapping.
func (r *Resolver) ResolveMany(keys []string, mapping models.ConfigMap, appID string) map[string]models.ResolutionResult {
	out := make(map[string]models.ResolutionResult, len(keys))
	for _, k := range keys {
		out[k] = r.Resolve(k, mapping, appID)
	}
	return out
}

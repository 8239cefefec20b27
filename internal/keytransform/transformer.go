// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keytransform converts configuration keys between the naming
// conventions used by the resolver:
//
//   - env form:     CONFIG_ADMIN_API_URL (raw environment variable name)
//   - clean form:   api.url (prefix-free dotted lowercase key)
//   - service form: admin:api.url (app-qualified key of the remote service)
//   - legacy form:  CONFIG_ADMIN_API_URL (canonical app-prefixed upper snake)
//   - nested form:  admin.api.url (app-qualified dotted path)
//
// A Transformer is immutable after construction and safe for concurrent use.
package keytransform

import (
	"strings"

	"github.com/MKhiriev/go-config-resolver/models"
)

// Transformer maps keys between naming conventions for one generic prefix.
type Transformer struct {
	prefix   string
	mappings map[string][]KeyMapping
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithMappings installs per-app custom key mappings. Map keys are app ids;
// the empty app id holds mappings that apply to every app.
func WithMappings(mappings map[string][]KeyMapping) Option {
	return func(t *Transformer) {
		for appID, list := range mappings {
			key := strings.ToLower(appID)
			t.mappings[key] = append(t.mappings[key], list...)
		}
	}
}

// New returns a Transformer for the generic prefix (e.g. "CONFIG"). The
// prefix is upper-cased and any trailing underscore is dropped.
func New(prefix string, opts ...Option) *Transformer {
	t := &Transformer{
		prefix:   strings.TrimRight(strings.ToUpper(strings.TrimSpace(prefix)), "_"),
		mappings: make(map[string][]KeyMapping),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Prefix returns the generic prefix without the trailing underscore.
func (t *Transformer) Prefix() string {
	return t.prefix
}

// AppToken returns the upper snake token of appID as it appears inside
// environment variable names: "admin-api" becomes "ADMIN_API".
func AppToken(appID string) string {
	return strings.ToUpper(strings.ReplaceAll(appID, "-", "_"))
}

// StripPrefix removes the longest matching prefix among PREFIX_{APP}_,
// {APP}_ and PREFIX_ from envKey, comparing case-insensitively. A prefix is
// only stripped when something remains after it.
func (t *Transformer) StripPrefix(envKey, appID string) string {
	best := 0
	for _, p := range t.prefixCandidates(appID) {
		if len(p) > best && hasPrefixFold(envKey, p) {
			best = len(p)
		}
	}
	return envKey[best:]
}

// hasPrefixFold reports whether s starts with prefix, ignoring case, and
// has something after it.
func hasPrefixFold(s, prefix string) bool {
	return len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func (t *Transformer) prefixCandidates(appID string) []string {
	generic := t.prefix + "_"
	if appID == "" {
		return []string{generic}
	}
	app := AppToken(appID) + "_"
	return []string{generic + app, app, generic}
}

// EnvToService converts an environment variable name into its clean dotted
// service key. A custom mapping for the stripped key wins over the generic
// rule.
//
//	EnvToService("CONFIG_ADMIN_API_URL", "admin") == "api.url"
//	EnvToService("CONFIG_DB__HOST", "")         == "db.host"
func (t *Transformer) EnvToService(envKey, appID string) string {
	stripped := t.StripPrefix(strings.TrimSpace(envKey), appID)
	if m, ok := t.mappingForEnvKey(appID, envKey, stripped); ok && m.ServiceKey != "" {
		return NormalizeKey(m.ServiceKey)
	}
	return NormalizeKey(strings.ReplaceAll(stripped, "_", "."))
}

// NormalizeKey lower-cases key, turns ":" and "/" into dots, collapses
// repeated dots and drops empty segments. Underscores and hyphens are kept.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.NewReplacer(":", ".", "/", ".").Replace(key)

	parts := strings.Split(key, ".")
	segments := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, ".")
}

// ServiceToApp expands serviceKey into every form of models.AppContextKey.
//
// The input may be a clean key, an app-qualified service key ("admin:api.url")
// or an environment variable name. ServiceToApp never fails: when no clean
// key can be derived, or the derivation panics, every slot holds the input
// unchanged.
func (t *Transformer) ServiceToApp(serviceKey, appID string) (key models.AppContextKey) {
	defer func() {
		if r := recover(); r != nil {
			key = verbatimKey(serviceKey)
		}
	}()

	clean := t.cleanKey(serviceKey, appID)
	if clean == "" {
		return verbatimKey(serviceKey)
	}

	key = models.AppContextKey{
		Original: serviceKey,
		Clean:    clean,
		Service:  clean,
		Nested:   clean,
		Legacy:   t.legacyKey(clean, appID),
	}
	if appID != "" {
		key.Service = appID + ":" + clean
		key.Nested = strings.ToLower(appID) + "." + clean
	}
	return key
}

func verbatimKey(key string) models.AppContextKey {
	return models.AppContextKey{
		Original: key,
		Clean:    key,
		Service:  key,
		Legacy:   key,
		Nested:   key,
	}
}

func (t *Transformer) cleanKey(serviceKey, appID string) string {
	s := strings.TrimSpace(serviceKey)
	if appID != "" {
		if qualifier := appID + ":"; hasPrefixFold(s, qualifier) {
			s = s[len(qualifier):]
		}
	}
	if isEnvStyle(s) {
		return t.EnvToService(s, appID)
	}
	return NormalizeKey(s)
}

// isEnvStyle reports whether s looks like an environment variable name:
// upper case, at least one underscore and no dots.
func isEnvStyle(s string) bool {
	return strings.Contains(s, "_") && !strings.ContainsAny(s, ".:/") && s == strings.ToUpper(s)
}

func (t *Transformer) legacyKey(clean, appID string) string {
	if m, ok := t.mappingForServiceKey(appID, clean); ok && m.EnvKey != "" {
		envKey := strings.ToUpper(m.EnvKey)
		if strings.HasPrefix(envKey, t.prefix+"_") {
			return envKey
		}
		return t.legacyPrefix(appID) + envKey
	}

	rest := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(clean))
	return t.legacyPrefix(appID) + rest
}

func (t *Transformer) legacyPrefix(appID string) string {
	if appID == "" {
		return t.prefix + "_"
	}
	return t.prefix + "_" + AppToken(appID) + "_"
}

// ResolveFallbackKeys returns an ordered, de-duplicated list of keys worth
// probing for requestedKey: the original, the app-prefix-stripped key, the
// clean and service forms, the lowercase, dotted and separator-free
// variants, the legacy and nested forms and finally custom-mapping fallback
// keys.
func (t *Transformer) ResolveFallbackKeys(requestedKey, appID string) []string {
	keys := make([]string, 0, 12)
	seen := make(map[string]struct{}, 12)
	add := func(k string) {
		if k == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	stripped := t.stripAppQualifier(requestedKey, appID)
	add(requestedKey)
	add(stripped)

	ctx := t.ServiceToApp(stripped, appID)
	add(ctx.Clean)
	add(ctx.Service)

	lower := strings.ToLower(requestedKey)
	add(lower)
	add(NormalizeKey(strings.NewReplacer("_", ".", "-", ".").Replace(lower)))
	add(CompactKey(requestedKey))
	add(ctx.Legacy)
	add(ctx.Nested)
	if stripped != requestedKey {
		for _, form := range t.ServiceToApp(requestedKey, appID).Forms() {
			add(form)
		}
	}

	for _, m := range t.relatedMappings(appID, requestedKey, ctx.Clean) {
		add(NormalizeKey(m.ServiceKey))
		for _, fk := range m.FallbackKeys {
			add(fk)
		}
	}
	return keys
}

// stripAppQualifier removes an app qualifier in any of its forms:
// "admin:", "admin.", PREFIX_ADMIN_ or ADMIN_.
func (t *Transformer) stripAppQualifier(key, appID string) string {
	if appID == "" {
		return t.StripPrefix(key, "")
	}
	for _, sep := range []string{":", "."} {
		if q := appID + sep; hasPrefixFold(key, q) {
			return key[len(q):]
		}
	}
	return t.StripPrefix(key, appID)
}

// CompactKey lower-cases key and removes every separator, so "api.url",
// "API_URL", "api-url" and "apiUrl" all compact to "apiurl".
func CompactKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range strings.ToLower(key) {
		switch r {
		case '.', '_', '-', ':', '/', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CreateKeyMapping returns a mapping from every form of envKey to value:
// the raw variable name plus the clean, service, legacy and nested forms.
// It is the unit the fallback system merges into its working configuration.
func (t *Transformer) CreateKeyMapping(envKey string, value any, appID string) models.ConfigMap {
	ctx := t.ServiceToApp(t.EnvToService(envKey, appID), appID)

	m := make(models.ConfigMap, 6)
	m[envKey] = value
	for _, form := range ctx.Forms() {
		m[form] = value
	}
	return m
}

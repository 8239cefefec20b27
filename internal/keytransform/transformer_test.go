// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keytransform

import (
	"testing"

	"github.com/MKhiriev/go-config-resolver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_NormalizesPrefix(t *testing.T) {
	assert.Equal(t, "CONFIG", New("config_").Prefix())
	assert.Equal(t, "MYCO", New(" MYCO ").Prefix())
}

func TestAppToken(t *testing.T) {
	assert.Equal(t, "ADMIN", AppToken("admin"))
	assert.Equal(t, "ADMIN_API", AppToken("admin-api"))
	assert.Equal(t, "WEB_2", AppToken("Web_2"))
}

// ── EnvToService ─────────────────────────────────────────────────────────────

func TestEnvToService(t *testing.T) {
	tr := New("CONFIG")

	tests := []struct {
		name   string
		envKey string
		appID  string
		want   string
	}{
		{name: "app scoped", envKey: "CONFIG_ADMIN_API_URL", appID: "admin", want: "api.url"},
		{name: "app token only", envKey: "ADMIN_API_URL", appID: "admin", want: "api.url"},
		{name: "generic prefix with app", envKey: "CONFIG_API_URL", appID: "admin", want: "api.url"},
		{name: "generic without app", envKey: "CONFIG_API_URL", appID: "", want: "api.url"},
		{name: "no prefix", envKey: "DATABASE_URL", appID: "admin", want: "database.url"},
		{name: "case insensitive prefix", envKey: "config_admin_Api_Url", appID: "admin", want: "api.url"},
		{name: "hyphenated app", envKey: "CONFIG_ADMIN_API_DB_HOST", appID: "admin-api", want: "db.host"},
		{name: "double underscore nests", envKey: "CONFIG_DB__HOST", appID: "", want: "db.host"},
		{name: "triple underscore nests", envKey: "CONFIG_ADMIN_DB___POOL__MAX", appID: "admin", want: "db.pool.max"},
		{name: "leading and trailing underscores", envKey: "___A___B___", appID: "", want: "a.b"},
		{name: "prefix only is not stripped to nothing", envKey: "CONFIG_ADMIN_", appID: "admin", want: "admin"},
		{name: "surrounding spaces", envKey: "  CONFIG_API_URL ", appID: "", want: "api.url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.EnvToService(tt.envKey, tt.appID))
		})
	}
}

// TestEnvToService_NeverProducesEmptySegments checks the "no .." edge case
// over a batch of awkward names.
func TestEnvToService_NeverProducesEmptySegments(t *testing.T) {
	tr := New("CONFIG")
	for _, k := range []string{"A__B", "_A_", "CONFIG__X", "CONFIG_ADMIN__", "A____B____C", "__"} {
		got := tr.EnvToService(k, "admin")
		assert.NotContains(t, got, "..", k)
		assert.False(t, len(got) > 0 && (got[0] == '.' || got[len(got)-1] == '.'), k)
	}
}

func TestEnvToService_CustomMappingWins(t *testing.T) {
	tr := New("CONFIG", WithMappings(map[string][]KeyMapping{
		"admin": {{EnvKey: "LEGACY_ENDPOINT", ServiceKey: "api.url"}},
		"":      {{EnvKey: "CONFIG_SESSION_KEY", ServiceKey: "auth.session.key"}},
	}))

	assert.Equal(t, "api.url", tr.EnvToService("CONFIG_ADMIN_LEGACY_ENDPOINT", "admin"))
	assert.Equal(t, "api.url", tr.EnvToService("LEGACY_ENDPOINT", "admin"))
	assert.Equal(t, "legacy.endpoint", tr.EnvToService("CONFIG_WEB_LEGACY_ENDPOINT", "web"))
	assert.Equal(t, "auth.session.key", tr.EnvToService("CONFIG_SESSION_KEY", "web"))
}

// ── ServiceToApp ─────────────────────────────────────────────────────────────

func TestServiceToApp_AllForms(t *testing.T) {
	tr := New("CONFIG")

	got := tr.ServiceToApp("api.url", "admin")

	assert.Equal(t, models.AppContextKey{
		Original: "api.url",
		Clean:    "api.url",
		Service:  "admin:api.url",
		Legacy:   "CONFIG_ADMIN_API_URL",
		Nested:   "admin.api.url",
	}, got)
}

func TestServiceToApp_InputShapes(t *testing.T) {
	tr := New("CONFIG")

	tests := []struct {
		name      string
		input     string
		appID     string
		wantClean string
		wantLeg   string
	}{
		{name: "service qualified", input: "admin:api.url", appID: "admin", wantClean: "api.url", wantLeg: "CONFIG_ADMIN_API_URL"},
		{name: "env style", input: "CONFIG_ADMIN_API_URL", appID: "admin", wantClean: "api.url", wantLeg: "CONFIG_ADMIN_API_URL"},
		{name: "slash separated", input: "Api/Url", appID: "admin", wantClean: "api.url", wantLeg: "CONFIG_ADMIN_API_URL"},
		{name: "hyphenated app", input: "db.host", appID: "admin-api", wantClean: "db.host", wantLeg: "CONFIG_ADMIN_API_DB_HOST"},
		{name: "no app", input: "api.url", appID: "", wantClean: "api.url", wantLeg: "CONFIG_API_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.ServiceToApp(tt.input, tt.appID)
			assert.Equal(t, tt.input, got.Original)
			assert.Equal(t, tt.wantClean, got.Clean)
			assert.Equal(t, tt.wantLeg, got.Legacy)
		})
	}
}

func TestServiceToApp_NoAppUsesCleanForms(t *testing.T) {
	got := New("CONFIG").ServiceToApp("api.url", "")

	assert.Equal(t, "api.url", got.Service)
	assert.Equal(t, "api.url", got.Nested)
}

// TestServiceToApp_IsTotal verifies that degenerate input comes back
// unchanged in every slot instead of failing.
func TestServiceToApp_IsTotal(t *testing.T) {
	tr := New("CONFIG")

	for _, input := range []string{"", "...", " : / ", "admin:./"} {
		t.Run(input, func(t *testing.T) {
			got := tr.ServiceToApp(input, "admin")
			assert.Equal(t, models.AppContextKey{
				Original: input, Clean: input, Service: input, Legacy: input, Nested: input,
			}, got)
		})
	}
}

func TestServiceToApp_RecoversToVerbatimKey(t *testing.T) {
	var tr *Transformer

	var got models.AppContextKey
	require.NotPanics(t, func() { got = tr.ServiceToApp("api.url", "admin") })
	assert.Equal(t, models.AppContextKey{
		Original: "api.url", Clean: "api.url", Service: "api.url", Legacy: "api.url", Nested: "api.url",
	}, got)
}

// TestRoundTrip_LegacyShape verifies that a canonical legacy variable name
// survives EnvToService followed by ServiceToApp.
func TestRoundTrip_LegacyShape(t *testing.T) {
	tr := New("CONFIG", WithMappings(map[string][]KeyMapping{
		"admin": {{EnvKey: "LEGACY_ENDPOINT", ServiceKey: "gateway.endpoint"}},
	}))

	cases := []struct {
		appID  string
		envKey string
	}{
		{"admin", "CONFIG_ADMIN_API_URL"},
		{"admin", "CONFIG_ADMIN_NEXTAUTH_SECRET"},
		{"admin", "CONFIG_ADMIN_DB_POOL_MAX_SIZE"},
		{"admin", "CONFIG_ADMIN_LEGACY_ENDPOINT"},
		{"admin-api", "CONFIG_ADMIN_API_DB_HOST"},
		{"web2", "CONFIG_WEB2_FEATURE_FLAGS_BETA"},
		{"", "CONFIG_LOG_LEVEL"},
	}

	for _, tc := range cases {
		t.Run(tc.envKey, func(t *testing.T) {
			service := tr.EnvToService(tc.envKey, tc.appID)
			assert.Equal(t, tc.envKey, tr.ServiceToApp(service, tc.appID).Legacy)
		})
	}
}

// ── ResolveFallbackKeys ──────────────────────────────────────────────────────

func TestResolveFallbackKeys_Order(t *testing.T) {
	tr := New("CONFIG")

	got := tr.ResolveFallbackKeys("NEXTAUTH_SECRET", "admin")

	assert.Equal(t, []string{
		"NEXTAUTH_SECRET",
		"nextauth.secret",
		"admin:nextauth.secret",
		"nextauth_secret",
		"nextauthsecret",
		"CONFIG_ADMIN_NEXTAUTH_SECRET",
		"admin.nextauth.secret",
	}, got)
}

func TestResolveFallbackKeys_StripsAppQualifier(t *testing.T) {
	tr := New("CONFIG")

	got := tr.ResolveFallbackKeys("admin.api.url", "admin")

	require.NotEmpty(t, got)
	assert.Equal(t, "admin.api.url", got[0])
	assert.Equal(t, "api.url", got[1])
	assert.Contains(t, got, "admin:api.url")
	assert.Contains(t, got, "CONFIG_ADMIN_API_URL")
	assert.Contains(t, got, "adminapiurl")
}

func TestResolveFallbackKeys_Unique(t *testing.T) {
	got := New("CONFIG").ResolveFallbackKeys("api.url", "")

	seen := map[string]bool{}
	for _, k := range got {
		assert.False(t, seen[k], "duplicate %s", k)
		assert.NotEmpty(t, k)
		seen[k] = true
	}
}

func TestResolveFallbackKeys_CustomFallbackKeys(t *testing.T) {
	tr := New("CONFIG", WithMappings(map[string][]KeyMapping{
		"admin": {{
			EnvKey:       "LEGACY_ENDPOINT",
			ServiceKey:   "api.url",
			FallbackKeys: []string{"API_BASE_URL", "endpoint"},
		}},
	}))

	got := tr.ResolveFallbackKeys("api.url", "admin")

	assert.Contains(t, got, "API_BASE_URL")
	assert.Contains(t, got, "endpoint")
	assert.Equal(t, "API_BASE_URL", got[len(got)-2])
}

// ── CreateKeyMapping ─────────────────────────────────────────────────────────

func TestCreateKeyMapping_AppScoped(t *testing.T) {
	tr := New("CONFIG")

	got := tr.CreateKeyMapping("CONFIG_ADMIN_API_URL", "https://x", "admin")

	assert.Equal(t, models.ConfigMap{
		"CONFIG_ADMIN_API_URL": "https://x",
		"api.url":              "https://x",
		"admin:api.url":        "https://x",
		"admin.api.url":        "https://x",
	}, got)
}

func TestCreateKeyMapping_Generic(t *testing.T) {
	got := New("CONFIG").CreateKeyMapping("CONFIG_LOG_LEVEL", "info", "")

	assert.Equal(t, models.ConfigMap{
		"CONFIG_LOG_LEVEL": "info",
		"log.level":        "info",
	}, got)
}

func TestCreateKeyMapping_GenericRewrittenForApp(t *testing.T) {
	got := New("CONFIG").CreateKeyMapping("CONFIG_LOG_LEVEL", "info", "web")

	assert.Equal(t, "info", got["log.level"])
	assert.Equal(t, "info", got["web:log.level"])
	assert.Equal(t, "info", got["CONFIG_WEB_LOG_LEVEL"])
	assert.Equal(t, "info", got["CONFIG_LOG_LEVEL"])
}

// ── NormalizeKey / CompactKey ────────────────────────────────────────────────

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"Api:Url":          "api.url",
		"feature/flags/x":  "feature.flags.x",
		"a..b":             "a.b",
		".a.":              "a",
		"db_host":          "db_host",
		"  Spaced . Key  ": "spaced.key",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeKey(in), in)
	}
}

func TestCompactKey(t *testing.T) {
	for _, in := range []string{"api.url", "API_URL", "api-url", "apiUrl", "api:url", "api/url"} {
		assert.Equal(t, "apiurl", CompactKey(in), in)
	}
}

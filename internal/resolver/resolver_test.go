package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/models"
)

func newTestResolver(opts ...Option) *Resolver {
	return New(keytransform.New("CONFIG"), opts...)
}

func TestResolve_Strategies(t *testing.T) {
	mapping := models.ConfigMap{
		"nextauth.secret": "secret",
		"API_URL":         "https://direct",
		"log.level":       "info",
		"database":        map[string]any{"host": "db", "port": 5432},
		"feature.flags":   "on",
		"okta.client.id":  "okta",
		"redis.url":       "redis://cache",
		"upload.max.size": "10mb",
	}

	tests := []struct {
		name     string
		key      string
		appID    string
		value    any
		strategy string
	}{
		{name: "direct", key: "API_URL", value: "https://direct", strategy: StrategyDirect},
		{name: "lowercase", key: "LOG.LEVEL", value: "info", strategy: StrategyLowercase},
		{name: "nested", key: "database.host", value: "db", strategy: StrategyNested},
		{name: "nested upper", key: "DATABASE.PORT", value: 5432, strategy: StrategyNested},
		{name: "app qualifier", key: "admin:log.level", appID: "admin", value: "info", strategy: StrategyPrefixRemoval},
		{name: "legacy prefix", key: "CONFIG_ADMIN_LOG_LEVEL", appID: "admin", value: "info", strategy: StrategyPrefixRemoval},
		{name: "env style", key: "NEXTAUTH_SECRET", value: "secret", strategy: StrategyUnderscoreDot},
		{name: "camel case", key: "oktaClientId", value: "okta", strategy: StrategyVariants},
		{name: "kebab case", key: "feature-flags", value: "on", strategy: StrategyVariants},
		{name: "framework prefix", key: "NEXT_PUBLIC_REDIS_URL", value: "redis://cache", strategy: StrategyVariants},
		{name: "compact", key: "nextauthsecret", value: "secret", strategy: StrategyVariants},
		{name: "partial", key: "upload_max_siz", value: "10mb", strategy: StrategyPartial},
		{name: "fuzzy", key: "nextauth.secrte", value: "secret", strategy: StrategyFuzzy},
	}

	r := newTestResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.key, mapping, tt.appID)
			require.True(t, res.Success, "attempted: %v", res.AttemptedKeys)
			assert.Equal(t, tt.value, res.Value)
			assert.Equal(t, tt.strategy, res.Strategy)
			assert.Equal(t, tt.key, res.RequestedKey)
			assert.NotEmpty(t, res.MatchedKey)
			assert.NotEmpty(t, res.AttemptedKeys)
		})
	}
}

func TestResolve_Completeness(t *testing.T) {
	mapping := models.ConfigMap{"nextauth.secret": "s3cret"}
	r := newTestResolver()

	for _, key := range []string{"NEXTAUTH_SECRET", "nextauthsecret", "nextauth.secret"} {
		res := r.Resolve(key, mapping, "admin")
		assert.True(t, res.Success, key)
		assert.Equal(t, "s3cret", res.Value, key)
		assert.Equal(t, "nextauth.secret", res.MatchedKey, key)
	}
}

func TestResolve_MergedPrecedenceKey(t *testing.T) {
	res := newTestResolver().Resolve("apiurl", models.ConfigMap{"api.url": "https://svc"}, "admin")
	require.True(t, res.Success)
	assert.Equal(t, "https://svc", res.Value)
}

func TestResolve_NotFoundReportsAttempts(t *testing.T) {
	res := newTestResolver().Resolve("CONFIG_ADMIN_TOTALLY_UNKNOWN", models.ConfigMap{"api.url": "x"}, "admin")

	assert.False(t, res.Success)
	assert.Nil(t, res.Value)
	assert.Empty(t, res.Strategy)
	require.NotEmpty(t, res.AttemptedKeys)
	assert.Equal(t, "CONFIG_ADMIN_TOTALLY_UNKNOWN", res.AttemptedKeys[0])
	assert.Contains(t, res.AttemptedKeys, "totally.unknown")
}

func TestResolve_AttemptedKeysAreUnique(t *testing.T) {
	res := newTestResolver().Resolve("missing", models.ConfigMap{"other": 1}, "")

	seen := map[string]bool{}
	for _, k := range res.AttemptedKeys {
		assert.False(t, seen[k], "duplicate attempt %q", k)
		seen[k] = true
	}
}

func TestResolve_EmptyInputs(t *testing.T) {
	r := newTestResolver()

	res := r.Resolve("", models.ConfigMap{"a": 1}, "")
	assert.False(t, res.Success)
	assert.NotNil(t, res.AttemptedKeys)

	res = r.Resolve("a", nil, "")
	assert.False(t, res.Success)
	assert.NotNil(t, res.AttemptedKeys)
}

func TestResolve_NilValuesAreUndefined(t *testing.T) {
	res := newTestResolver().Resolve("a", models.ConfigMap{"a": nil}, "")
	assert.False(t, res.Success)
}

func TestResolve_FuzzyPicksBestAndBreaksTiesByKey(t *testing.T) {
	r := newTestResolver()

	res := r.Resolve("servicehostx", models.ConfigMap{"service.hosts": 1, "service.host": 2}, "")
	require.True(t, res.Success)

	// both keys are one edit away; the lexically first wins
	tie := r.Resolve("abcdex", models.ConfigMap{"abcdez": "z", "abcdey": "y"}, "")
	require.True(t, tie.Success)
	assert.Equal(t, StrategyFuzzy, tie.Strategy)
	assert.Equal(t, "abcdey", tie.MatchedKey)
}

func TestResolve_FuzzyReportsBestCandidateOnFailure(t *testing.T) {
	res := newTestResolver().Resolve("zzqq", models.ConfigMap{"abcd": 1, "zzqx": 2}, "")

	require.False(t, res.Success)
	require.NotEmpty(t, res.AttemptedKeys)
	// "zzqx" is one edit away (0.75), below the 0.8 threshold
	assert.Equal(t, "zzqx", res.AttemptedKeys[len(res.AttemptedKeys)-1])
	assert.NotContains(t, res.AttemptedKeys, "abcd")
}

func TestResolve_Thresholds(t *testing.T) {
	mapping := models.ConfigMap{"nextauth.secret": "s"}

	strict := newTestResolver(WithFuzzyThreshold(0.99))
	assert.False(t, strict.Resolve("nextauth.secrte", mapping, "").Success)

	loose := newTestResolver(WithFuzzyThreshold(0.5))
	assert.True(t, loose.Resolve("nextauth.sec", mapping, "").Success)

	ignored := newTestResolver(WithFuzzyThreshold(2), WithPartialThreshold(-1))
	assert.Equal(t, DefaultFuzzyThreshold, ignored.fuzzyThreshold)
	assert.Equal(t, DefaultPartialThreshold, ignored.partialThreshold)
}

func TestResolve_VariantPrefixes(t *testing.T) {
	mapping := models.ConfigMap{"redis.url": "r"}

	res := newTestResolver(WithVariantPrefixes(`^MYAPP_`)).Resolve("MYAPP_REDIS_URL", mapping, "")
	require.True(t, res.Success)
	assert.Equal(t, "r", res.Value)
}

func TestResolveMany(t *testing.T) {
	out := newTestResolver().ResolveMany([]string{"API_URL", "missing.key"}, models.ConfigMap{"api.url": "u"}, "")

	require.Len(t, out, 2)
	assert.True(t, out["API_URL"].Success)
	assert.False(t, out["missing.key"].Success)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 1.0, Similarity("abc", "abc"))
	assert.Equal(t, 0.0, Similarity("abc", ""))
	assert.InDelta(t, 0.75, Similarity("abcd", "abce"), 1e-9)
}

func TestCamelToDot(t *testing.T) {
	assert.Equal(t, "api.url", camelToDot("apiUrl"))
	assert.Equal(t, "api.base.url", camelToDot("APIBaseURL"))
	assert.Equal(t, "okta.client.id", camelToDot("oktaClientId"))
	assert.Equal(t, "db.v2.host", camelToDot("db_v2Host"))
}

package fallback

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-resolver/internal/app"
	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/resolver"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/internal/validators"
	"github.com/MKhiriev/go-config-resolver/models"
)

func newTestSystem(t *testing.T, vars, defaults map[string]string, opts ...Option) (*System, *utils.MapEnvironment) {
	t.Helper()
	tr := keytransform.New("CONFIG")
	env := utils.NewMapEnvironment(vars)
	known := func() []string { return []string{"admin", "web"} }
	return New(tr, resolver.New(tr), env, defaults, known, logger.Nop(), opts...), env
}

func TestGetFallbackConfiguration_PriorityAndShapes(t *testing.T) {
	s, _ := newTestSystem(t, map[string]string{
		"CONFIG_ADMIN_LOG_LEVEL": "debug",
		"CONFIG_LOG_LEVEL":       "info",
		"CONFIG_REGION":          "eu",
		"CONFIG_WEB_API_URL":     "https://web",
		"HOME":                   "/root",
	}, map[string]string{
		"log.level": "warn",
		"timeout":   "30s",
	})

	res, err := s.GetFallbackConfiguration("admin", false)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "admin", res.AppID)
	assert.Nil(t, res.Debug)

	// app env beats global env beats defaults
	assert.Equal(t, "debug", res.Data["log.level"])
	assert.Equal(t, "debug", res.Data["admin:log.level"])
	assert.Equal(t, "debug", res.Data["CONFIG_ADMIN_LOG_LEVEL"])
	assert.Equal(t, "debug", res.Data["admin.log.level"])

	// global variables are rewritten into the app context
	assert.Equal(t, "eu", res.Data["region"])
	assert.Equal(t, "eu", res.Data["CONFIG_ADMIN_REGION"])

	assert.Equal(t, "30s", res.Data["timeout"])
	assert.Equal(t, "30s", res.Data["admin:timeout"])

	assert.Equal(t, 5, res.VariablesFound)
	assert.Positive(t, res.KeysTransformed)
	assert.Equal(t, []models.SourceType{models.SourceAppEnv, models.SourceGenericEnv, models.SourceDefaults}, res.SourcesUsed)
}

func TestGetFallbackConfiguration_IsolatesApps(t *testing.T) {
	s, _ := newTestSystem(t, map[string]string{
		"CONFIG_WEB_API_URL":   "https://web",
		"CONFIG_ADMIN_API_URL": "https://admin",
	}, nil)

	res, err := s.GetFallbackConfiguration("admin", false)
	require.NoError(t, err)
	for k, v := range res.Data {
		assert.NotEqual(t, "https://web", v, k)
	}
	assert.Equal(t, "https://admin", res.Data["api.url"])
}

func TestGetFallbackConfiguration_Debug(t *testing.T) {
	s, _ := newTestSystem(t, map[string]string{"CONFIG_ADMIN_API_URL": "https://admin"}, nil)

	res, err := s.GetFallbackConfiguration("admin", true)
	require.NoError(t, err)
	require.NotNil(t, res.Debug)

	require.Len(t, res.Debug.Transformations, 1)
	tr := res.Debug.Transformations[0]
	assert.Equal(t, "CONFIG_ADMIN_API_URL", tr.EnvKey)
	assert.Equal(t, models.SourceAppEnv, tr.Source)
	assert.Equal(t, "api.url", tr.Keys.Clean)
	assert.Equal(t, "CONFIG_ADMIN_API_URL", tr.Keys.Legacy)

	require.Len(t, res.Debug.Sources, 3)
	assert.True(t, res.Debug.Sources[0].Available)
	assert.False(t, res.Debug.Sources[1].Available)
	assert.False(t, res.Debug.Sources[2].Available)
	assert.Equal(t, []models.SourceType{models.SourceAppEnv}, res.SourcesUsed)
}

func TestGetFallbackConfiguration_Empty(t *testing.T) {
	s, _ := newTestSystem(t, nil, nil)

	res, err := s.GetFallbackConfiguration("admin", false)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Empty(t, res.Data)
	assert.Empty(t, res.SourcesUsed)
}

func TestGetFallbackConfiguration_InvalidAppID(t *testing.T) {
	s, _ := newTestSystem(t, nil, nil)

	for _, id := range []string{"../etc", "a/b"} {
		_, err := s.GetFallbackConfiguration(id, false)
		assert.ErrorIs(t, err, app.ErrValidation)
		assert.ErrorIs(t, err, validators.ErrAppIDTraversal)
	}
}

func TestGetFallbackConfiguration_DirectPatterns(t *testing.T) {
	vars := map[string]string{"DATABASE_URL": "postgres://db", "PATH": "/bin"}

	without, _ := newTestSystem(t, vars, nil)
	res, err := without.GetFallbackConfiguration("admin", false)
	require.NoError(t, err)
	assert.False(t, res.Success)

	with, _ := newTestSystem(t, vars, nil, WithDirectPatterns([]*regexp.Regexp{regexp.MustCompile(`_URL$`)}))
	res, err = with.GetFallbackConfiguration("admin", false)
	require.NoError(t, err)
	assert.Equal(t, "postgres://db", res.Data["database.url"])
	assert.NotContains(t, res.Data, "PATH")
}

func TestGetFallbackConfiguration_Deterministic(t *testing.T) {
	s, _ := newTestSystem(t, map[string]string{
		"CONFIG_A_B":     "1",
		"CONFIG_A__B":    "2",
		"CONFIG_ADMIN_X": "3",
	}, map[string]string{"a.b": "0"})

	first, err := s.GetFallbackConfiguration("admin", false)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := s.GetFallbackConfiguration("admin", false)
		require.NoError(t, err)
		assert.Equal(t, first.Data, again.Data)
	}
}

func TestGetFallbackConfigurationValue(t *testing.T) {
	s, env := newTestSystem(t, map[string]string{"CONFIG_ADMIN_NEXTAUTH_SECRET": "s3cret"}, nil)

	res, err := s.GetFallbackConfigurationValue("admin", "NEXTAUTH_SECRET")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "s3cret", res.Value)
	assert.NotEmpty(t, res.AttemptedKeys)

	missing, err := s.GetFallbackConfigurationValue("admin", "does.not.exist")
	require.NoError(t, err)
	assert.False(t, missing.Success)
	assert.Contains(t, missing.AttemptedKeys, "does.not.exist")
	assert.Contains(t, missing.AttemptedKeys, "admin:does.not.exist")

	// a variable outside every fallback source is still found by its
	// literal name in the live environment
	env.Set("STANDALONE", "yes")
	live, err := s.GetFallbackConfigurationValue("admin", "STANDALONE")
	require.NoError(t, err)
	assert.True(t, live.Success)
	assert.Equal(t, StrategyEnvironment, live.Strategy)
	assert.Equal(t, "yes", live.Value)
}

func TestGetFallbackConfigurationValue_InvalidAppID(t *testing.T) {
	s, _ := newTestSystem(t, nil, nil)

	res, err := s.GetFallbackConfigurationValue("../etc", "a")
	assert.ErrorIs(t, err, app.ErrValidation)
	assert.False(t, res.Success)
	assert.NotNil(t, res.AttemptedKeys)
}

func TestDebug_RecordsResolutionAttempts(t *testing.T) {
	s, _ := newTestSystem(t, map[string]string{"CONFIG_ADMIN_API_URL": "https://admin"}, nil)

	res, err := s.Debug("admin", []string{"apiUrl", "missing"})
	require.NoError(t, err)
	require.Len(t, res.Debug.ResolutionAttempts, 2)
	assert.True(t, res.Debug.ResolutionAttempts[0].Success)
	assert.False(t, res.Debug.ResolutionAttempts[1].Success)
}

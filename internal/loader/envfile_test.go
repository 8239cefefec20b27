package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func knownApps(apps ...string) KnownAppsFunc {
	return func() []string { return apps }
}

func TestRootEnvFileLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"), `
# shared settings
CONFIG_LOG_LEVEL=info
DATABASE_URL="postgres://db/app"
CONFIG_ADMIN_API_URL='https://admin'
CONFIG_WEB_API_URL=https://web

NEXTAUTH_SECRET=abc
`)

	tr := keytransform.New("CONFIG")
	l := NewRootEnvFileLoader(root, tr, knownApps("admin", "web"), logger.Nop())

	assert.Equal(t, models.SourceRootEnvFile, l.Type())
	assert.Equal(t, models.PriorityRootEnvFile, l.Priority())

	data, err := l.Load(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, models.ConfigMap{
		"log.level":       "info",
		"database.url":    "postgres://db/app",
		"api.url":         "https://admin",
		"nextauth.secret": "abc",
	}, data)
}

func TestRootEnvFileLoader_MissingFile(t *testing.T) {
	l := NewRootEnvFileLoader(t.TempDir(), keytransform.New("CONFIG"), nil, logger.Nop())

	data, err := l.Load(context.Background(), "admin")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRootEnvFileLoader_Unreadable(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".env"), 0o755))

	l := NewRootEnvFileLoader(root, keytransform.New("CONFIG"), nil, logger.Nop())
	_, err := l.Load(context.Background(), "admin")
	assert.ErrorIs(t, err, ErrReadEnvFile)
}

func TestAppEnvFileLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "apps", "admin-api", ".env"), "ADMIN_API_DB__HOST=db\nCONFIG_ADMIN_API_PORT=8080\nFEATURE_X=on\n")

	l := NewAppEnvFileLoader(root, "apps", keytransform.New("CONFIG"), logger.Nop())
	assert.Equal(t, models.SourceAppEnvFile, l.Type())
	assert.Equal(t, models.PriorityAppEnvFile, l.Priority())

	data, err := l.Load(context.Background(), "admin-api")
	require.NoError(t, err)
	assert.Equal(t, models.ConfigMap{
		"db.host":   "db",
		"port":      "8080",
		"feature.x": "on",
	}, data)

	empty, err := l.Load(context.Background(), "web")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

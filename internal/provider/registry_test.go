package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
)

func TestRegistry_Discover(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"admin", "admin-api", "landing", ".cache", "bad name"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "apps", dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "apps", "README.md"), []byte("x"), 0o644))

	env := utils.NewMapEnvironment(map[string]string{
		"CONFIG_ADMIN_API_URL":  "https://a",
		"CONFIG_BILLING_DB_URL": "postgres://b",
	})
	r := NewRegistry(root, "apps", env, keytransform.New("CONFIG"), logger.Nop())

	d, err := r.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "admin-api", "landing"}, d.Filesystem)
	assert.Equal(t, []string{"admin-api"}, d.Environment)
	assert.Equal(t, []string{"admin", "admin-api", "landing"}, d.Added)

	assert.False(t, r.Contains("billing"))
	assert.Equal(t, []string{"admin", "admin-api", "landing"}, r.Known())

	d, err = r.Discover()
	require.NoError(t, err)
	assert.Empty(t, d.Added)
}

func TestRegistry_MissingAppsDir(t *testing.T) {
	r := NewRegistry(t.TempDir(), "apps", utils.NewMapEnvironment(nil), keytransform.New("CONFIG"), logger.Nop())

	d, err := r.Discover()
	require.NoError(t, err)
	assert.Empty(t, d.Filesystem)
	assert.Empty(t, r.Known())
}

func TestRegistry_Add(t *testing.T) {
	r := NewRegistry(t.TempDir(), "apps", utils.NewMapEnvironment(nil), keytransform.New("CONFIG"), logger.Nop())

	assert.True(t, r.Add("admin"))
	assert.False(t, r.Add("admin"))
	assert.False(t, r.Add("../etc"))
	assert.Equal(t, []string{"admin"}, r.Known())
}

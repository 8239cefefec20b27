package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

func startWatcher(t *testing.T, root string) <-chan string {
	t.Helper()
	changes := make(chan string, 16)
	w, err := NewWatcher(root, "apps", func(appID string) { changes <- appID }, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return changes
}

func waitChange(t *testing.T, changes <-chan string, want string) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case got := <-changes:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("no change reported for %q", want)
		}
	}
}

func TestWatcher_ReportsRootAndAppChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "apps", "admin"), 0o755))

	changes := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("A=1\n"), 0o600))
	waitChange(t, changes, "")

	require.NoError(t, os.WriteFile(filepath.Join(root, "apps", "admin", ".env"), []byte("B=2\n"), 0o600))
	waitChange(t, changes, "admin")
}

func TestWatcher_PicksUpNewAppDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "apps"), 0o755))

	changes := startWatcher(t, root)

	dir := filepath.Join(root, "apps", "web")
	require.NoError(t, os.Mkdir(dir, 0o755))

	// the directory watch is added asynchronously
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, ".env"), []byte("C=3\n"), 0o600)
		select {
		case got := <-changes:
			return got == "web"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatcher_PicksUpAppsDirectoryCreatedLater(t *testing.T) {
	root := t.TempDir()
	changes := startWatcher(t, root)

	dir := filepath.Join(root, "apps", "billing")
	require.NoError(t, os.Mkdir(filepath.Join(root, "apps"), 0o755))

	require.Eventually(t, func() bool {
		_ = os.MkdirAll(dir, 0o755)
		_ = os.WriteFile(filepath.Join(dir, ".env"), []byte("D=4\n"), 0o600)
		select {
		case got := <-changes:
			return got == "billing"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	changes := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0o600))

	select {
	case got := <-changes:
		t.Fatalf("unexpected change %q", got)
	case <-time.After(200 * time.Millisecond):
	}
	assert.Empty(t, changes)
}

func TestNewWatcher_MissingRoot(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"), "apps", func(string) {}, logger.Nop())
	assert.ErrorIs(t, err, ErrWatchEnvFile)
}

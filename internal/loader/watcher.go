package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

// Watcher reports changes of the root .env file and of every
// apps/{appID}/.env file. The callback receives the app id, or "" for the
// root file.
type Watcher struct {
	root     string
	appsPath string
	onChange func(appID string)

	watcher *fsnotify.Watcher
	logger  *logger.Logger
}

// NewWatcher starts watching root, the apps directory and every app
// directory below it. A missing apps directory is picked up once it is
// created; root must exist.
func NewWatcher(root, appsDir string, onChange func(appID string), logger *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchEnvFile, err)
	}

	w := &Watcher{
		root:     filepath.Clean(root),
		appsPath: filepath.Clean(filepath.Join(root, appsDir)),
		onChange: onChange,
		watcher:  fw,
		logger:   logger,
	}

	if err = fw.Add(w.root); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrWatchEnvFile, w.root, err)
	}
	if err = w.addAppsDir(); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return w, nil
}

// addAppsDir watches the apps directory before listing it, so app
// directories created in between are still seen.
func (w *Watcher) addAppsDir() error {
	if _, err := os.Stat(w.appsPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := w.watcher.Add(w.appsPath); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWatchEnvFile, w.appsPath, err)
	}
	entries, err := os.ReadDir(w.appsPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWatchEnvFile, w.appsPath, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(w.appsPath, e.Name())
		if err = w.watcher.Add(dir); err != nil {
			w.logger.Warn().Err(err).Str("dir", dir).Msg("app directory not watched")
		}
	}
	return nil
}

// Run dispatches file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	w.logger.Info().Str("root", w.root).Msg("env file watcher started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("env file watcher stopped")
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("env file watcher error")
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	name := filepath.Clean(ev.Name)
	dir := filepath.Dir(name)

	// apps directory created after startup
	if name == w.appsPath && ev.Has(fsnotify.Create) {
		if err := w.addAppsDir(); err != nil {
			w.logger.Warn().Err(err).Str("dir", name).Msg("apps directory not watched")
		}
		return
	}

	// new app directory
	if dir == w.appsPath && ev.Has(fsnotify.Create) {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			if err = w.watcher.Add(name); err != nil {
				w.logger.Warn().Err(err).Str("dir", name).Msg("app directory not watched")
			}
			return
		}
	}

	if filepath.Base(name) != EnvFileName {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}

	switch {
	case dir == w.root:
		w.logger.Info().Str("path", name).Msg("root env file changed")
		w.onChange("")
	case filepath.Dir(dir) == w.appsPath:
		appID := filepath.Base(dir)
		w.logger.Info().Str("path", name).Str("app_id", appID).Msg("app env file changed")
		w.onChange(appID)
	}
}

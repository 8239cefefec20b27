package provider

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/internal/validators"
)

// Registry is the set of known applications. It only grows.
type Registry struct {
	appsPath    string
	env         utils.Environment
	transformer *keytransform.Transformer
	apps        mapset.Set[string]

	logger *logger.Logger
}

func NewRegistry(root, appsDir string, env utils.Environment, transformer *keytransform.Transformer, logger *logger.Logger) *Registry {
	return &Registry{
		appsPath:    filepath.Join(root, appsDir),
		env:         env,
		transformer: transformer,
		apps:        mapset.NewSet[string](),
		logger:      logger,
	}
}

// Discovery is the outcome of one Discover run.
type Discovery struct {
	Filesystem  []string
	Environment []string
	Added       []string
}

// Discover scans the apps directory and the environment. Directories with a
// valid app id are authoritative; an app seen in a PREFIX_{APP}_ variable is
// only promoted when it matches a directory, so unrelated variables never
// invent apps.
func (r *Registry) Discover() (Discovery, error) {
	var d Discovery

	entries, err := os.ReadDir(r.appsPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return d, err
	}
	for _, e := range entries {
		if e.IsDir() && validators.IsValidAppID(e.Name()) {
			d.Filesystem = append(d.Filesystem, e.Name())
		}
	}

	fsApps := mapset.NewThreadUnsafeSet(d.Filesystem...)
	envApps := mapset.NewThreadUnsafeSet[string]()
	for name := range r.env.Environ() {
		class := r.transformer.ClassifyEnvKey(name, d.Filesystem)
		if class.Scoped && fsApps.Contains(class.AppID) {
			envApps.Add(class.AppID)
		}
	}
	d.Environment = sortedSlice(envApps)

	for _, a := range d.Filesystem {
		if r.apps.Add(a) {
			d.Added = append(d.Added, a)
		}
	}
	sort.Strings(d.Added)

	if len(d.Added) > 0 {
		r.logger.Info().Strs("apps", d.Added).Msg("applications discovered")
	}
	return d, nil
}

// Add registers appID when it is valid and reports whether it was new.
func (r *Registry) Add(appID string) bool {
	if !validators.IsValidAppID(appID) {
		return false
	}
	return r.apps.Add(appID)
}

// Known returns the known apps in lexical order.
func (r *Registry) Known() []string {
	return sortedSlice(r.apps)
}

// Contains reports whether appID is known.
func (r *Registry) Contains(appID string) bool {
	return r.apps.Contains(appID)
}

func sortedSlice(s mapset.Set[string]) []string {
	out := s.ToSlice()
	sort.Strings(out)
	return out
}

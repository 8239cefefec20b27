package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

// EnvFileName is the name of the dotenv files the loaders read.
const EnvFileName = ".env"

// readEnvFile parses path with godotenv. A missing file is an empty result.
func readEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w %s: %w", ErrReadEnvFile, path, err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadEnvFile, path, err)
	}
	return vars, nil
}

// RootEnvFileLoader reads {root}/.env. Variables scoped to another known app
// are left out so one app never sees another's values.
type RootEnvFileLoader struct {
	path        string
	transformer *keytransform.Transformer
	knownApps   KnownAppsFunc

	logger *logger.Logger
}

func NewRootEnvFileLoader(root string, transformer *keytransform.Transformer, knownApps KnownAppsFunc, logger *logger.Logger) *RootEnvFileLoader {
	return &RootEnvFileLoader{
		path:        filepath.Join(root, EnvFileName),
		transformer: transformer,
		knownApps:   knownApps,
		logger:      logger,
	}
}

func (l *RootEnvFileLoader) Type() models.SourceType { return models.SourceRootEnvFile }

func (l *RootEnvFileLoader) Priority() int { return models.PriorityRootEnvFile }

func (l *RootEnvFileLoader) Load(_ context.Context, appID string) (models.ConfigMap, error) {
	vars, err := readEnvFile(l.path)
	if err != nil {
		return nil, err
	}

	apps := withApp(l.knownApps, appID)
	data := make(models.ConfigMap, len(vars))
	for name, value := range vars {
		class := l.transformer.ClassifyEnvKey(name, apps)
		if class.Scoped && class.AppID != appID {
			continue
		}
		if key := l.transformer.EnvToService(name, appID); key != "" {
			data[key] = value
		}
	}

	l.logger.Debug().Str("path", l.path).Str("app_id", appID).Int("keys", len(data)).Msg("root env file loaded")
	return data, nil
}

// AppEnvFileLoader reads {root}/{appsDir}/{appID}/.env.
type AppEnvFileLoader struct {
	appsPath    string
	transformer *keytransform.Transformer

	logger *logger.Logger
}

func NewAppEnvFileLoader(root, appsDir string, transformer *keytransform.Transformer, logger *logger.Logger) *AppEnvFileLoader {
	return &AppEnvFileLoader{
		appsPath:    filepath.Join(root, appsDir),
		transformer: transformer,
		logger:      logger,
	}
}

func (l *AppEnvFileLoader) Type() models.SourceType { return models.SourceAppEnvFile }

func (l *AppEnvFileLoader) Priority() int { return models.PriorityAppEnvFile }

func (l *AppEnvFileLoader) Load(_ context.Context, appID string) (models.ConfigMap, error) {
	path := filepath.Join(l.appsPath, appID, EnvFileName)
	vars, err := readEnvFile(path)
	if err != nil {
		return nil, err
	}

	data := make(models.ConfigMap, len(vars))
	for name, value := range vars {
		if key := l.transformer.EnvToService(name, appID); key != "" {
			data[key] = value
		}
	}

	l.logger.Debug().Str("path", path).Str("app_id", appID).Int("keys", len(data)).Msg("app env file loaded")
	return data, nil
}

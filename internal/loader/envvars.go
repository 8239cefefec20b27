package loader

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/models"
)

// GenericEnvLoader reads PREFIX_{KEY} variables not scoped to any known app.
type GenericEnvLoader struct {
	env         utils.Environment
	transformer *keytransform.Transformer
	knownApps   KnownAppsFunc
}

func NewGenericEnvLoader(env utils.Environment, transformer *keytransform.Transformer, knownApps KnownAppsFunc) *GenericEnvLoader {
	return &GenericEnvLoader{env: env, transformer: transformer, knownApps: knownApps}
}

func (l *GenericEnvLoader) Type() models.SourceType { return models.SourceGenericEnv }

func (l *GenericEnvLoader) Priority() int { return models.PriorityGenericEnv }

func (l *GenericEnvLoader) Load(_ context.Context, appID string) (models.ConfigMap, error) {
	apps := withApp(l.knownApps, appID)
	data := models.ConfigMap{}
	for name, value := range l.env.Environ() {
		if !l.transformer.ClassifyEnvKey(name, apps).Generic {
			continue
		}
		if key := l.transformer.EnvToService(name, ""); key != "" {
			data[key] = value
		}
	}
	return data, nil
}

// AppEnvLoader reads PREFIX_{APP}_{KEY} variables of the requested app.
type AppEnvLoader struct {
	env         utils.Environment
	transformer *keytransform.Transformer
	knownApps   KnownAppsFunc
}

func NewAppEnvLoader(env utils.Environment, transformer *keytransform.Transformer, knownApps KnownAppsFunc) *AppEnvLoader {
	return &AppEnvLoader{env: env, transformer: transformer, knownApps: knownApps}
}

func (l *AppEnvLoader) Type() models.SourceType { return models.SourceAppEnv }

func (l *AppEnvLoader) Priority() int { return models.PriorityAppEnv }

func (l *AppEnvLoader) Load(_ context.Context, appID string) (models.ConfigMap, error) {
	apps := withApp(l.knownApps, appID)
	data := models.ConfigMap{}
	for name, value := range l.env.Environ() {
		class := l.transformer.ClassifyEnvKey(name, apps)
		if !class.Scoped || class.AppID != appID {
			continue
		}
		if key := l.transformer.EnvToService(name, appID); key != "" {
			data[key] = value
		}
	}
	return data, nil
}

// ProcessEnvLoader picks well-known unprefixed variables (DATABASE_URL,
// *_SECRET, ...) out of the process environment. Prefixed variables belong
// to the generic and app loaders and are ignored here.
type ProcessEnvLoader struct {
	env         utils.Environment
	transformer *keytransform.Transformer
	patterns    []*regexp.Regexp
}

func NewProcessEnvLoader(env utils.Environment, transformer *keytransform.Transformer, patterns []*regexp.Regexp) *ProcessEnvLoader {
	return &ProcessEnvLoader{env: env, transformer: transformer, patterns: patterns}
}

// CompilePatterns compiles the direct environment allow-list.
func CompilePatterns(exprs []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

func (l *ProcessEnvLoader) Type() models.SourceType { return models.SourceProcessEnv }

func (l *ProcessEnvLoader) Priority() int { return models.PriorityProcessEnv }

func (l *ProcessEnvLoader) Load(_ context.Context, _ string) (models.ConfigMap, error) {
	data := models.ConfigMap{}
	for name, value := range l.env.Environ() {
		if l.transformer.IsPrefixed(name) || !l.matches(name) {
			continue
		}
		if key := l.transformer.EnvToService(name, ""); key != "" {
			data[key] = value
		}
	}
	return data, nil
}

func (l *ProcessEnvLoader) matches(name string) bool {
	for _, re := range l.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

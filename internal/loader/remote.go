package loader

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-config-resolver/internal/adapter"
	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

// SecretResolver resolves secret-reference setting values.
type SecretResolver interface {
	Resolve(ctx context.Context, reference string) (string, error)
}

// RemoteLoader reads the settings of one app from the remote configuration
// service. Keys are stored remotely as "{appID}:{key}".
type RemoteLoader struct {
	client  adapter.RemoteConfigClient
	secrets SecretResolver
	label   string

	logger *logger.Logger
}

// NewRemoteLoader returns a loader over client. secrets may be nil, in which
// case secret references are skipped.
func NewRemoteLoader(client adapter.RemoteConfigClient, secrets SecretResolver, label string, logger *logger.Logger) *RemoteLoader {
	return &RemoteLoader{client: client, secrets: secrets, label: label, logger: logger}
}

func (l *RemoteLoader) Type() models.SourceType { return models.SourceRemote }

func (l *RemoteLoader) Priority() int { return models.PriorityRemote }

// Load implements [Loader]. A disabled client yields an empty mapping.
// Secret references that cannot be resolved are logged and skipped.
func (l *RemoteLoader) Load(ctx context.Context, appID string) (models.ConfigMap, error) {
	data := models.ConfigMap{}
	if !l.client.Enabled() {
		return data, nil
	}

	items, err := l.client.ListSettings(ctx, appID+":*", l.label)
	if err != nil {
		if errors.Is(err, adapter.ErrRemoteDisabled) {
			return data, nil
		}
		return nil, err
	}

	qualifier := appID + ":"
	for _, item := range items {
		key := item.Key
		if len(key) >= len(qualifier) && strings.EqualFold(key[:len(qualifier)], qualifier) {
			key = key[len(qualifier):]
		}
		key = keytransform.NormalizeKey(key)
		if key == "" {
			continue
		}

		value := item.Value
		if item.IsSecretReference() {
			if l.secrets == nil {
				l.logger.Warn().Str("app_id", appID).Str("key", item.Key).Msg("secret reference skipped, no secret resolver configured")
				continue
			}
			resolved, err := l.secrets.Resolve(ctx, item.Value)
			if err != nil {
				l.logger.Warn().Err(err).Str("app_id", appID).Str("key", item.Key).Msg("secret reference could not be resolved")
				continue
			}
			value = resolved
		}
		data[key] = value
	}

	return data, nil
}

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-config-resolver/internal/app"
	"github.com/MKhiriev/go-config-resolver/internal/config"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/models"
)

// VaultPlaceholder is replaced by the vault name in the vault URL template.
const VaultPlaceholder = "{vault}"

type httpSecretClient struct {
	client      *utils.HTTPClient
	urlTemplate string

	logger *logger.Logger
}

// NewHTTPSecretClient constructs the resty implementation of [SecretClient].
// The vault base URL is built from cfg.VaultURLTemplate; requests carry
// cfg.VaultToken, or cfg.APIKey when no vault token is set.
func NewHTTPSecretClient(cfg config.Remote, logger *logger.Logger) SecretClient {
	client := newRetryingClient(cfg)

	token := cfg.VaultToken
	if token == "" {
		token = cfg.APIKey
	}
	if token != "" {
		client.SetAuthToken(token)
	}

	return &httpSecretClient{client: client, urlTemplate: cfg.VaultURLTemplate, logger: logger}
}

func (h *httpSecretClient) vaultURL(vault string) (string, error) {
	if h.urlTemplate == "" {
		return "", ErrVaultNotConfigured
	}
	if vault == "" || strings.ContainsAny(vault, "/?#@") {
		return "", fmt.Errorf("%w: vault name %q", ErrInvalidSecretReference, vault)
	}
	return normalizeBaseURL(strings.ReplaceAll(h.urlTemplate, VaultPlaceholder, vault))
}

// GetSecret implements [SecretClient]. It issues
// GET {vaultURL}/secrets/{name} and returns the "value" field of the body.
func (h *httpSecretClient) GetSecret(ctx context.Context, vault, name string) (string, error) {
	base, err := h.vaultURL(vault)
	if err != nil {
		return "", app.RemoteClientError("get secret", err)
	}

	var secret models.SecretValue
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&secret).
		Get(base + "/secrets/" + url.PathEscape(name))
	if err != nil {
		return "", app.RemoteClientError("get secret", fmt.Errorf("get secret request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return "", app.RemoteClientError("get secret", err)
	}

	h.logger.Debug().Str("vault", vault).Str("secret", name).Msg("secret fetched")
	return secret.Value, nil
}

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

type httpRemoteConfigClient struct {
	client *utils.HTTPClient
	label  string

	logger *logger.Logger
}

// NewHTTPRemoteConfigClient constructs the resty implementation of
// [RemoteConfigClient]. An empty cfg.Endpoint yields a disabled client.
//
// Returns an error if cfg.Endpoint is set but cannot be parsed as a URL with
// scheme and host.
func NewHTTPRemoteConfigClient(cfg config.Remote, logger *logger.Logger) (RemoteConfigClient, error) {
	if !cfg.Enabled() {
		return disabledRemoteClient{}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid remote endpoint: %w", err)
	}

	client := newRetryingClient(cfg)
	client.SetBaseURL(baseURL)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &httpRemoteConfigClient{client: client, label: cfg.Label, logger: logger}, nil
}

func newRetryingClient(cfg config.Remote) *utils.HTTPClient {
	return utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:          cfg.Timeout,
		RetryCount:       cfg.RetryCount,
		RetryWaitTime:    cfg.RetryWaitTime,
		RetryMaxWaitTime: cfg.RetryMaxWaitTime,
	})
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteConfigClient) Enabled() bool {
	return true
}

// ListSettings implements [RemoteConfigClient]. It issues
// GET /kv?key={keyFilter}&label={label}; an empty label argument falls back
// to the client's configured label.
func (h *httpRemoteConfigClient) ListSettings(ctx context.Context, keyFilter, label string) ([]models.RemoteSetting, error) {
	if label == "" {
		label = h.label
	}

	var page models.RemoteSettingsPage
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("key", keyFilter).
		SetResult(&page)
	if label != "" {
		req.SetQueryParam("label", label)
	}

	resp, err := req.Get("/kv")
	if err != nil {
		return nil, app.RemoteClientError("list settings", fmt.Errorf("list settings request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, app.RemoteClientError("list settings", err)
	}

	h.logger.Debug().
		Str("key_filter", keyFilter).
		Str("label", label).
		Int("items", len(page.Items)).
		Msg("remote settings listed")
	return page.Items, nil
}

type disabledRemoteClient struct{}

func (disabledRemoteClient) Enabled() bool { return false }

func (disabledRemoteClient) ListSettings(context.Context, string, string) ([]models.RemoteSetting, error) {
	return nil, app.RemoteClientError("list settings", ErrRemoteDisabled)
}

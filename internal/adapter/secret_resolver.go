package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

// DefaultSecretTTL is used when NewSecretResolver gets a non-positive TTL.
const DefaultSecretTTL = 15 * time.Minute

// SecretResolver turns secret-reference settings into secret values. Values
// are cached per (vault, name) for the configured TTL; failures are not
// cached.
type SecretResolver struct {
	client SecretClient
	cache  *ttlcache.Cache[string, string]

	logger *logger.Logger
}

// NewSecretResolver starts the expiry loop of the secret cache. Close must be
// called to stop it.
func NewSecretResolver(client SecretClient, ttl time.Duration, logger *logger.Logger) *SecretResolver {
	if ttl <= 0 {
		ttl = DefaultSecretTTL
	}
	cache := ttlcache.New(
		ttlcache.WithTTL[string, string](ttl),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go cache.Start()

	return &SecretResolver{client: client, cache: cache, logger: logger}
}

// Close stops the cache background goroutine.
func (r *SecretResolver) Close() {
	r.cache.Stop()
}

// Resolve parses a secret reference ({"uri": "https://{vault}.../secrets/{name}"})
// and returns the secret value.
func (r *SecretResolver) Resolve(ctx context.Context, reference string) (string, error) {
	vault, name, err := ParseSecretReference(reference)
	if err != nil {
		return "", err
	}

	var loadErr error
	loader := ttlcache.LoaderFunc[string, string](
		func(cache *ttlcache.Cache[string, string], key string) *ttlcache.Item[string, string] {
			value, err := r.client.GetSecret(ctx, vault, name)
			if err != nil {
				loadErr = err
				return nil
			}
			return cache.Set(key, value, ttlcache.DefaultTTL)
		},
	)

	item := r.cache.Get(vault+"/"+name, ttlcache.WithLoader(loader))
	if item == nil {
		if loadErr == nil {
			loadErr = fmt.Errorf("secret %s/%s unavailable", vault, name)
		}
		return "", loadErr
	}
	return item.Value(), nil
}

// Len returns the number of cached secrets.
func (r *SecretResolver) Len() int {
	return r.cache.Len()
}

// ParseSecretReference extracts the vault name (first label of the host) and
// the secret name (the segment after "secrets/") from a reference value.
func ParseSecretReference(reference string) (vault, name string, err error) {
	var ref models.SecretReference
	if err = json.Unmarshal([]byte(reference), &ref); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidSecretReference, err)
	}

	u, err := url.Parse(strings.TrimSpace(ref.URI))
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidSecretReference, err)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("%w: uri %q has no host", ErrInvalidSecretReference, ref.URI)
	}
	vault, _, _ = strings.Cut(u.Hostname(), ".")

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] != "secrets" || segments[1] == "" {
		return "", "", fmt.Errorf("%w: uri %q has no secret name", ErrInvalidSecretReference, ref.URI)
	}
	return vault, segments[1], nil
}

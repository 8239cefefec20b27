package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures timeouts and the retry policy of an HTTPClient.
// Zero values leave the resty defaults in place.
type HTTPClientOptions struct {
	Timeout          time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
}

// NewHTTPClient creates a new HTTPClient.
//
// Retries use resty's exponential backoff with jitter between RetryWaitTime
// and RetryMaxWaitTime. A request is retried only on a transport error,
// 429 Too Many Requests or a 5xx response; 4xx responses are returned
// immediately.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{RetryCount: 3})
//	resp, err := client.R().Get("https://config.example.com/kv")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	c := resty.New()

	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.RetryCount > 0 {
		c.SetRetryCount(opts.RetryCount)
		if opts.RetryWaitTime > 0 {
			c.SetRetryWaitTime(opts.RetryWaitTime)
		}
		if opts.RetryMaxWaitTime > 0 {
			c.SetRetryMaxWaitTime(opts.RetryMaxWaitTime)
		}
		c.AddRetryCondition(ShouldRetry)
	}

	return &HTTPClient{Client: c}
}

// ShouldRetry reports whether a response warrants another attempt.
func ShouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-form-relay"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool.
//
// The client never retries: a failed call is reported once to the caller.
// A zero timeout leaves the resty default (no timeout) in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.telegram.org", 10*time.Second)
//	resp, err := client.R().SetBody(msg).Post("/bot<token>/sendMessage")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

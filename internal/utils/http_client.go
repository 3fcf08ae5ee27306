package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Default headers sent with every FakeYou API request. The header names keep
// the casing the API documentation uses; net/http canonicalises them anyway.
const (
	HeaderAccept        = "accept"
	HeaderContentType   = "content-Type"
	MIMEApplicationJSON = "application/json"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly. The
// embedded client owns the connection pool and the cookie jar, so one
// HTTPClient carries one API session.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient with a default-configured
// underlying resty.Client and the JSON accept/content-type headers set.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and cookie jar.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader(HeaderAccept, MIMEApplicationJSON).
		SetHeader(HeaderContentType, MIMEApplicationJSON)

	return &HTTPClient{Client: client}
}

// NormalizeBaseURL trims raw, defaults the scheme to https, validates that it
// has a host, and guarantees a trailing slash so that relative endpoint paths
// resolve under it.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/") + "/", nil
}

// Configure applies the base URL, timeout, and user agent to c and returns it.
func (c *HTTPClient) Configure(baseURL string, timeout time.Duration, userAgent string) *HTTPClient {
	c.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)
	if userAgent != "" {
		c.SetHeader("User-Agent", userAgent)
	}
	return c
}

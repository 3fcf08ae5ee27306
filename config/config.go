// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// DefaultBaseURL is the public FakeYou API origin.
	DefaultBaseURL = "https://api.fakeyou.com/"
	// DefaultRequestTimeout bounds a single HTTP exchange.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultPollInterval is the wait between two lip-sync job polls.
	DefaultPollInterval = 5 * time.Second
	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "go-fakeyou"
)

// Client is the configuration of a FakeYou API client.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name, relative to the FAKEYOU_ prefix.
type Client struct {
	// BaseURL is the API origin all endpoint paths are resolved against.
	// Env: FAKEYOU_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration of one HTTP request (e.g. "30s").
	// Env: FAKEYOU_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is the User-Agent header value.
	// Env: FAKEYOU_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Verbose enables debug logging of every request and response.
	// Env: FAKEYOU_VERBOSE
	Verbose bool `env:"VERBOSE"`

	// Poll holds the default bounds of the job poll loops.
	Poll Poll `envPrefix:"POLL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: FAKEYOU_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Poll bounds a poll loop.
type Poll struct {
	// Interval is the wait between two polls.
	// Env: FAKEYOU_POLL_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxAttempts caps the number of polls; zero means unbounded.
	// Env: FAKEYOU_POLL_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// Timeout caps the total time spent polling; zero means no cap beyond the
	// caller's context.
	// Env: FAKEYOU_POLL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RequireResult rejects completed jobs that carry no result URL.
	// Env: FAKEYOU_POLL_REQUIRE_RESULT
	RequireResult bool `env:"REQUIRE_RESULT"`
}

// Default returns the configuration used when no source overrides a field.
func Default() Client {
	return Client{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		UserAgent:      DefaultUserAgent,
		Poll: Poll{
			Interval: DefaultPollInterval,
		},
	}
}

// GetClientConfig loads, merges, and validates the client configuration from
// environment variables, the optional JSON file, and [Default].
func GetClientConfig() (*Client, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

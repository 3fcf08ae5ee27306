// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeyou

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/MKhiriev/go-fakeyou/config"
	"github.com/MKhiriev/go-fakeyou/internal/utils"
	"github.com/MKhiriev/go-fakeyou/logger"
	"github.com/go-resty/resty/v2"
)

// sessionCookie is the cookie FakeYou reads the signed session from.
const sessionCookie = "session"

type tokenGenerator interface {
	Generate() string
}

// Client is a FakeYou API session. It is not safe for concurrent use while
// Login or Logout may run; other calls only read its state.
type Client struct {
	client  *utils.HTTPClient
	baseURL string

	tokens tokenGenerator
	poll   PollOptions
	sleep  sleepFunc

	logger *logger.Logger
}

// New validates cfg and constructs a Client bound to cfg.BaseURL. A nil log
// is replaced with [logger.Nop]. When cfg.Verbose is set, request and
// response dumps are written to log at debug level.
func New(cfg config.Client, log *logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	baseURL, err := utils.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient().Configure(baseURL, cfg.RequestTimeout, cfg.UserAgent)
	if cfg.Verbose {
		client.SetLogger(logger.NewResty(log)).SetDebug(true)
	}

	log.Debug().Str("base_url", baseURL).Msg("session created")

	return &Client{
		client:  client,
		baseURL: baseURL,
		tokens:  utils.NewUUIDGenerator(),
		poll: PollOptions{
			Interval:      cfg.Poll.Interval,
			MaxAttempts:   cfg.Poll.MaxAttempts,
			Timeout:       cfg.Poll.Timeout,
			RequireResult: cfg.Poll.RequireResult,
		},
		sleep:  sleepContext,
		logger: log,
	}, nil
}

// BaseURL returns the normalised API origin, always ending in a slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PollOptions returns the default bounds used by [Client.W2LPoll] and
// [Client.WaitTTS].
func (c *Client) PollOptions() PollOptions {
	return c.poll
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

// get issues a GET against endpoint, validates the response with check, and
// decodes the body into out.
func (c *Client) get(ctx context.Context, endpoint string, out any, check responseCheck, f failures) error {
	resp, err := c.request(ctx).Get(endpoint)
	if err != nil {
		return fmt.Errorf("get %s request: %w", endpoint, err)
	}
	c.logResponse(endpoint, resp)

	if err = check(endpoint, resp, f); err != nil {
		return err
	}

	return decodeBody(endpoint, resp, out)
}

func (c *Client) logResponse(endpoint string, resp *resty.Response) {
	c.logger.Debug().
		Str("method", resp.Request.Method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("response received")
}

func decodeBody(endpoint string, resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{
			Kind:       KindRequest,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode(),
			Body:       responseText(resp),
			Msg:        fmt.Sprintf("decode response: %v", err),
		}
	}
	return nil
}

func (c *Client) setSession(value string) {
	c.client.SetCookie(&http.Cookie{Name: sessionCookie, Value: value})
}

// clearSession drops both the cookie attached by Login and any cookie the
// server set through the jar.
func (c *Client) clearSession() {
	c.client.Cookies = nil
	if jar, err := cookiejar.New(nil); err == nil {
		c.client.SetCookieJar(jar)
	}
}

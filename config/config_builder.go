package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects config sources in priority order. Merging fills
// only zero fields, so a source added earlier wins over later ones.
//
// Zero values cannot win a fill merge, so environment variables that are
// set to a zero value ("false", "0", "0s") are recorded as overrides and
// applied after merging.
type configBuilder struct {
	configs   []*Client
	overrides []func(*Client)
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Client, 0, 3),
	}
}

func (b *configBuilder) build() (*Client, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Client)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	for _, override := range b.overrides {
		override(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Client{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	b.overrides = append(b.overrides, explicitEnv(envCfg)...)
	return b
}

// explicitEnv returns setters for the fields of envCfg whose variable is
// set, even when the parsed value is zero. Empty variables count as unset.
func explicitEnv(envCfg *Client) []func(*Client) {
	fields := []struct {
		key   string
		apply func(*Client)
	}{
		{"VERBOSE", func(c *Client) { c.Verbose = envCfg.Verbose }},
		{"POLL_MAX_ATTEMPTS", func(c *Client) { c.Poll.MaxAttempts = envCfg.Poll.MaxAttempts }},
		{"POLL_TIMEOUT", func(c *Client) { c.Poll.Timeout = envCfg.Poll.Timeout }},
		{"POLL_REQUIRE_RESULT", func(c *Client) { c.Poll.RequireResult = envCfg.Poll.RequireResult }},
	}

	var overrides []func(*Client)
	for _, f := range fields {
		if os.Getenv(envPrefix+f.key) != "" {
			overrides = append(overrides, f.apply)
		}
	}
	return overrides
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	defaults := Default()
	b.configs = append(b.configs, &defaults)
	return b
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultPollInterval, cfg.Poll.Interval)
	assert.Zero(t, cfg.Poll.MaxAttempts)
	assert.False(t, cfg.Verbose)
}

func TestGetClientConfig_EnvWinsOverJSON(t *testing.T) {
	path := writeJSONConfig(t, `{
		"base_url": "https://json.example.com/",
		"user_agent": "json-agent",
		"poll": {"interval": "3s", "max_attempts": 4}
	}`)
	setEnvVars(t, map[string]string{
		"FAKEYOU_CONFIG":        path,
		"FAKEYOU_BASE_URL":      "https://env.example.com/",
		"FAKEYOU_POLL_INTERVAL": "1s",
	})

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/", cfg.BaseURL)
	assert.Equal(t, "json-agent", cfg.UserAgent)
	assert.Equal(t, time.Second, cfg.Poll.Interval)
	assert.Equal(t, 4, cfg.Poll.MaxAttempts)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestGetClientConfig_BadJSONPath(t *testing.T) {
	setEnvVars(t, map[string]string{
		"FAKEYOU_CONFIG": "/definitely/not/here.json",
	})

	_, err := GetClientConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestGetClientConfig_InvalidEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"FAKEYOU_POLL_MAX_ATTEMPTS": "many",
	})

	_, err := GetClientConfig()

	require.Error(t, err)
}

func TestGetClientConfig_InvalidResult(t *testing.T) {
	setEnvVars(t, map[string]string{
		"FAKEYOU_BASE_URL": "https://",
	})

	_, err := GetClientConfig()

	require.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_EnvZeroValuesOverrideJSON(t *testing.T) {
	path := writeJSONConfig(t, `{
		"verbose": true,
		"poll": {"max_attempts": 4, "timeout": "2m", "require_result": true}
	}`)
	setEnvVars(t, map[string]string{
		"FAKEYOU_CONFIG":              path,
		"FAKEYOU_VERBOSE":             "false",
		"FAKEYOU_POLL_MAX_ATTEMPTS":   "0",
		"FAKEYOU_POLL_TIMEOUT":        "0s",
		"FAKEYOU_POLL_REQUIRE_RESULT": "false",
	})

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
	assert.Zero(t, cfg.Poll.MaxAttempts)
	assert.Zero(t, cfg.Poll.Timeout)
	assert.False(t, cfg.Poll.RequireResult)
}

func TestGetClientConfig_UnsetEnvKeepsJSON(t *testing.T) {
	path := writeJSONConfig(t, `{
		"verbose": true,
		"poll": {"max_attempts": 4, "require_result": true}
	}`)
	setEnvVars(t, map[string]string{
		"FAKEYOU_CONFIG": path,
	})

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.Poll.MaxAttempts)
	assert.True(t, cfg.Poll.RequireResult)
}

func TestGetClientConfig_InvalidResultReturnsNoConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"FAKEYOU_POLL_MAX_ATTEMPTS": "-1",
	})

	cfg, err := GetClientConfig()

	require.ErrorIs(t, err, ErrInvalidPollConfigs)
	assert.Nil(t, cfg)
}

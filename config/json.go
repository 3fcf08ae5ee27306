package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonClientConfig struct {
	BaseURL        string   `json:"base_url"`
	RequestTimeout Duration `json:"request_timeout"`
	UserAgent      string   `json:"user_agent"`
	Verbose        bool     `json:"verbose"`
	Poll           struct {
		Interval      Duration `json:"interval"`
		MaxAttempts   int      `json:"max_attempts"`
		Timeout       Duration `json:"timeout"`
		RequireResult bool     `json:"require_result"`
	} `json:"poll"`
}

func parseJSON(jsonFilePath string) (*Client, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonClientConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &Client{
		BaseURL:        jsonCfg.BaseURL,
		RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		UserAgent:      jsonCfg.UserAgent,
		Verbose:        jsonCfg.Verbose,
		Poll: Poll{
			Interval:      time.Duration(jsonCfg.Poll.Interval),
			MaxAttempts:   jsonCfg.Poll.MaxAttempts,
			Timeout:       time.Duration(jsonCfg.Poll.Timeout),
			RequireResult: jsonCfg.Poll.RequireResult,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

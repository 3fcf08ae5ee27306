// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-fakeyou/internal/utils"
)

// Validate checks that cfg can be used to build a client. The base URL is
// checked after the same normalisation the client applies, so a bare host
// such as "api.fakeyou.com" is accepted.
//
// Returns a wrapped [ErrInvalidAdapterConfigs] or [ErrInvalidPollConfigs]
// describing the first offending field.
func (cfg *Client) Validate() error {
	if _, err := utils.NormalizeBaseURL(cfg.BaseURL); err != nil {
		return fmt.Errorf("%w: base url: %v", ErrInvalidAdapterConfigs, err)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Poll.Interval < 0 || cfg.Poll.MaxAttempts < 0 || cfg.Poll.Timeout < 0 {
		return ErrInvalidPollConfigs
	}

	return nil
}

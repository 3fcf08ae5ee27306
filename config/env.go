// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every env tag of [Client].
const envPrefix = "FAKEYOU_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg *Client) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

package config

import "errors"

// Validation errors returned by [Client.Validate].
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings (for
	// example, a relative base URL or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidPollConfigs indicates invalid poll loop bounds.
	ErrInvalidPollConfigs = errors.New("invalid poll configuration")
)

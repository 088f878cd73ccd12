// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors returned by [Load]. Callers are expected to treat every one of them
// as fatal: the process cannot start with a half-resolved configuration.
var (
	// ErrMissingAPIKey indicates docker mode is enabled but no API key was
	// resolved (or the key is the "empty" placeholder).
	ErrMissingAPIKey = errors.New("api key is required in docker mode")
	// ErrMalformedAuthEntry indicates an auth.json entry without a username
	// or a password.
	ErrMalformedAuthEntry = errors.New("auth entry must have username and password")
	// ErrMalformedJSON indicates config.json or auth.json could not be decoded.
	ErrMalformedJSON = errors.New("malformed json")
	// ErrInvalidLogLevel indicates log_level is not a known level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrEndpointUpdate indicates the endpoint rejected an API URL or proxy
	// override read from a sidecar file.
	ErrEndpointUpdate = errors.New("endpoint update failed")
)

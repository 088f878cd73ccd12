// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateDocker checks that a usable API key was resolved. Docker images
// ship with the "empty" placeholder, which counts as missing.
func (s *Settings) validateDocker() error {
	if s.APIKey == "" || s.APIKey == EmptyAPIKey {
		return ErrMissingAPIKey
	}

	return nil
}

// validateCredential requires both fields of an auth.json entry to be set.
func validateCredential(c Credential) error {
	return validate.Struct(c)
}

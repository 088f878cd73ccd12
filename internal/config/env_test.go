// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"dockerrun":   "yes",
		"my_api_key":  "sk-env",
		"USERNAME":    "admin",
		"PASSWORD":    "secret",
		"HTTP_PROXY":  "http://h:1",
		"HTTPS_PROXY": "http://h:2",
	})

	// Act
	cfg := &envConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, envConfig{
		DockerRun:  "yes",
		APIKey:     "sk-env",
		Username:   "admin",
		Password:   "secret",
		HTTPProxy:  "http://h:1",
		HTTPSProxy: "http://h:2",
	}, *cfg)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &envConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, envConfig{}, *cfg)
}

func TestParseEnv_DockerRunOtherValue(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"dockerrun": "true", "my_api_key": "sk"})

	s, err := Load(Options{Dir: t.TempDir()})

	require.NoError(t, err)
	assert.False(t, s.DockerMode, `only "yes" enables docker mode`)
}

func TestParseEnv_NonPointer(t *testing.T) {
	err := parseEnv(envConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestEnvConfig_LookupPresence(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"my_api_key": "",
		"USERNAME":   "admin",
	})

	cfg := &envConfig{}
	require.NoError(t, parseEnv(cfg))
	cfg.lookupPresence()

	assert.True(t, cfg.isSet(envMyAPIKey), "empty variable still counts as set")
	assert.True(t, cfg.isSet(envUsername))
	assert.False(t, cfg.isSet(envPassword))
	assert.False(t, cfg.isSet(EnvHTTPProxy))
	assert.Empty(t, cfg.APIKey)
}

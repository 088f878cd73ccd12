// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/chat-front/internal/logger"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want StartupConfig
	}{
		{name: "none", args: nil, want: StartupConfig{}},
		{name: "short", args: []string{"-d", "/srv/chat", "-c", "prod.json"}, want: StartupConfig{Dir: "/srv/chat", ConfigFile: "prod.json"}},
		{name: "long", args: []string{"-dir=/srv/chat", "-config=prod.json", "-check"}, want: StartupConfig{Dir: "/srv/chat", ConfigFile: "prod.json", Check: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	got, err := ParseFlags([]string{"-unknown"})

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestGetStartupConfig_FlagWinsOverEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"CHAT_DIR":    "/from/env",
		"CHAT_CONFIG": "env.json",
		"CHAT_CHECK":  "true",
	})

	// Act
	got, err := GetStartupConfig([]string{"-c", "flag.json"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/from/env", got.Dir)
	assert.Equal(t, "flag.json", got.ConfigFile)
	assert.True(t, got.Check)
}

func TestStartupConfig_Options(t *testing.T) {
	log := logger.Nop()
	c := &StartupConfig{Dir: "/srv", ConfigFile: "a.json"}

	opts := c.Options(nil, log)

	assert.Equal(t, "/srv", opts.Dir)
	assert.Equal(t, "a.json", opts.ConfigFile)
	assert.Nil(t, opts.Endpoint)
	assert.Same(t, log, opts.Logger)
}

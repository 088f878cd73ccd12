// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// loaderEnvKeys lists every variable Load, the scoped overrides or the
// startup config read or write.
var loaderEnvKeys = []string{
	"dockerrun",
	"my_api_key",
	"USERNAME",
	"PASSWORD",
	EnvHTTPProxy,
	EnvHTTPSProxy,
	EnvOpenAIAPIKey,
	"CHAT_DIR",
	"CHAT_CONFIG",
	"CHAT_CHECK",
}

// clearEnvVars unsets the given variables (all loader variables when none
// are given) and restores their previous state after the test. It also
// restores the global log level Load changes.
func clearEnvVars(t *testing.T, keys ...string) {
	t.Helper()
	if len(keys) == 0 {
		keys = loaderEnvKeys
	}

	for _, key := range keys {
		old, existed := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if existed {
				_ = os.Setenv(key, old)
				return
			}
			_ = os.Unsetenv(key)
		})
	}

	level := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(level) })
}

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for k, v := range envVars {
		t.Setenv(k, v)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Environment variables read by [Load].
const (
	envDockerRun = "dockerrun"
	envMyAPIKey  = "my_api_key"
	envUsername  = "USERNAME"
	envPassword  = "PASSWORD"
)

// envConfig holds the environment variables read by [Load]. A variable set
// to "" still counts as set and overrides the config file; see [envConfig.isSet].
type envConfig struct {
	// DockerRun enables docker mode when equal to "yes".
	DockerRun string `env:"dockerrun"`

	// APIKey overrides openai_api_key from config.json.
	APIKey string `env:"my_api_key"`

	// Username and Password add one credential pair in docker mode.
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// HTTPProxy and HTTPSProxy override http_proxy/https_proxy from
	// config.json. Both are blanked once read.
	HTTPProxy  string `env:"HTTP_PROXY"`
	HTTPSProxy string `env:"HTTPS_PROXY"`

	// present records which variables exist, empty or not. The env tags
	// above cannot tell "" from unset.
	present map[string]bool
}

// lookupPresence records the existence of every variable of the struct.
func (c *envConfig) lookupPresence() {
	c.present = make(map[string]bool)
	for _, key := range []string{envDockerRun, envMyAPIKey, envUsername, envPassword, EnvHTTPProxy, EnvHTTPSProxy} {
		_, c.present[key] = os.LookupEnv(key)
	}
}

func (c *envConfig) isSet(key string) bool {
	return c.present[key]
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Fields are mapped via their `env` tags.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/chat-front/internal/logger"
)

// StartupConfig tells the binary where the settings files live.
type StartupConfig struct {
	// Dir is the working directory for config.json and the sidecar files.
	// Env: CHAT_DIR
	Dir string `env:"CHAT_DIR"`

	// ConfigFile is the JSON config file, absolute or relative to Dir.
	// Env: CHAT_CONFIG
	ConfigFile string `env:"CHAT_CONFIG"`

	// Check makes the binary ping the API with the resolved key and proxy.
	// Env: CHAT_CHECK
	Check bool `env:"CHAT_CHECK"`
}

// ParseFlags parses the startup flags from args (without the program name).
//
// Flags:
//
//	-d/-dir    directory holding config.json and the sidecar files
//	-c/-config json config file path
//	-check     ping the chat API after loading
func ParseFlags(args []string) (*StartupConfig, error) {
	var dir, configPath string
	var check bool

	fs := flag.NewFlagSet("chatfront", flag.ContinueOnError)
	fs.StringVar(&dir, "d", "", "Settings directory")
	fs.StringVar(&dir, "dir", "", "Settings directory (alias)")
	fs.StringVar(&configPath, "c", "", "JSON config file path")
	fs.StringVar(&configPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&check, "check", false, "Ping the chat API after loading")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StartupConfig{Dir: dir, ConfigFile: configPath, Check: check}, nil
}

// GetStartupConfig merges flags and environment variables. A flag wins over
// the matching environment variable.
func GetStartupConfig(args []string) (*StartupConfig, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, err
	}

	envCfg := &StartupConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	// mergo without override only fills fields the flags left empty.
	if err := mergo.Merge(flags, envCfg); err != nil {
		return nil, errors.Join(errors.New("error merging startup configs"), err)
	}

	return flags, nil
}

// Options converts the startup config into loader options.
func (c *StartupConfig) Options(endpoint Endpoint, log *logger.Logger) Options {
	return Options{
		Dir:        c.Dir,
		ConfigFile: c.ConfigFile,
		Endpoint:   endpoint,
		Logger:     log,
	}
}

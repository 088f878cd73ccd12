// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// fileConfig mirrors the keys understood in config.json. Unknown keys are
// ignored so one file can be shared with other tools.
type fileConfig struct {
	DockerFlag   bool            `json:"dockerflag"`
	OpenAIAPIKey string          `json:"openai_api_key"`
	Users        json.RawMessage `json:"users"`
	LogLevel     string          `json:"log_level"`
	HTTPProxy    string          `json:"http_proxy"`
	HTTPSProxy   string          `json:"https_proxy"`
	AdvancePDF   map[string]any  `json:"advance_pdf"`
}

// parseJSON reads the config file at jsonFilePath into a settings layer.
// A missing file yields an empty layer.
func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("%w: error decoding %s: %w", ErrMalformedJSON, jsonFilePath, err)
	}

	cfg := &Settings{
		APIKey:     jsonCfg.OpenAIAPIKey,
		DockerMode: jsonCfg.DockerFlag,
		LogLevel:   jsonCfg.LogLevel,
		HTTPProxy:  jsonCfg.HTTPProxy,
		HTTPSProxy: jsonCfg.HTTPSProxy,
		AdvancePDF: jsonCfg.AdvancePDF,
	}

	// The presence of the users key enables auth, even for an empty list
	// or null.
	if jsonCfg.Users != nil {
		var users []Credential
		if err := json.Unmarshal(jsonCfg.Users, &users); err != nil {
			return nil, fmt.Errorf("%w: error decoding users in %s: %w", ErrMalformedJSON, jsonFilePath, err)
		}
		cfg.AuthEnabled = true
		cfg.AuthList = users
	}

	return cfg, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/chat-front/internal/adapter"
	"github.com/MKhiriev/chat-front/internal/config"
	"github.com/MKhiriev/chat-front/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const pingTimeout = 15 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("chatfront")
	startup, err := config.GetStartupConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting startup configs")
	}

	endpoint, err := adapter.NewChatEndpoint(config.BaseAPIURL, 0, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating chat endpoint")
	}

	settings, err := config.Load(startup.Options(endpoint, log))
	if err != nil {
		log.Fatal().Err(err).Msg("error loading settings")
	}

	log.Info().
		Bool("docker", settings.DockerMode).
		Bool("auth", settings.AuthEnabled).
		Int("users", len(settings.AuthList)).
		Str("log_level", settings.LogLevel).
		Str("api_url", endpoint.BaseURL()).
		Msg("settings loaded")

	if !startup.Check {
		return
	}

	if err = checkEndpoint(settings, endpoint); err != nil {
		log.Fatal().Err(err).Msg("chat api check failed")
	}
	log.Info().Msg("chat api reachable")
}

// checkEndpoint pings the API with the resolved key. Without a proxy.txt
// override the HTTPS proxy from config.json or the environment is used.
func checkEndpoint(settings *config.Settings, endpoint *adapter.ChatEndpoint) error {
	if settings.ProxyURL == "" {
		err := settings.RetrieveProxy("", func(_, httpsProxy string) error {
			if httpsProxy == "" {
				return nil
			}
			return endpoint.ChangeProxy(httpsProxy)
		})
		if err != nil {
			return fmt.Errorf("error applying proxy: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	return settings.WithAPIKey("", func(apiKey string) error {
		return endpoint.Ping(ctx, apiKey)
	})
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

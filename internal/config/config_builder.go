// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/joho/godotenv"

	"github.com/MKhiriev/chat-front/internal/logger"
)

// configBuilder applies the sources one by one. Each step produces a layer
// that is merged onto the settings resolved so far, so a step can depend on
// what earlier steps decided (docker mode, an empty API key). The first
// error stops every later step.
type configBuilder struct {
	opts     Options
	settings *Settings
	env      *envConfig
	layers   int
	err      error
}

func newConfigBuilder(opts Options) *configBuilder {
	return &configBuilder{
		opts:     opts,
		settings: defaultSettings(),
	}
}

func defaultSettings() *Settings {
	return &Settings{
		LogLevel:   DefaultLogLevel,
		APIBaseURL: BaseAPIURL,
		AdvancePDF: map[string]any{},
	}
}

func (b *configBuilder) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(b.opts.Dir, name)
}

// merge overlays layer onto the current settings: non-zero scalars win,
// bools are OR-ed, the auth list is appended to.
func (b *configBuilder) merge(layer *Settings) {
	if err := mergo.Merge(b.settings, layer, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error merging configs: %w", err))
		return
	}
	b.layers++
}

func (b *configBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during loading config: %w", b.err)
	}

	b.opts.Logger.Debug().
		Int("layers", b.layers).
		Bool("docker", b.settings.DockerMode).
		Bool("auth", b.settings.AuthEnabled).
		Int("users", len(b.settings.AuthList)).
		Str("api_url", b.settings.APIBaseURL).
		Msg("settings resolved")

	return b.settings, nil
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	path := b.path(DotEnvFile)
	if !fileExists(path) {
		return b
	}

	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(path); err != nil {
		b.opts.Logger.Warn().Err(err).Str("file", path).Msg("skipping unreadable .env file")
		return b
	}

	b.opts.Logger.Debug().Str("file", path).Msg("loaded .env file")
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	jsonCfg, err := parseJSON(b.path(b.opts.ConfigFile))
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.merge(jsonCfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	envCfg := &envConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	envCfg.lookupPresence()
	b.env = envCfg

	b.merge(&Settings{
		APIKey:     envCfg.APIKey,
		DockerMode: envCfg.DockerRun == DockerRunFlag,
	})

	// mergo skips empty values, so my_api_key="" is assigned directly.
	if envCfg.isSet(envMyAPIKey) {
		b.settings.APIKey = envCfg.APIKey
	}
	return b
}

func (b *configBuilder) withAuth() *configBuilder {
	if b.err != nil {
		return b
	}

	if b.settings.DockerMode {
		return b.withDockerAuth()
	}

	return b.withAPIKeyFile().withAuthFile()
}

func (b *configBuilder) withDockerAuth() *configBuilder {
	if err := b.settings.validateDocker(); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if b.env.isSet(envUsername) && b.env.isSet(envPassword) {
		b.merge(&Settings{
			AuthEnabled: true,
			AuthList:    []Credential{{Username: b.env.Username, Password: b.env.Password}},
		})
	}
	return b
}

func (b *configBuilder) withAPIKeyFile() *configBuilder {
	if b.err != nil || b.settings.APIKey != "" {
		return b
	}

	key, err := readAPIKeyFile(b.path(APIKeyFile))
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if key != "" {
		b.opts.Logger.Debug().Msg("api key read from " + APIKeyFile)
	}

	b.merge(&Settings{APIKey: key})
	return b
}

func (b *configBuilder) withAuthFile() *configBuilder {
	if b.err != nil {
		return b
	}

	creds, exists, err := parseAuthFile(b.path(AuthFile))
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if !exists {
		return b
	}

	b.opts.Logger.Debug().Int("users", len(creds)).Msg("auth list read from " + AuthFile)
	b.merge(&Settings{AuthEnabled: true, AuthList: creds})
	return b
}

func (b *configBuilder) withLogging() *configBuilder {
	if b.err != nil {
		return b
	}

	if err := logger.SetLevel(b.settings.LogLevel); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: %w", ErrInvalidLogLevel, err))
	}
	return b
}

// withProxyReset takes the proxies from the environment and then blanks the
// variables, so that HTTP clients created later do not pick them up unless
// [Settings.WithProxy] puts them back.
func (b *configBuilder) withProxyReset() *configBuilder {
	if b.err != nil {
		return b
	}

	if b.env.isSet(EnvHTTPProxy) {
		b.settings.HTTPProxy = b.env.HTTPProxy
	}
	if b.env.isSet(EnvHTTPSProxy) {
		b.settings.HTTPSProxy = b.env.HTTPSProxy
	}

	for _, key := range []string{EnvHTTPProxy, EnvHTTPSProxy} {
		if err := os.Setenv(key, ""); err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error resetting %s: %w", key, err))
		}
	}
	return b
}

func (b *configBuilder) withAPIURL() *configBuilder {
	if b.err != nil {
		return b
	}

	if b.settings.APIBaseURL == BaseAPIURL {
		url, err := readFirstNonEmptyLine(b.path(APIURLFile))
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.merge(&Settings{APIBaseURL: url})
	}

	if b.settings.APIBaseURL == BaseAPIURL || b.opts.Endpoint == nil {
		return b
	}

	if err := b.opts.Endpoint.ChangeAPIURL(b.settings.APIBaseURL); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: api url %q: %w", ErrEndpointUpdate, b.settings.APIBaseURL, err))
		return b
	}
	b.opts.Logger.Info().Str("api_url", b.settings.APIBaseURL).Msg("custom api url applied")
	return b
}

func (b *configBuilder) withProxyURL() *configBuilder {
	if b.err != nil {
		return b
	}

	if b.settings.ProxyURL == "" {
		url, err := readFirstNonEmptyLine(b.path(ProxyURLFile))
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.merge(&Settings{ProxyURL: url})
	}

	if b.settings.ProxyURL == "" || b.opts.Endpoint == nil {
		return b
	}

	if err := b.opts.Endpoint.ChangeProxy(b.settings.ProxyURL); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: proxy %q: %w", ErrEndpointUpdate, b.settings.ProxyURL, err))
		return b
	}
	b.opts.Logger.Info().Msg("custom proxy applied")
	return b
}

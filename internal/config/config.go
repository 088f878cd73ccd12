// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/chat-front/internal/logger"
)

// File names resolved relative to [Options.Dir].
const (
	DefaultConfigFile = "config.json"
	DotEnvFile        = ".env"
	APIKeyFile        = "api_key.txt"
	AuthFile          = "auth.json"
	APIURLFile        = "api_url.txt"
	ProxyURLFile      = "proxy.txt"
)

const (
	// BaseAPIURL is the upstream chat API used unless api_url.txt says otherwise.
	BaseAPIURL = "https://api.openai.com"
	// DefaultLogLevel is used when config.json has no log_level.
	DefaultLogLevel = "INFO"
	// EmptyAPIKey is the placeholder docker images ship with instead of a key.
	EmptyAPIKey = "empty"
	// DockerRunFlag is the value of the dockerrun variable that enables docker mode.
	DockerRunFlag = "yes"
)

// Environment variables touched by the scoped overrides and the proxy reset.
const (
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvHTTPProxy    = "HTTP_PROXY"
	EnvHTTPSProxy   = "HTTPS_PROXY"
)

// Credential is one username/password pair of the auth list.
type Credential struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UnmarshalJSON accepts both the pair form ["user", "pass"] used by the
// users key of config.json and the object form used by auth.json.
func (c *Credential) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("credential pair must have 2 elements, got %d", len(pair))
		}
		c.Username, c.Password = pair[0], pair[1]
		return nil
	}

	type plain Credential
	var obj plain
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*c = Credential(obj)
	return nil
}

// MarshalJSON writes the pair form so a config.json round-trips.
func (c Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.Username, c.Password})
}

// Settings is the resolved configuration snapshot. It is built once by
// [Load] and handed to consumers by pointer.
type Settings struct {
	// APIKey is the upstream API key.
	APIKey string

	// AuthEnabled reports whether the front end must ask for credentials.
	// It can be true with an empty AuthList (e.g. `"users": []`).
	AuthEnabled bool

	// AuthList holds the allowed credentials in source order: config.json
	// users first, then the docker USERNAME/PASSWORD pair or auth.json.
	AuthList []Credential

	// DockerMode is set by config.json dockerflag or dockerrun=yes.
	DockerMode bool

	// LogLevel is the configured level name, e.g. "INFO".
	LogLevel string

	// HTTPProxy and HTTPSProxy are the proxies applied by [Settings.WithProxy].
	HTTPProxy  string
	HTTPSProxy string

	// APIBaseURL is the upstream API base URL.
	APIBaseURL string

	// ProxyURL is the proxy override read from proxy.txt, if any.
	ProxyURL string

	// AdvancePDF is the advance_pdf object of config.json, passed through.
	AdvancePDF map[string]any
}

// Endpoint is the consumer of API URL and proxy overrides read from sidecar
// files. [Load] calls it only when an override is present.
//
//go:generate mockgen -source=config.go -destination=../mock/endpoint_mock.go -package=mock
type Endpoint interface {
	ChangeAPIURL(url string) error
	ChangeProxy(url string) error
}

// Options controls where [Load] looks for its files and whom it notifies.
type Options struct {
	// Dir is the directory relative file names resolve against. Default ".".
	Dir string
	// ConfigFile is the JSON config file name or path. Default config.json.
	ConfigFile string
	// Endpoint receives API URL and proxy overrides. May be nil.
	Endpoint Endpoint
	// Logger receives debug output about resolved sources. May be nil.
	Logger *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.ConfigFile == "" {
		o.ConfigFile = DefaultConfigFile
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}

// Load resolves the settings from all sources in priority order:
//  1. JSON config file
//  2. Environment variables (.env fills in unset ones)
//  3. Sidecar files, depending on docker mode
//
// Load also selects the global log level, clears HTTP_PROXY and HTTPS_PROXY,
// and forwards API URL and proxy overrides to opts.Endpoint.
//
// Every returned error is meant to stop the process.
func Load(opts Options) (*Settings, error) {
	return newConfigBuilder(opts.withDefaults()).
		withDotEnv().
		withJSON().
		withEnv().
		withAuth().
		withLogging().
		withProxyReset().
		withAPIURL().
		withProxyURL().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// The scoped overrides below change the process environment, which is
// shared by every goroutine. They must not run concurrently with each other
// or with anything else reading these variables.

// WithAPIKey exposes an API key to fn through OPENAI_API_KEY. An empty key
// selects s.APIKey. The previous value of the variable is restored when fn
// returns or panics; a previously unset variable is unset again.
func (s *Settings) WithAPIKey(key string, fn func(apiKey string) error) error {
	if key == "" {
		key = s.APIKey
	}

	restore := setEnvScoped(EnvOpenAIAPIKey, key)
	defer restore()

	return fn(key)
}

// WithProxy runs fn with a proxy pair.
//
// With a non-empty proxy it replaces both stored proxies with proxy and
// leaves the environment alone. With an empty proxy it exports the stored
// pair as HTTP_PROXY/HTTPS_PROXY for the duration of fn and restores the
// previous values afterwards.
func (s *Settings) WithProxy(proxy string, fn func(httpProxy, httpsProxy string) error) error {
	if proxy != "" {
		s.HTTPProxy = proxy
		s.HTTPSProxy = proxy
		return fn(s.HTTPProxy, s.HTTPSProxy)
	}

	restoreHTTP := setEnvScoped(EnvHTTPProxy, s.HTTPProxy)
	defer restoreHTTP()
	restoreHTTPS := setEnvScoped(EnvHTTPSProxy, s.HTTPSProxy)
	defer restoreHTTPS()

	return fn(s.HTTPProxy, s.HTTPSProxy)
}

// RetrieveProxy is [Settings.WithProxy] under the name the UI layer uses.
func (s *Settings) RetrieveProxy(proxy string, fn func(httpProxy, httpsProxy string) error) error {
	return s.WithProxy(proxy, fn)
}

// setEnvScoped sets key to value and returns a func putting the old state back.
func setEnvScoped(key, value string) func() {
	old, existed := os.LookupEnv(key)
	_ = os.Setenv(key, value)

	return func() {
		if existed {
			_ = os.Setenv(key, old)
			return
		}
		_ = os.Unsetenv(key)
	}
}

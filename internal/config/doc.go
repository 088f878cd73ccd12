// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the process-wide settings of the chat front end.
//
// Settings are assembled once at startup from the following sources, in
// priority order (later sources override earlier non-zero fields):
//  1. JSON config file (config.json)
//  2. Environment variables (optionally seeded from a .env file)
//  3. Sidecar files: api_key.txt, auth.json, api_url.txt, proxy.txt
//
// The main entry point is [Load]. The resulting [Settings] also provides the
// scoped environment overrides [Settings.WithAPIKey] and [Settings.WithProxy].
package config

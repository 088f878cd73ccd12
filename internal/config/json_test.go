// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "definitely-does-not-exist.json"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, cfg)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := writeFile(t, t.TempDir(), "bad.json", `{ this is not json }`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMalformedJSON)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestParseJSON_NoUsersKey(t *testing.T) {
	p := writeFile(t, t.TempDir(), DefaultConfigFile, `{"dockerflag": true}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.True(t, cfg.DockerMode)
	assert.False(t, cfg.AuthEnabled)
	assert.Nil(t, cfg.AuthList)
}

func TestParseJSON_UsersPresenceEnablesAuth(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []Credential
	}{
		{name: "null", json: `{"users": null}`},
		{name: "empty list", json: `{"users": []}`},
		{name: "one pair", json: `{"users": [["alice", "a-pass"]]}`, want: []Credential{{Username: "alice", Password: "a-pass"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), DefaultConfigFile, tt.json)

			cfg, err := parseJSON(p)

			require.NoError(t, err)
			assert.True(t, cfg.AuthEnabled)
			if tt.want == nil {
				assert.Empty(t, cfg.AuthList)
				return
			}
			assert.Equal(t, tt.want, cfg.AuthList)
		})
	}
}

func TestParseJSON_BadUserPair(t *testing.T) {
	p := writeFile(t, t.TempDir(), DefaultConfigFile, `{"users": [["only-name"]]}`)

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestCredential_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Credential
		wantErr bool
	}{
		{name: "pair", input: `["alice", "secret"]`, want: Credential{Username: "alice", Password: "secret"}},
		{name: "object", input: `{"username": "bob", "password": "pw"}`, want: Credential{Username: "bob", Password: "pw"}},
		{name: "object missing password", input: `{"username": "bob"}`, want: Credential{Username: "bob"}},
		{name: "three elements", input: `["a", "b", "c"]`, wantErr: true},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Credential
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredential_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Credential{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.JSONEq(t, `["alice", "secret"]`, string(b))
}

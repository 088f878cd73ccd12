// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readAPIKeyFile returns the key from an API key file: its first non-blank
// line, trimmed. A missing or empty file yields an empty string.
func readAPIKeyFile(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	if info.Size() == 0 {
		return "", nil
	}

	return readFirstNonEmptyLine(path)
}

// readFirstNonEmptyLine returns the first line of path that is not blank
// after trimming. A missing file yields an empty string.
func readFirstNonEmptyLine(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}

	return "", nil
}

// parseAuthFile reads auth.json: an object whose values are
// {"username": ..., "password": ...} entries. Entries are returned in file
// order. The second result reports whether the file exists.
//
// No credentials are returned unless every entry is valid.
func parseAuthFile(path string) ([]Credential, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, fmt.Errorf("error reading %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, true, fmt.Errorf("%w: error decoding %s: %w", ErrMalformedJSON, path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, true, fmt.Errorf("%w: %s must contain a json object", ErrMalformedJSON, path)
	}

	var creds []Credential
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, true, fmt.Errorf("%w: error decoding %s: %w", ErrMalformedJSON, path, err)
		}
		key, _ := keyTok.(string)

		var cred Credential
		if err := dec.Decode(&cred); err != nil {
			return nil, true, fmt.Errorf("%w: entry %q: %w", ErrMalformedAuthEntry, key, err)
		}
		if err := validateCredential(cred); err != nil {
			return nil, true, fmt.Errorf("%w: entry %q: %w", ErrMalformedAuthEntry, key, err)
		}
		creds = append(creds, cred)
	}

	if _, err := dec.Token(); err != nil {
		return nil, true, fmt.Errorf("%w: error decoding %s: %w", ErrMalformedJSON, path, err)
	}

	return creds, true, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the HTTP client the chat front end talks to the
// upstream chat API with.
//
// [ChatEndpoint] implements config.Endpoint: the config loader hands it the
// API base URL and proxy overrides read from sidecar files at startup.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/chat-front/internal/logger"
)

const (
	defaultTimeout = 30 * time.Second
	modelsPath     = "/v1/models"
)

// ChatEndpoint is a resty client whose base URL and proxy can be changed
// after construction. BaseURL and ProxyURL may be read while another
// goroutine changes them.
type ChatEndpoint struct {
	client *resty.Client
	logger *logger.Logger

	mu       sync.RWMutex
	baseURL  string
	proxyURL string
}

// NewChatEndpoint returns an endpoint pointed at baseURL. A zero timeout
// selects 30 seconds.
func NewChatEndpoint(baseURL string, timeout time.Duration, log *logger.Logger) (*ChatEndpoint, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &ChatEndpoint{client: client, logger: log, baseURL: normalized}, nil
}

// ChangeAPIURL points every later request at raw.
func (e *ChatEndpoint) ChangeAPIURL(raw string) error {
	normalized, err := normalizeBaseURL(raw)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.client.SetBaseURL(normalized)
	e.baseURL = normalized
	return nil
}

// ChangeProxy routes every later request through raw.
func (e *ChatEndpoint) ChangeProxy(raw string) error {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: proxy %q must include scheme and host", ErrInvalidURL, raw)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.client.SetProxy(u.String())
	e.proxyURL = u.String()
	return nil
}

// BaseURL returns the current API base URL.
func (e *ChatEndpoint) BaseURL() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.baseURL
}

// ProxyURL returns the current proxy, or "" when requests go direct.
func (e *ChatEndpoint) ProxyURL() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.proxyURL
}

// Ping checks that the API is reachable and accepts apiKey by listing models.
func (e *ChatEndpoint) Ping(ctx context.Context, apiKey string) error {
	e.mu.RLock()
	req := e.client.R()
	e.mu.RUnlock()

	resp, err := req.
		SetContext(ctx).
		SetAuthToken(apiKey).
		Get(modelsPath)
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	e.logger.Debug().Dur("took", resp.Time()).Str("api_url", e.BaseURL()).Msg("api reachable")
	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

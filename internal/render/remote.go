// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/adoc-render/internal/httputil"
	"github.com/pdiddy/adoc-render/pkg/types"
)

const defaultRemoteTimeout = 30 * time.Second

// remoteRequest is the JSON body POSTed to a conversion service.
type remoteRequest struct {
	Text       string              `json:"text"`
	Options    types.RenderOptions `json:"options"`
	Attributes map[string]string   `json:"attributes"`
}

// RemoteEngine renders by POSTing text to an HTTP conversion service that
// answers with the HTML fragment as the response body.
type RemoteEngine struct {
	client *http.Client
	cfg    types.RemoteConfig
}

// NewRemoteEngine returns an engine for the endpoint at cfg.URL.
func NewRemoteEngine(cfg types.RemoteConfig) (*RemoteEngine, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("remote engine requires a URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &RemoteEngine{
		client: &http.Client{Timeout: timeout},
		cfg:    cfg,
	}, nil
}

// Convert sends text and opts to the service and returns the response body.
// HTTP 429 is retried with backoff; any other non-200 status is an error.
func (e *RemoteEngine) Convert(text string, opts types.RenderOptions) (string, error) {
	payload, err := json.Marshal(remoteRequest{
		Text:       text,
		Options:    opts,
		Attributes: opts.AttributeMap(),
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, e.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/html")
	if e.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", e.cfg.UserAgent)
	}
	if e.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.Token)
	}

	resp, err := httputil.DoWithRetry(context.Background(), e.client, req, e.cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("conversion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading conversion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("conversion service returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return string(body), nil
}

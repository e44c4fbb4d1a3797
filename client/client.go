// Package client implements the wire client for the knowledge-base chat
// service.
//
// The service exposes a single endpoint: POST /chat with a JSON body of
// {"company_id": ..., "query": ...} answering {"reply": ...}. Anything
// other than a 2xx status with a decodable body is a failure; callers do
// not distinguish failure causes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kbchat/logger"
)

// chatRequest is the request shape for the /chat endpoint.
type chatRequest struct {
	CompanyID string `json:"company_id"`
	Query     string `json:"query"`
}

// chatResponse is the response shape for the /chat endpoint.
type chatResponse struct {
	Reply string `json:"reply"`
}

// Client is a focused client for the chat service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the service at baseURL ("/chat" is appended).
// The default http.Client carries no timeout: the call resolves whenever
// the platform resolves it.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the resolved /chat endpoint URL.
func (c *Client) URL() string {
	return c.baseURL + "/chat"
}

// Chat sends one query scoped to companyID and returns the reply text.
func (c *Client) Chat(ctx context.Context, companyID, query string) (string, error) {
	start := time.Now()

	body, err := json.Marshal(chatRequest{CompanyID: companyID, Query: query})
	if err != nil {
		return "", fmt.Errorf("chat: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("chat: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Info("chat request", "url", c.URL(), "queryChars", len(query))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("chat request send error", "err", err)
		return "", fmt.Errorf("chat: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body is not part of
		// the failure contract.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		logger.Error("chat unexpected status", "status", resp.StatusCode)
		return "", fmt.Errorf("chat: unexpected status %d", resp.StatusCode)
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Error("chat decode error", "err", err)
		return "", fmt.Errorf("chat: decode response: %w", err)
	}

	logger.Info("chat response",
		"replyChars", len(payload.Reply),
		"latencyMs", time.Since(start).Milliseconds(),
	)
	return payload.Reply, nil
}

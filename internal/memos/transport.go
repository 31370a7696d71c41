package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Transport performs authenticated JSON requests against a Memos server.
// It never retries; every failure is classified as ErrAuth or ErrConnection.
type Transport struct {
	baseURL     string
	accessToken string
	openID      string
	httpClient  *http.Client
}

// NewTransport creates a Transport. A nil httpClient gets a default with a 30s timeout
// that does not follow redirects, so a 3xx surfaces as ErrConnection.
func NewTransport(baseURL, accessToken, openID string, httpClient *http.Client) *Transport {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultRequestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	return &Transport{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		openID:      openID,
		httpClient:  httpClient,
	}
}

// BaseURL returns the server URL without trailing slashes.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Do sends method to path with the given query and JSON payload and decodes the
// response body into out. payload is ignored for GET requests; out may be nil.
func (t *Transport) Do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	if query == nil {
		query = url.Values{}
	}
	if t.openID != "" {
		query.Set("openId", t.openID)
	}

	reqURL := t.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	var body io.Reader
	if payload != nil && method != http.MethodGet {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return ConnectionFailure(fmt.Errorf("failed to build request: %w", err))
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.accessToken))
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return ConnectionFailure(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ConnectionFailure(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ClassifyStatus(resp.StatusCode, errorMessage(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ConnectionFailure(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// errorMessage pulls "message" out of a JSON error body, falling back to the raw text.
func errorMessage(raw []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(raw))
}

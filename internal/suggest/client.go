// Package suggest implements the client side of the suggestion provider:
// the HTTP call, response classification, the candidate ingestor, and the
// single in-flight request lifecycle.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const buildSetPath = "/api/build-set"

// Client talks to the suggestion provider backend.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type buildSetRequest struct {
	Prompt string `json:"prompt"`
}

type buildSetResponse struct {
	Items json.RawMessage `json:"items"`
	Error string          `json:"error"`
}

// BuildSet posts the prompt to the backend and returns the raw candidate
// list. Candidates are returned untyped; the ingestor is responsible for
// discarding non-strings. Cancelling ctx surfaces as a KindCancelled error,
// never as a generic network failure.
func (c *Client) BuildSet(ctx context.Context, prompt string) ([]any, error) {
	body, err := json.Marshal(buildSetRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+buildSetPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return nil, &Error{Kind: KindCancelled, Message: "Request cancelled", Err: err}
		}
		return nil, &Error{Kind: KindTransport, Message: "Could not reach the suggestion backend", Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return nil, &Error{Kind: KindCancelled, Message: "Request cancelled", Err: err}
		}
		return nil, &Error{Kind: KindTransport, Message: "Could not reach the suggestion backend", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindProvider, Message: errorMessage(payload, resp.StatusCode)}
	}

	var parsed buildSetResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, &Error{Kind: KindProvider, Message: "The backend response could not be parsed", Err: err}
	}

	// Missing or non-array items is treated as an empty list, not an error.
	var items []any
	if len(parsed.Items) > 0 {
		if err := json.Unmarshal(parsed.Items, &items); err != nil {
			items = nil
		}
	}
	return items, nil
}

// errorMessage prefers the backend's {"error": ...} body, falling back to a
// message naming the HTTP status.
func errorMessage(payload []byte, statusCode int) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &parsed); err == nil && strings.TrimSpace(parsed.Error) != "" {
		return parsed.Error
	}
	return fmt.Sprintf("The suggestion backend returned status %d", statusCode)
}

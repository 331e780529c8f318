package provider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	items []string
	err   error
}

func (s stubSource) Items(context.Context, string) ([]string, error) {
	return s.items, s.err
}

func newTestServer(t *testing.T, source Source) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	ts := httptest.NewServer(NewServer(source, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postBuildSet(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url+"/api/build-set", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestServerBuildSet(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, stubSource{items: []string{"Tent", "Headlamp"}})
	status, payload := postBuildSet(t, ts.URL, `{"prompt":"camping"}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"Tent", "Headlamp"}, payload["items"])
}

func TestServerRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, stubSource{items: []string{"unused"}})

	tests := []struct {
		name string
		body string
	}{
		{"missing prompt", `{}`},
		{"whitespace prompt", `{"prompt":"   "}`},
		{"malformed body", `not json`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, payload := postBuildSet(t, ts.URL, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "A prompt describing the set is required.", payload["error"])
		})
	}
}

func TestServerSourceError(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, stubSource{err: errors.New("The language model returned an empty response.")})
	status, payload := postBuildSet(t, ts.URL, `{"prompt":"camping"}`)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "The language model returned an empty response.", payload["error"])
}

func TestServerFallbackEndToEnd(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, fallbackSource{})
	status, payload := postBuildSet(t, ts.URL, `{"prompt":"ppe restock"}`)

	assert.Equal(t, http.StatusOK, status)
	items, ok := payload["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 6)
	assert.Equal(t, "N95 respirator", items[0])
}

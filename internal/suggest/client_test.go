package suggest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientBuildSet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/build-set", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "camping", req.Prompt)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":["Tent","Headlamp"],"extra":"ignored"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items, err := client.BuildSet(context.Background(), "camping")
	require.NoError(t, err)
	assert.Equal(t, []any{"Tent", "Headlamp"}, items)
}

func TestClientBuildSetMissingItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"missing items", `{}`},
		{"null items", `{"items":null}`},
		{"non-array items", `{"items":"tent"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			items, err := NewClient(server.URL).BuildSet(context.Background(), "camping")
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestClientBuildSetProviderError(t *testing.T) {
	t.Parallel()

	t.Run("error body is surfaced", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"model rejected the request"}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).BuildSet(context.Background(), "camping")
		serr := Classify(err)
		assert.Equal(t, KindProvider, serr.Kind)
		assert.Equal(t, "model rejected the request", serr.Message)
	})

	t.Run("unparseable body falls back to status", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).BuildSet(context.Background(), "camping")
		serr := Classify(err)
		assert.Equal(t, KindProvider, serr.Kind)
		assert.Contains(t, serr.Message, "502")
	})

	t.Run("malformed success body", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).BuildSet(context.Background(), "camping")
		assert.Equal(t, KindProvider, Classify(err).Kind)
	})
}

func TestClientBuildSetTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	_, err := NewClient(server.URL).BuildSet(context.Background(), "camping")
	serr := Classify(err)
	assert.Equal(t, KindTransport, serr.Kind)
	assert.Equal(t, "Could not reach the suggestion backend", serr.Message)
}

func TestClientBuildSetCancelled(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server watches the connection and cancels
		// r.Context() when the client disconnects; otherwise Close hangs.
		io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := NewClient(server.URL).BuildSet(ctx, "camping")
		errCh <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errCh:
		assert.Equal(t, KindCancelled, Classify(err).Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for cancelled request to return")
	}
}

package client_test

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaywire/relay-go/internal/client"
	relayhttp "github.com/relaywire/relay-go/internal/http"
	"github.com/relaywire/relay-go/pkg/relay"
)

func newExecutor(baseURL string) *client.Executor {
	return client.NewExecutor(relayhttp.NewClient(baseURL), "test-key")
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestExecutor_Execute(t *testing.T) {
	t.Parallel()
	t.Run("posts to section action path with key injected", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			assert.Equal(t, "/users/ping.json", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "test-key", body["key"])

			_, _ = writer.Write([]byte(`"PONG!"`))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		result, err := executor.Execute(context.Background(), "users", "ping", nil)
		require.NoError(t, err)
		assert.JSONEq(t, `"PONG!"`, string(result))
	})

	t.Run("executor key wins over caller-supplied key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "test-key", body["key"])
			assert.Equal(t, "value", body["other"])

			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		payload := map[string]interface{}{
			"key":   "attacker-key",
			"other": "value",
		}

		_, err := executor.Execute(context.Background(), "users", "info", payload)
		require.NoError(t, err)

		// The caller's map must come back untouched
		assert.Equal(t, "attacker-key", payload["key"])
		assert.Len(t, payload, 2)
	})

	t.Run("caller payload map is never mutated", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		payload := map[string]interface{}{"query": "example"}

		_, err := executor.Execute(context.Background(), "messages", "search", payload)
		require.NoError(t, err)

		assert.Equal(t, map[string]interface{}{"query": "example"}, payload)
	})

	t.Run("passes through arbitrary JSON shapes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			_, _ = writer.Write([]byte(`{"foo":"bar"}`))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		result, err := executor.Execute(context.Background(), "users", "info", nil)
		require.NoError(t, err)

		var decoded map[string]string

		require.NoError(t, json.Unmarshal(result, &decoded))
		assert.Equal(t, "bar", decoded["foo"])
	})

	t.Run("structured server error body is preserved", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			writer.WriteHeader(nethttp.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"message":"Invalid API key","code":-1,"status":"error","name":"Invalid_Key"}`))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		_, err := executor.Execute(context.Background(), "users", "ping", nil)
		require.Error(t, err)

		apiErr := &relay.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid API key", apiErr.Message)
		assert.Equal(t, -1, apiErr.Code)
		assert.Equal(t, "error", apiErr.Status)
		assert.Equal(t, "Invalid_Key", apiErr.Name)
		assert.True(t, relay.IsInvalidKey(err))
	})

	t.Run("unstructured server error is synthesized", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			writer.WriteHeader(nethttp.StatusBadGateway)
			_, _ = writer.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		_, err := executor.Execute(context.Background(), "users", "ping", nil)
		require.Error(t, err)

		apiErr := &relay.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, relay.ErrorStatusServer, apiErr.Status)
		assert.Equal(t, relay.ErrorNameServerException, apiErr.Name)
		assert.Equal(t, nethttp.StatusBadGateway, apiErr.Code)
		assert.NotEmpty(t, apiErr.Message)
		assert.True(t, relay.IsServerError(err))

		// The transport error stays reachable through the chain
		serverErr := &relayhttp.ServerStatusError{}
		assert.ErrorAs(t, err, &serverErr)
	})

	t.Run("partial error body degrades to synthesized error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			writer.WriteHeader(nethttp.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"message":"half an error"}`))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		_, err := executor.Execute(context.Background(), "users", "ping", nil)
		require.Error(t, err)

		apiErr := &relay.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, relay.ErrorNameServerException, apiErr.Name)
		assert.Equal(t, nethttp.StatusInternalServerError, apiErr.Code)
	})

	t.Run("client-level status errors propagate unmodified", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			writer.WriteHeader(nethttp.StatusNotFound)
			_, _ = writer.Write([]byte("not here"))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		_, err := executor.Execute(context.Background(), "users", "ping", nil)
		require.Error(t, err)

		statusErr := &relayhttp.StatusError{}
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, nethttp.StatusNotFound, statusErr.StatusCode)

		apiErr := &relay.APIError{}
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("connectivity failures propagate unmodified", func(t *testing.T) {
		t.Parallel()

		// A closed server guarantees a connection error
		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {}))
		server.Close()

		executor := newExecutor(server.URL)

		_, err := executor.Execute(context.Background(), "users", "ping", nil)
		require.Error(t, err)

		apiErr := &relay.APIError{}
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("rejects a non-JSON success body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			_, _ = writer.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		executor := newExecutor(server.URL)

		_, err := executor.Execute(context.Background(), "users", "ping", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid JSON")
	})
}

func TestExecutor_SetBaseURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		_, _ = writer.Write([]byte(`"PONG!"`))
	}))
	defer server.Close()

	executor := newExecutor("https://api.invalid")
	executor.SetBaseURL(server.URL)

	_, err := executor.Execute(context.Background(), "users", "ping", nil)
	require.NoError(t, err)
}

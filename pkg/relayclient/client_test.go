package relayclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaywire/relay-go/pkg/relay"
	"github.com/relaywire/relay-go/pkg/relayclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := relayclient.New(nil)
		require.ErrorIs(t, err, relay.ErrConfigRequired)
	})

	t.Run("requires an API key", func(t *testing.T) {
		t.Parallel()

		_, err := relayclient.New(&relay.Config{})
		require.ErrorIs(t, err, relay.ErrAPIKeyRequired)

		_, err = relayclient.NewWithKey("")
		require.ErrorIs(t, err, relay.ErrAPIKeyRequired)
	})

	t.Run("builds a working client", func(t *testing.T) {
		t.Parallel()

		client, err := relayclient.NewWithKey("test-key")
		require.NoError(t, err)
		assert.NotNil(t, client.Messages())
		assert.NotNil(t, client.Users())
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/ping.json", request.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "test-key", body["key"])

		_, _ = writer.Write([]byte(`"PONG!"`))
	}))
	defer server.Close()

	client, err := relayclient.NewWithEndpoint("test-key", server.URL+"/")
	require.NoError(t, err)

	require.NoError(t, client.Users().Ping(context.Background()))
}

func TestEndpointNormalization(t *testing.T) {
	t.Parallel()

	// A bare host must not produce a scheme-less request URL
	client, err := relayclient.NewWithEndpoint("test-key", "api.example.com/")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

package client_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaywire/relay-go/internal/client"
	"github.com/relaywire/relay-go/pkg/relay"
)

func TestRejectsClient_Add(t *testing.T) {
	t.Parallel()
	t.Run("requires an email", func(t *testing.T) {
		t.Parallel()

		apiClient := client.NewTestClient("https://api.invalid")

		_, err := apiClient.Rejects().Add(context.Background(), "", "", "")
		require.ErrorIs(t, err, relay.ErrEmailRequired)
	})

	t.Run("posts the entry with optional fields", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			assert.Equal(t, "/rejects/add.json", request.URL.Path)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "spam@example.com", body["email"])
			assert.Equal(t, "manual block", body["comment"])
			assert.NotContains(t, body, "subaccount")

			_, _ = writer.Write([]byte(`{"email":"spam@example.com","added":true}`))
		}))
		defer server.Close()

		apiClient := client.NewTestClient(server.URL)

		result, err := apiClient.Rejects().Add(context.Background(), "spam@example.com", "manual block", "")
		require.NoError(t, err)
		assert.True(t, result.Added)
	})
}

func TestRejectsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		assert.Equal(t, "/rejects/list.json", request.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, true, body["include_expired"])

		_, _ = writer.Write([]byte(`[
			{"email":"spam@example.com","reason":"hard-bounce","expired":false},
			{"email":"old@example.com","reason":"spam","expired":true}
		]`))
	}))
	defer server.Close()

	apiClient := client.NewTestClient(server.URL)

	rejects, err := apiClient.Rejects().List(context.Background(), &relay.RejectListParams{IncludeExpired: true})
	require.NoError(t, err)
	require.Len(t, rejects, 2)
	assert.Equal(t, "hard-bounce", rejects[0].Reason)
	assert.True(t, rejects[1].Expired)
}

func TestRejectsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		assert.Equal(t, "/rejects/delete.json", request.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "spam@example.com", body["email"])
		assert.Equal(t, "sub-1", body["subaccount"])

		_, _ = writer.Write([]byte(`{"email":"spam@example.com","deleted":true,"subaccount":"sub-1"}`))
	}))
	defer server.Close()

	apiClient := client.NewTestClient(server.URL)

	result, err := apiClient.Rejects().Delete(context.Background(), "spam@example.com", "sub-1")
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, "sub-1", result.Subaccount)
}

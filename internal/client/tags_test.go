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
)

func TestTagsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		assert.Equal(t, "/tags/list.json", request.URL.Path)
		_, _ = writer.Write([]byte(`[
			{"tag":"welcome","reputation":80,"sent":500,"opens":200,"clicks":50},
			{"tag":"digest","reputation":95,"sent":10000,"opens":4000,"clicks":900}
		]`))
	}))
	defer server.Close()

	apiClient := client.NewTestClient(server.URL)

	tags, err := apiClient.Tags().List(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "welcome", tags[0].Tag)
	assert.Equal(t, 500, tags[0].Sent)
	assert.Equal(t, 95, tags[1].Reputation)
}

func TestTagsClient_Info(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		assert.Equal(t, "/tags/info.json", request.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "welcome", body["tag"])

		_, _ = writer.Write([]byte(`{"tag":"welcome","sent":500,"hard_bounces":3,"stats":{"sent":12}}`))
	}))
	defer server.Close()

	apiClient := client.NewTestClient(server.URL)

	info, err := apiClient.Tags().Info(context.Background(), "welcome")
	require.NoError(t, err)
	assert.Equal(t, 500, info.Sent)
	assert.Equal(t, 3, info.HardBounces)
	require.NotNil(t, info.Stats)
	assert.Equal(t, 12, info.Stats.Sent)
}

func TestTagsClient_TimeSeries(t *testing.T) {
	t.Parallel()
	t.Run("one tag", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			assert.Equal(t, "/tags/time-series.json", request.URL.Path)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "welcome", body["tag"])

			_, _ = writer.Write([]byte(`[{"time":"2026-08-30 12:00:00","sent":20,"opens":5}]`))
		}))
		defer server.Close()

		apiClient := client.NewTestClient(server.URL)

		points, err := apiClient.Tags().TimeSeries(context.Background(), "welcome")
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, 20, points[0].Sent)
	})

	t.Run("all tags", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			assert.Equal(t, "/tags/all-time-series.json", request.URL.Path)
			_, _ = writer.Write([]byte(`[{"time":"2026-08-30 12:00:00","sent":120}]`))
		}))
		defer server.Close()

		apiClient := client.NewTestClient(server.URL)

		points, err := apiClient.Tags().AllTimeSeries(context.Background())
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, 120, points[0].Sent)
	})
}

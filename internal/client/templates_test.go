package client_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaywire/relay-go/internal/client"
	relayhttp "github.com/relaywire/relay-go/internal/http"
	"github.com/relaywire/relay-go/pkg/relay"
)

func TestTemplatesClient_AddAndInfo(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)

		switch request.URL.Path {
		case "/templates/add.json":
			assert.Equal(t, "welcome", body["name"])
			assert.Equal(t, "<h1>Hi</h1>", body["code"])
			_, _ = writer.Write([]byte(`{"slug":"welcome","name":"welcome","code":"<h1>Hi</h1>","created_at":"2026-01-01 00:00:00"}`))
		case "/templates/info.json":
			assert.Equal(t, "welcome", body["name"])
			_, _ = writer.Write([]byte(`{"slug":"welcome","name":"welcome","publish_name":"welcome","published_at":"2026-01-02 00:00:00"}`))
		default:
			writer.WriteHeader(nethttp.StatusNotFound)
		}
	}))
	defer server.Close()

	apiClient := client.NewTestClient(server.URL)
	ctx := context.Background()

	created, err := apiClient.Templates().Add(ctx, &relay.TemplateRequest{
		Name: "welcome",
		Code: "<h1>Hi</h1>",
	})
	require.NoError(t, err)
	assert.Equal(t, "welcome", created.Slug)

	info, err := apiClient.Templates().Info(ctx, "welcome")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02 00:00:00", info.PublishedAt)
}

func TestTemplatesClient_InfoRequiresName(t *testing.T) {
	t.Parallel()

	apiClient := client.NewTestClient("https://api.invalid")

	_, err := apiClient.Templates().Info(context.Background(), "")
	require.ErrorIs(t, err, relay.ErrTemplateNameNeeded)
}

func TestTemplatesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		assert.Equal(t, "/templates/list.json", request.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "onboarding", body["label"])

		_, _ = writer.Write([]byte(`[{"slug":"welcome","name":"welcome"},{"slug":"followup","name":"followup"}]`))
	}))
	defer server.Close()

	apiClient := client.NewTestClient(server.URL)

	templates, err := apiClient.Templates().List(context.Background(), "onboarding")
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "followup", templates[1].Slug)
}

func TestTemplatesClient_Render(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
		assert.Equal(t, "/templates/render.json", request.URL.Path)

		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "welcome", body["template_name"])

		_, _ = writer.Write([]byte(`{"html":"<h1>Hello Pat</h1>"}`))
	}))
	defer server.Close()

	apiClient := client.NewTestClient(server.URL)

	html, err := apiClient.Templates().Render(context.Background(), "welcome", nil,
		[]relay.Var{{Name: "name", Content: "Pat"}})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello Pat</h1>", html)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTemplatesClient_Caching(t *testing.T) {
	t.Parallel()
	t.Run("info is served from cache on repeat lookups", func(t *testing.T) {
		t.Parallel()

		var infoCalls atomic.Int64

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			if request.URL.Path == "/templates/info.json" {
				infoCalls.Add(1)
			}

			_, _ = writer.Write([]byte(`{"slug":"welcome","name":"welcome"}`))
		}))
		defer server.Close()

		exec := client.NewExecutor(relayhttp.NewClient(server.URL), "test-key")
		templates := client.NewTemplatesClientWithCache(exec, relay.NewMemoryCache(10), 0)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			_, err := templates.Info(ctx, "welcome")
			require.NoError(t, err)
		}

		assert.Equal(t, int64(1), infoCalls.Load())
	})

	t.Run("mutations invalidate cached info and list", func(t *testing.T) {
		t.Parallel()

		var (
			infoCalls atomic.Int64
			listCalls atomic.Int64
		)

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			switch request.URL.Path {
			case "/templates/info.json":
				infoCalls.Add(1)

				_, _ = writer.Write([]byte(`{"slug":"welcome","name":"welcome"}`))
			case "/templates/list.json":
				listCalls.Add(1)

				_, _ = writer.Write([]byte(`[{"slug":"welcome","name":"welcome"}]`))
			default:
				_, _ = writer.Write([]byte(`{"slug":"welcome","name":"welcome"}`))
			}
		}))
		defer server.Close()

		exec := client.NewExecutor(relayhttp.NewClient(server.URL), "test-key")
		templates := client.NewTemplatesClientWithCache(exec, relay.NewMemoryCache(10), 0)
		ctx := context.Background()

		_, err := templates.Info(ctx, "welcome")
		require.NoError(t, err)

		_, err = templates.List(ctx, "")
		require.NoError(t, err)

		// Publishing must force the next reads back to the API
		_, err = templates.Publish(ctx, "welcome")
		require.NoError(t, err)

		_, err = templates.Info(ctx, "welcome")
		require.NoError(t, err)

		_, err = templates.List(ctx, "")
		require.NoError(t, err)

		assert.Equal(t, int64(2), infoCalls.Load())
		assert.Equal(t, int64(2), listCalls.Load())
	})

	t.Run("filtered listings bypass the cache", func(t *testing.T) {
		t.Parallel()

		var listCalls atomic.Int64

		server := httptest.NewServer(nethttp.HandlerFunc(func(writer nethttp.ResponseWriter, request *nethttp.Request) {
			listCalls.Add(1)

			_, _ = writer.Write([]byte(`[]`))
		}))
		defer server.Close()

		exec := client.NewExecutor(relayhttp.NewClient(server.URL), "test-key")
		templates := client.NewTemplatesClientWithCache(exec, relay.NewMemoryCache(10), 0)
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			_, err := templates.List(ctx, "onboarding")
			require.NoError(t, err)
		}

		assert.Equal(t, int64(2), listCalls.Load())
	})
}

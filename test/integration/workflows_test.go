//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaywire/relay-go/pkg/relay"
)

// TestAccountWorkflow validates connectivity and account-level reads.
func TestAccountWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	require.NoError(t, client.Users().Ping(ctx))

	info, err := client.Users().Info(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, info.Username)

	_, err = client.Users().Senders(ctx)
	require.NoError(t, err)
}

// TestTemplateWorkflow_CompleteLifecycle creates, renders, publishes and
// deletes a disposable template.
func TestTemplateWorkflow_CompleteLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	name := GenerateTestName("integration-template")

	defer func() {
		_, _ = client.Templates().Delete(ctx, name)
	}()

	// 1. Create
	created, err := client.Templates().Add(ctx, &relay.TemplateRequest{
		Name:    name,
		Code:    "<h1>Integration</h1>",
		Subject: "Integration test",
		Labels:  []string{"integration"},
	})
	require.NoError(t, err)
	assert.Equal(t, name, created.Name)

	// 2. Read back
	info, err := client.Templates().Info(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, created.Slug, info.Slug)

	// 3. Render
	html, err := client.Templates().Render(ctx, name, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, html, "Integration")

	// 4. Publish
	published, err := client.Templates().Publish(ctx, name)
	require.NoError(t, err)
	assert.NotEmpty(t, published.PublishedAt)

	// 5. Delete
	deleted, err := client.Templates().Delete(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, name, deleted.Name)

	// 6. Reads after delete must fail with Unknown_Template
	_, err = client.Templates().Info(ctx, name)
	require.Error(t, err)
	assert.True(t, relay.IsUnknownTemplate(err))
}

// TestRejectsWorkflow adds and removes a denylist entry.
func TestRejectsWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	email := GenerateTestName("integration") + "@example.com"

	added, err := client.Rejects().Add(ctx, email, "integration test entry", "")
	require.NoError(t, err)
	assert.True(t, added.Added)

	rejects, err := client.Rejects().List(ctx, &relay.RejectListParams{Email: email})
	require.NoError(t, err)
	require.NotEmpty(t, rejects)
	assert.Equal(t, email, rejects[0].Email)

	deleted, err := client.Rejects().Delete(ctx, email, "")
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
}

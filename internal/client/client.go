package client

import (
	"fmt"

	"github.com/relaywire/relay-go/internal/constants"
	"github.com/relaywire/relay-go/internal/http"
	"github.com/relaywire/relay-go/pkg/relay"
)

// Client implements the relay.Client interface.
type Client struct {
	httpClient *http.Client
	executor   *Executor
	logger     relay.Logger

	// Section clients
	messages    relay.MessagesClient
	users       relay.UsersClient
	templates   relay.TemplatesClient
	tags        relay.TagsClient
	senders     relay.SendersClient
	rejects     relay.RejectsClient
	whitelists  relay.WhitelistsClient
	webhooks    relay.WebhooksClient
	subaccounts relay.SubaccountsClient
	exports     relay.ExportsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *relay.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Relay API client.
func New(config *relay.Config) (*Client, error) {
	if config == nil {
		return nil, relay.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, relay.ErrAPIKeyRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = relay.DefaultEndpoint
	}

	httpClient := http.NewClient(endpoint, createHTTPClientOptions(config)...)
	executor := NewExecutor(httpClient, config.APIKey)

	client := &Client{
		httpClient: httpClient,
		executor:   executor,
		logger:     config.Logger,
	}

	var cache relay.Cache

	if config.Cache != nil {
		var err error

		cache, err = relay.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating response cache: %w", err)
		}
	}

	client.initializeSectionClients(cache)

	return client, nil
}

// SetEndpoint repoints the client at a different API root. Configuration
// only; not safe to call concurrently with in-flight requests.
func (c *Client) SetEndpoint(endpoint string) {
	c.executor.SetBaseURL(endpoint)
}

// Endpoint returns the API root currently in use.
func (c *Client) Endpoint() string {
	return c.httpClient.BaseURL()
}

// Messages implements relay.Client.Messages.
func (c *Client) Messages() relay.MessagesClient {
	return c.messages
}

// Users implements relay.Client.Users.
func (c *Client) Users() relay.UsersClient {
	return c.users
}

// Templates implements relay.Client.Templates.
func (c *Client) Templates() relay.TemplatesClient {
	return c.templates
}

// Tags implements relay.Client.Tags.
func (c *Client) Tags() relay.TagsClient {
	return c.tags
}

// Senders implements relay.Client.Senders.
func (c *Client) Senders() relay.SendersClient {
	return c.senders
}

// Rejects implements relay.Client.Rejects.
func (c *Client) Rejects() relay.RejectsClient {
	return c.rejects
}

// Whitelists implements relay.Client.Whitelists.
func (c *Client) Whitelists() relay.WhitelistsClient {
	return c.whitelists
}

// Webhooks implements relay.Client.Webhooks.
func (c *Client) Webhooks() relay.WebhooksClient {
	return c.webhooks
}

// Subaccounts implements relay.Client.Subaccounts.
func (c *Client) Subaccounts() relay.SubaccountsClient {
	return c.subaccounts
}

// Exports implements relay.Client.Exports.
func (c *Client) Exports() relay.ExportsClient {
	return c.exports
}

// initializeSectionClients initializes all section-specific clients.
func (c *Client) initializeSectionClients(cache relay.Cache) {
	c.messages = NewMessagesClient(c.executor)
	c.users = NewUsersClient(c.executor)
	c.tags = NewTagsClient(c.executor)
	c.senders = NewSendersClient(c.executor)
	c.rejects = NewRejectsClient(c.executor)
	c.whitelists = NewWhitelistsClient(c.executor)
	c.webhooks = NewWebhooksClient(c.executor)
	c.subaccounts = NewSubaccountsClient(c.executor)
	c.exports = NewExportsClient(c.executor)

	if cache != nil {
		c.templates = NewTemplatesClientWithCache(c.executor, cache, constants.TemplatesCacheTTL)
	} else {
		c.templates = NewTemplatesClient(c.executor)
	}
}

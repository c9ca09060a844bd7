package relay

import (
	"context"
	"time"
)

// DefaultEndpoint is the compiled-in API root used when Config.Endpoint is
// empty.
const DefaultEndpoint = "https://api.relaywire.com/v1"

// MessagesClient sends and inspects transactional messages.
type MessagesClient interface {
	Send(ctx context.Context, message *Message) ([]SendResult, error)
	SendTemplate(ctx context.Context, templateName string, templateContent []TemplateVar, message *Message) ([]SendResult, error)
	Search(ctx context.Context, params *MessageSearchParams) ([]MessageInfo, error)
	Info(ctx context.Context, id string) (*MessageInfo, error)
	Content(ctx context.Context, id string) (*MessageContent, error)
	Parse(ctx context.Context, rawMessage string) (*MessageContent, error)
}

// UsersClient exposes account-level operations.
type UsersClient interface {
	Ping(ctx context.Context) error
	Info(ctx context.Context) (*UserInfo, error)
	Senders(ctx context.Context) ([]SenderInfo, error)
}

// TemplatesClient manages stored templates.
type TemplatesClient interface {
	Add(ctx context.Context, request *TemplateRequest) (*Template, error)
	Info(ctx context.Context, name string) (*Template, error)
	Update(ctx context.Context, request *TemplateRequest) (*Template, error)
	Publish(ctx context.Context, name string) (*Template, error)
	Delete(ctx context.Context, name string) (*Template, error)
	List(ctx context.Context, label string) ([]Template, error)
	Render(ctx context.Context, name string, templateContent []TemplateVar, mergeVars []Var) (string, error)
}

// TagsClient reports per-tag delivery statistics.
type TagsClient interface {
	List(ctx context.Context) ([]TagInfo, error)
	Info(ctx context.Context, tag string) (*TagInfo, error)
	Delete(ctx context.Context, tag string) (*TagInfo, error)
	TimeSeries(ctx context.Context, tag string) ([]TimeSeriesPoint, error)
	AllTimeSeries(ctx context.Context) ([]TimeSeriesPoint, error)
}

// SendersClient reports on sending addresses and domains.
type SendersClient interface {
	List(ctx context.Context) ([]SenderInfo, error)
	Info(ctx context.Context, address string) (*SenderInfo, error)
	Domains(ctx context.Context) ([]SenderDomain, error)
	TimeSeries(ctx context.Context, address string) ([]TimeSeriesPoint, error)
}

// RejectsClient manages the rejection denylist.
type RejectsClient interface {
	Add(ctx context.Context, email, comment, subaccount string) (*RejectAddResult, error)
	List(ctx context.Context, params *RejectListParams) ([]Reject, error)
	Delete(ctx context.Context, email, subaccount string) (*RejectDeleteResult, error)
}

// WhitelistsClient manages the rejection allowlist.
type WhitelistsClient interface {
	Add(ctx context.Context, email, comment string) (*WhitelistAddResult, error)
	List(ctx context.Context, email string) ([]WhitelistEntry, error)
	Delete(ctx context.Context, email string) (*WhitelistDeleteResult, error)
}

// WebhooksClient manages event webhooks.
type WebhooksClient interface {
	List(ctx context.Context) ([]Webhook, error)
	Add(ctx context.Context, request *WebhookRequest) (*Webhook, error)
	Info(ctx context.Context, id int) (*Webhook, error)
	Update(ctx context.Context, id int, request *WebhookRequest) (*Webhook, error)
	Delete(ctx context.Context, id int) (*Webhook, error)
}

// SubaccountsClient manages subaccounts.
type SubaccountsClient interface {
	List(ctx context.Context, query string) ([]Subaccount, error)
	Add(ctx context.Context, request *SubaccountRequest) (*Subaccount, error)
	Info(ctx context.Context, id string) (*Subaccount, error)
	Update(ctx context.Context, request *SubaccountRequest) (*Subaccount, error)
	Delete(ctx context.Context, id string) (*Subaccount, error)
	Pause(ctx context.Context, id string) (*Subaccount, error)
	Resume(ctx context.Context, id string) (*Subaccount, error)
}

// ExportsClient starts and tracks bulk data exports.
type ExportsClient interface {
	List(ctx context.Context) ([]Export, error)
	Info(ctx context.Context, id string) (*Export, error)
	Rejects(ctx context.Context, notifyEmail string) (*Export, error)
	Whitelist(ctx context.Context, notifyEmail string) (*Export, error)
	Activity(ctx context.Context, params *ActivityExportParams) (*Export, error)
}

// Client provides access to all API sections.
type Client interface {
	Messages() MessagesClient
	Users() UsersClient
	Templates() TemplatesClient
	Tags() TagsClient
	Senders() SendersClient
	Rejects() RejectsClient
	Whitelists() WhitelistsClient
	Webhooks() WebhooksClient
	Subaccounts() SubaccountsClient
	Exports() ExportsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a relay.Client.
//
// APIKey is the only required field. The key is never sent as a header; it is
// injected into every request body, which is the API's authentication scheme.
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods; HTTPTimeout is the transport-level ceiling. Retries are
// off unless RetryMax is set.
type Config struct {
	// APIKey authenticates every request. Required. No format validation is
	// performed; the API itself is the source of truth for validity.
	APIKey string

	// Endpoint overrides the compiled-in API root. Chiefly useful for
	// pointing at test doubles; no shape validation is performed.
	Endpoint string

	// HTTPTimeout is the transport-level request timeout. Zero keeps the
	// default.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures.
	// Zero disables retries.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// Cache configures response caching for template lookups. Nil disables
	// caching.
	Cache *CacheConfig
}

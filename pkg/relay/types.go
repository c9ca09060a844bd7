package relay

// Timestamps are carried as the API formats them ("2006-01-02 15:04:05" in
// UTC); the client does not reinterpret them.

// Recipient is a single message recipient.
type Recipient struct {
	Email string `json:"email"          yaml:"email"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"` // "to", "cc" or "bcc"
}

// Var is a name/content pair used for merge variables.
type Var struct {
	Name    string      `json:"name"    yaml:"name"`
	Content interface{} `json:"content" yaml:"content"`
}

// RecipientVars scopes merge variables to one recipient.
type RecipientVars struct {
	Recipient string `json:"rcpt" yaml:"rcpt"`
	Vars      []Var  `json:"vars" yaml:"vars"`
}

// TemplateVar injects content into a template's editable regions.
type TemplateVar struct {
	Name    string `json:"name"    yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// Message is an outgoing transactional message.
type Message struct {
	HTML            string            `json:"html,omitempty"              yaml:"html,omitempty"`
	Text            string            `json:"text,omitempty"              yaml:"text,omitempty"`
	Subject         string            `json:"subject,omitempty"           yaml:"subject,omitempty"`
	FromEmail       string            `json:"from_email,omitempty"        yaml:"from_email,omitempty"`
	FromName        string            `json:"from_name,omitempty"         yaml:"from_name,omitempty"`
	To              []Recipient       `json:"to,omitempty"                yaml:"to,omitempty"`
	Headers         map[string]string `json:"headers,omitempty"           yaml:"headers,omitempty"`
	Important       bool              `json:"important,omitempty"         yaml:"important,omitempty"`
	TrackOpens      *bool             `json:"track_opens,omitempty"       yaml:"track_opens,omitempty"`
	TrackClicks     *bool             `json:"track_clicks,omitempty"      yaml:"track_clicks,omitempty"`
	AutoText        *bool             `json:"auto_text,omitempty"         yaml:"auto_text,omitempty"`
	Tags            []string          `json:"tags,omitempty"              yaml:"tags,omitempty"`
	Subaccount      string            `json:"subaccount,omitempty"        yaml:"subaccount,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"          yaml:"metadata,omitempty"`
	GlobalMergeVars []Var             `json:"global_merge_vars,omitempty" yaml:"global_merge_vars,omitempty"`
	MergeVars       []RecipientVars   `json:"merge_vars,omitempty"        yaml:"merge_vars,omitempty"`
}

// SendResult is the per-recipient outcome of a send.
type SendResult struct {
	Email        string `json:"email"                   yaml:"email"`
	Status       string `json:"status"                  yaml:"status"` // "sent", "queued", "rejected" or "invalid"
	RejectReason string `json:"reject_reason,omitempty" yaml:"reject_reason,omitempty"`
	ID           string `json:"_id"                     yaml:"id"`
}

// MessageSearchParams narrows a message search.
type MessageSearchParams struct {
	Query    string   `json:"query,omitempty"     yaml:"query,omitempty"`
	DateFrom string   `json:"date_from,omitempty" yaml:"date_from,omitempty"`
	DateTo   string   `json:"date_to,omitempty"   yaml:"date_to,omitempty"`
	Tags     []string `json:"tags,omitempty"      yaml:"tags,omitempty"`
	Senders  []string `json:"senders,omitempty"   yaml:"senders,omitempty"`
	Limit    int      `json:"limit,omitempty"     yaml:"limit,omitempty"`
}

// MessageInfo is the delivery record of a sent message.
type MessageInfo struct {
	ID           string            `json:"_id"                     yaml:"id"`
	Timestamp    int64             `json:"ts"                      yaml:"ts"`
	Sender       string            `json:"sender"                  yaml:"sender"`
	Subject      string            `json:"subject"                 yaml:"subject"`
	Email        string            `json:"email"                   yaml:"email"`
	State        string            `json:"state"                   yaml:"state"`
	Tags         []string          `json:"tags,omitempty"          yaml:"tags,omitempty"`
	Opens        int               `json:"opens"                   yaml:"opens"`
	Clicks       int               `json:"clicks"                  yaml:"clicks"`
	Metadata     map[string]string `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
	Subaccount   string            `json:"subaccount,omitempty"    yaml:"subaccount,omitempty"`
	BounceDetail string            `json:"bounce_detail,omitempty" yaml:"bounce_detail,omitempty"`
}

// MessageContent is the stored content of a sent or parsed message.
type MessageContent struct {
	ID        string            `json:"_id,omitempty"        yaml:"id,omitempty"`
	Timestamp int64             `json:"ts,omitempty"         yaml:"ts,omitempty"`
	FromEmail string            `json:"from_email"           yaml:"from_email"`
	FromName  string            `json:"from_name,omitempty"  yaml:"from_name,omitempty"`
	Subject   string            `json:"subject"              yaml:"subject"`
	To        []Recipient       `json:"to,omitempty"         yaml:"to,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"    yaml:"headers,omitempty"`
	Text      string            `json:"text,omitempty"       yaml:"text,omitempty"`
	HTML      string            `json:"html,omitempty"       yaml:"html,omitempty"`
}

// UserInfo describes the authenticated account. Stats is keyed by period
// ("today", "last_7_days", "all_time", ...).
type UserInfo struct {
	Username    string                   `json:"username"     yaml:"username"`
	CreatedAt   string                   `json:"created_at"   yaml:"created_at"`
	PublicID    string                   `json:"public_id"    yaml:"public_id"`
	Reputation  int                      `json:"reputation"   yaml:"reputation"`
	HourlyQuota int                      `json:"hourly_quota" yaml:"hourly_quota"`
	Backlog     int                      `json:"backlog"      yaml:"backlog"`
	Stats       map[string]DeliveryStats `json:"stats"        yaml:"stats"`
}

// TemplateRequest creates or updates a stored template.
type TemplateRequest struct {
	Name      string   `json:"name"                 yaml:"name"`
	Code      string   `json:"code,omitempty"       yaml:"code,omitempty"`
	Text      string   `json:"text,omitempty"       yaml:"text,omitempty"`
	Subject   string   `json:"subject,omitempty"    yaml:"subject,omitempty"`
	FromEmail string   `json:"from_email,omitempty" yaml:"from_email,omitempty"`
	FromName  string   `json:"from_name,omitempty"  yaml:"from_name,omitempty"`
	Labels    []string `json:"labels,omitempty"     yaml:"labels,omitempty"`
	Publish   bool     `json:"publish,omitempty"    yaml:"publish,omitempty"`
}

// Template is a stored template, including its draft and published content.
type Template struct {
	Slug             string   `json:"slug"                         yaml:"slug"`
	Name             string   `json:"name"                         yaml:"name"`
	Code             string   `json:"code,omitempty"               yaml:"code,omitempty"`
	Text             string   `json:"text,omitempty"               yaml:"text,omitempty"`
	Subject          string   `json:"subject,omitempty"            yaml:"subject,omitempty"`
	FromEmail        string   `json:"from_email,omitempty"         yaml:"from_email,omitempty"`
	FromName         string   `json:"from_name,omitempty"          yaml:"from_name,omitempty"`
	Labels           []string `json:"labels,omitempty"             yaml:"labels,omitempty"`
	PublishName      string   `json:"publish_name,omitempty"       yaml:"publish_name,omitempty"`
	PublishCode      string   `json:"publish_code,omitempty"       yaml:"publish_code,omitempty"`
	PublishSubject   string   `json:"publish_subject,omitempty"    yaml:"publish_subject,omitempty"`
	PublishFromEmail string   `json:"publish_from_email,omitempty" yaml:"publish_from_email,omitempty"`
	PublishedAt      string   `json:"published_at,omitempty"       yaml:"published_at,omitempty"`
	CreatedAt        string   `json:"created_at"                   yaml:"created_at"`
	UpdatedAt        string   `json:"updated_at"                   yaml:"updated_at"`
}

// DeliveryStats aggregates delivery outcomes for a tag or sender.
type DeliveryStats struct {
	Sent         int `json:"sent"          yaml:"sent"`
	HardBounces  int `json:"hard_bounces"  yaml:"hard_bounces"`
	SoftBounces  int `json:"soft_bounces"  yaml:"soft_bounces"`
	Rejects      int `json:"rejects"       yaml:"rejects"`
	Complaints   int `json:"complaints"    yaml:"complaints"`
	Opens        int `json:"opens"         yaml:"opens"`
	UniqueOpens  int `json:"unique_opens"  yaml:"unique_opens"`
	Clicks       int `json:"clicks"        yaml:"clicks"`
	UniqueClicks int `json:"unique_clicks" yaml:"unique_clicks"`
}

// TagInfo describes one tag and its lifetime statistics.
type TagInfo struct {
	Tag        string         `json:"tag"              yaml:"tag"`
	Reputation int            `json:"reputation"       yaml:"reputation"`
	DeliveryStats `yaml:",inline"`
	Stats      *DeliveryStats `json:"stats,omitempty"  yaml:"stats,omitempty"`
}

// TimeSeriesPoint is one hour of aggregated delivery statistics.
type TimeSeriesPoint struct {
	Time          string `json:"time" yaml:"time"`
	DeliveryStats `yaml:",inline"`
}

// SenderInfo describes one sending address.
type SenderInfo struct {
	Address       string `json:"address"    yaml:"address"`
	CreatedAt     string `json:"created_at" yaml:"created_at"`
	Reputation    int    `json:"reputation" yaml:"reputation"`
	DeliveryStats `yaml:",inline"`
}

// SenderDomain describes one sending domain and its verification state.
type SenderDomain struct {
	Domain       string `json:"domain"         yaml:"domain"`
	CreatedAt    string `json:"created_at"     yaml:"created_at"`
	LastTestedAt string `json:"last_tested_at" yaml:"last_tested_at"`
	ValidSPF     bool   `json:"valid_spf"      yaml:"valid_spf"`
	ValidDKIM    bool   `json:"valid_dkim"     yaml:"valid_dkim"`
	VerifiedAt   string `json:"verified_at"    yaml:"verified_at"`
}

// Reject is one entry on the rejection denylist.
type Reject struct {
	Email       string `json:"email"                yaml:"email"`
	Reason      string `json:"reason"               yaml:"reason"`
	Detail      string `json:"detail,omitempty"     yaml:"detail,omitempty"`
	CreatedAt   string `json:"created_at"           yaml:"created_at"`
	LastEventAt string `json:"last_event_at"        yaml:"last_event_at"`
	ExpiresAt   string `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Expired     bool   `json:"expired"              yaml:"expired"`
	Subaccount  string `json:"subaccount,omitempty" yaml:"subaccount,omitempty"`
}

// RejectListParams narrows a denylist listing.
type RejectListParams struct {
	Email          string `json:"email,omitempty"           yaml:"email,omitempty"`
	IncludeExpired bool   `json:"include_expired,omitempty" yaml:"include_expired,omitempty"`
	Subaccount     string `json:"subaccount,omitempty"      yaml:"subaccount,omitempty"`
}

// RejectAddResult reports the outcome of a denylist addition.
type RejectAddResult struct {
	Email string `json:"email" yaml:"email"`
	Added bool   `json:"added" yaml:"added"`
}

// RejectDeleteResult reports the outcome of a denylist removal.
type RejectDeleteResult struct {
	Email      string `json:"email"                yaml:"email"`
	Deleted    bool   `json:"deleted"              yaml:"deleted"`
	Subaccount string `json:"subaccount,omitempty" yaml:"subaccount,omitempty"`
}

// WhitelistEntry is one entry on the rejection allowlist.
type WhitelistEntry struct {
	Email     string `json:"email"            yaml:"email"`
	Detail    string `json:"detail,omitempty" yaml:"detail,omitempty"`
	CreatedAt string `json:"created_at"       yaml:"created_at"`
}

// WhitelistAddResult reports the outcome of an allowlist addition.
type WhitelistAddResult struct {
	Email string `json:"email" yaml:"email"`
	Added bool   `json:"added" yaml:"added"`
}

// WhitelistDeleteResult reports the outcome of an allowlist removal.
type WhitelistDeleteResult struct {
	Email   string `json:"email"   yaml:"email"`
	Deleted bool   `json:"deleted" yaml:"deleted"`
}

// WebhookRequest creates or updates a webhook.
type WebhookRequest struct {
	URL         string   `json:"url"                   yaml:"url"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Events      []string `json:"events,omitempty"      yaml:"events,omitempty"`
}

// Webhook is a configured event webhook.
type Webhook struct {
	ID          int      `json:"id"                     yaml:"id"`
	URL         string   `json:"url"                    yaml:"url"`
	Description string   `json:"description,omitempty"  yaml:"description,omitempty"`
	AuthKey     string   `json:"auth_key,omitempty"     yaml:"auth_key,omitempty"`
	Events      []string `json:"events,omitempty"       yaml:"events,omitempty"`
	CreatedAt   string   `json:"created_at"             yaml:"created_at"`
	LastSentAt  string   `json:"last_sent_at,omitempty" yaml:"last_sent_at,omitempty"`
	BatchesSent int      `json:"batches_sent"           yaml:"batches_sent"`
	EventsSent  int      `json:"events_sent"            yaml:"events_sent"`
	LastError   string   `json:"last_error,omitempty"   yaml:"last_error,omitempty"`
}

// SubaccountRequest creates or updates a subaccount.
type SubaccountRequest struct {
	ID          string `json:"id"                     yaml:"id"`
	Name        string `json:"name,omitempty"         yaml:"name,omitempty"`
	Notes       string `json:"notes,omitempty"        yaml:"notes,omitempty"`
	CustomQuota int    `json:"custom_quota,omitempty" yaml:"custom_quota,omitempty"`
}

// Subaccount is an isolated sending account under the main account.
type Subaccount struct {
	ID           string `json:"id"                      yaml:"id"`
	Name         string `json:"name,omitempty"          yaml:"name,omitempty"`
	Notes        string `json:"notes,omitempty"         yaml:"notes,omitempty"`
	CustomQuota  int    `json:"custom_quota,omitempty"  yaml:"custom_quota,omitempty"`
	Status       string `json:"status"                  yaml:"status"` // "active" or "paused"
	Reputation   int    `json:"reputation"              yaml:"reputation"`
	CreatedAt    string `json:"created_at"              yaml:"created_at"`
	FirstSentAt  string `json:"first_sent_at,omitempty" yaml:"first_sent_at,omitempty"`
	SentWeekly   int    `json:"sent_weekly"             yaml:"sent_weekly"`
	SentMonthly  int    `json:"sent_monthly"            yaml:"sent_monthly"`
	SentTotal    int    `json:"sent_total"              yaml:"sent_total"`
	SentHourly   int    `json:"sent_hourly"             yaml:"sent_hourly"`
	HourlyQuota  int    `json:"hourly_quota"            yaml:"hourly_quota"`
	LastSentAt   string `json:"last_sent_at,omitempty"  yaml:"last_sent_at,omitempty"`
}

// Export is a bulk data export job.
type Export struct {
	ID         string `json:"id"                   yaml:"id"`
	CreatedAt  string `json:"created_at"           yaml:"created_at"`
	Type       string `json:"type"                 yaml:"type"` // "activity", "reject" or "whitelist"
	FinishedAt string `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	State      string `json:"state"                yaml:"state"` // "waiting", "working", "complete", "error" or "expired"
	ResultURL  string `json:"result_url,omitempty" yaml:"result_url,omitempty"`
}

// ActivityExportParams narrows an activity export.
type ActivityExportParams struct {
	NotifyEmail string   `json:"notify_email,omitempty" yaml:"notify_email,omitempty"`
	DateFrom    string   `json:"date_from,omitempty"    yaml:"date_from,omitempty"`
	DateTo      string   `json:"date_to,omitempty"      yaml:"date_to,omitempty"`
	Tags        []string `json:"tags,omitempty"         yaml:"tags,omitempty"`
	Senders     []string `json:"senders,omitempty"      yaml:"senders,omitempty"`
	States      []string `json:"states,omitempty"       yaml:"states,omitempty"`
}

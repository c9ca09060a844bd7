// Package client implements the Relay API section clients on top of a shared
// request executor.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/relaywire/relay-go/internal/http"
	"github.com/relaywire/relay-go/pkg/relay"
)

// credentialField is the request body field the API reads the key from.
const credentialField = "key"

var errInvalidResponseBody = errors.New("response body is not valid JSON")

// sectionClient is implemented by every section client. The section name is a
// declared capability, not derived from the client's runtime type, and forms
// the first path segment of every call the client makes.
type sectionClient interface {
	sectionName() string
}

// Executor turns a (section, action, payload) triple into an authenticated
// POST against {base}/{section}/{action}.json and hands back the parsed JSON
// response or a normalized error.
//
// Executor carries no mutable per-call state; concurrent Execute calls on one
// instance are safe. SetBaseURL is configuration, not runtime control: it must
// not race with in-flight calls.
type Executor struct {
	httpClient *http.Client
	key        string
}

// NewExecutor creates an executor that authenticates with the given key.
func NewExecutor(httpClient *http.Client, key string) *Executor {
	return &Executor{
		httpClient: httpClient,
		key:        key,
	}
}

// SetBaseURL repoints the executor at a different API root. Intended for
// configuration before use, chiefly to target test servers.
func (e *Executor) SetBaseURL(baseURL string) {
	e.httpClient.SetBaseURL(baseURL)
}

// Execute posts payload to /{section}/{action}.json with the credential
// injected under "key". The executor's credential wins over a caller-supplied
// "key" entry, and the caller's map is never mutated.
//
// A 2xx response yields the raw parsed JSON; the API is free to return any
// JSON shape, so narrowing to a concrete type is the caller's job. A 5xx
// response is collapsed into *relay.APIError via NormalizeServerError. Every
// other failure (connection errors, timeouts, non-5xx statuses) propagates
// unmodified.
func (e *Executor) Execute(ctx context.Context, section, action string, payload map[string]interface{}) (json.RawMessage, error) {
	body := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}

	body[credentialField] = e.key

	path := fmt.Sprintf("/%s/%s.json", section, action)

	resp, err := e.httpClient.Post(ctx, path, body)
	if err != nil {
		serverErr := &http.ServerStatusError{}
		if errors.As(err, &serverErr) {
			return nil, relay.NormalizeServerError(serverErr.StatusCode, serverErr.Body, serverErr)
		}

		return nil, err
	}

	if !json.Valid(resp.Body) {
		return nil, fmt.Errorf("%w: %s %s", errInvalidResponseBody, section, action)
	}

	return json.RawMessage(resp.Body), nil
}

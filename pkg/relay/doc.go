// Package relay provides types, interfaces, and helpers for working with the
// Relay transactional-email API.
//
// # Overview
//
// The relay package defines the domain types (e.g., Message, Template,
// Reject, Webhook) and the interfaces for section-oriented clients (e.g.,
// MessagesClient, TemplatesClient). A concrete implementation of these
// clients is provided by the relayclient package, which wires configuration
// and transport. Most consumers should import relayclient to construct a
// client and then interact with the section client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/relaywire/relay-go/pkg/relay"
//	  "github.com/relaywire/relay-go/pkg/relayclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := relayclient.NewWithKey("your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  results, err := cli.Messages().Send(ctx, &relay.Message{
//	    FromEmail: "noreply@example.com",
//	    Subject:   "Welcome",
//	    Text:      "Hello!",
//	    To:        []relay.Recipient{{Email: "user@example.com"}},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = results
//	}
//
// # Errors
//
// API-level failures surface as *APIError, carrying the message, code, status,
// and name the API reported (or synthesized ServerError/ServerException values
// when the error body was unusable). Transport-level failures (connection
// errors, timeouts, non-5xx status errors) propagate as their own types and
// are never collapsed into APIError. Use the predicates (IsInvalidKey,
// IsUnknownTemplate, ...) or errors.As to branch on failure kinds.
package relay

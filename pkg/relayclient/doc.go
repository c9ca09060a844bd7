// Package relayclient provides the primary entry point for constructing a
// Relay API client that implements the relay.Client interface.
//
// It layers configuration and HTTP transport on top of the section interfaces
// and types defined in the relay package. Most applications should import
// relayclient to build a client, then use the returned relay.Client to access
// section-specific clients, for example Messages(), Templates(), Rejects().
//
// Quick start
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
//
//	  cli, err := relayclient.NewWithKey("your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  if err := cli.Users().Ping(ctx); err != nil {
//	    log.Fatal(err)
//	  }
//	}
//
// The API authenticates via the key in each request body; there are no
// headers or tokens to manage beyond the key itself.
package relayclient

// Package pwsclient provides the entry point for constructing a pentest.ws
// API client that implements the pws.Client interface.
//
// It layers configuration, API key resolution and the HTTP transport on top
// of the resource interfaces and types defined in the pws package. Most
// applications import pwsclient to build a client and then use the returned
// pws.Client to reach the resource clients, for example Engagements(),
// Hosts() or Ports().
//
// Quick start
//
//	import (
//	  "context"
//	  "fmt"
//	  "log"
//
//	  "github.com/bjb28/pws-api-wrapper/pkg/pws"
//	  "github.com/bjb28/pws-api-wrapper/pkg/pwsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Reads the key from PENTEST_WS_API_KEY.
//	  cli, err := pwsclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or pass the key directly:
//	  cli, err = pwsclient.NewWithAPIKey("0123456789abcdef")
//
//	  // Or configure everything:
//	  cli, err = pwsclient.New(&pws.Config{
//	    BaseURL:  "pentest.ws/api/v1",
//	    APIKey:   "0123456789abcdef",
//	    RetryMax: 3,
//	  })
//
//	  id, err := cli.Engagements().FindID(ctx, "ACME External")
//	  if err != nil { log.Fatal(err) }
//
//	  hosts, err := cli.Hosts().List(ctx, id)
//	  if err != nil { log.Fatal(err) }
//
//	  for _, host := range hosts {
//	    fmt.Println(host.Target(), host.Hostnames())
//	  }
//	}
//
// Base URLs without a scheme are assumed to be https. A missing API key is
// reported as pws.ErrAPIKeyMissing when the client is built, not when the
// first request is sent.
package pwsclient

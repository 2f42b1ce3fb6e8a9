// Package pws provides types, schemas, and interfaces for working with the
// pentest.ws REST API.
//
// # Overview
//
// The pws package defines the six resource kinds exposed by pentest.ws
// (Engagement, Host, Port, Finding, NotePage, Scratchpad), the declarative
// field schemas every resource is validated against, and the interfaces for
// the resource-oriented clients (EngagementsClient, HostsClient, ...). A
// concrete implementation of these clients is provided by the pwsclient
// package, which wires configuration, transport and API-key handling.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/bjb28/pws-api-wrapper/pkg/pws"
//	  "github.com/bjb28/pws-api-wrapper/pkg/pwsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Reads PENTEST_WS_API_KEY from the environment.
//	  cli, err := pwsclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  engagement, err := pws.NewEngagement(map[string]any{"name": "Q3 external"})
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.Engagements().Create(ctx, engagement)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(result.Message) // Engagement Q3 external (za4Kz7oy) created.
//	}
//
// # Entities and validation
//
// Entities are built from a plain field map with the New* constructors. A
// constructor either returns a fully validated entity or a *ValidationError
// carrying the exact per-field messages; no partially validated entity is
// ever returned. Optional fields that were never supplied stay absent, so
// ToMap and MarshalJSON never emit them.
//
// # Results
//
// Create, Update and Delete return a *Result. Expected failure statuses
// (400 on writes, 404 on delete) produce a Result with OK set to false and a
// nil error. Statuses the operation does not anticipate produce both a Result
// and an error wrapping ErrUnexpectedStatus. Get and List never terminate the
// process: failures are returned as errors wrapping ErrFetchFailed.
package pws

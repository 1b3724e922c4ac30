// Package ruckus provides types, interfaces, and helpers for working with the
// RUCKUS One cloud network management API.
//
// # Overview
//
// The ruckus package defines the domain types (e.g., Venue, AccessPoint,
// Switch, WLAN, DPSKService) and the interfaces for resource-oriented clients
// (e.g., VenuesClient, AccessPointsClient). A concrete implementation of these
// clients is provided by the r1client package, which wires configuration,
// regional endpoint resolution, OAuth2 authentication, and transport. Most
// consumers should import r1client to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/wavelabs-io/ruckusone/pkg/r1client"
//	  "github.com/wavelabs-io/ruckusone/pkg/ruckus"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := r1client.New(&ruckus.Config{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    TenantID:     "tenant-id",
//	    Region:       ruckus.RegionEU,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  venues, err := cli.Venues().Query(ctx, ruckus.NewQuery().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = venues
//	}
//
// # Authentication
//
// The client exchanges OAuth2 client credentials for a bearer token at the
// regional token endpoint and caches it. Tokens are refreshed 5 minutes
// before their declared expiry, so a token handed to a request never expires
// mid-flight. A pre-acquired token can be supplied via Config.AccessToken
// instead; such tokens are used as-is and never refreshed.
//
// # Queries
//
// List endpoints are POST {resource}/query calls taking a Query body. Use
// NewQuery and its chainable setters for page, page size, sorting, search,
// and filters. Results arrive in a QueryResult envelope carrying the page of
// data and the server-reported total.
//
// # Errors
//
// Failed exchanges are classified by HTTP status into typed errors:
// AuthenticationError (401), NotFoundError (404), ValidationError (400),
// RateLimitError (429), ServerError (5xx), and a plain APIError for anything
// else. Helpers such as IsNotFound and IsAuthentication make it easy to
// branch on common cases.
//
// # Interceptors
//
// The package includes generic request/response interceptors (logging, auth
// headers, metrics, rate limiting). The r1client package composes these for
// a sensible default client; applications with advanced needs can also use
// these primitives directly.
package ruckus

// Package r1client provides the primary entry point for constructing a
// RUCKUS One API client that implements the ruckus.Client interface.
//
// It layers configuration, regional endpoint resolution, OAuth2
// authentication, and HTTP transport on top of the resource interfaces and
// types defined in the ruckus package. Most applications should import
// r1client to build a client, then use the returned ruckus.Client to access
// resource-specific clients, for example Venues(), AccessPoints(), WLANs().
//
// Quick start
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
//
//	  // With OAuth2 client credentials:
//	  cli, err := r1client.New(&ruckus.Config{
//	    Region:       ruckus.RegionEU,
//	    TenantID:     "tenant-id",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = r1client.NewWithToken(ruckus.RegionNA, "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  venues, err := cli.Venues().Query(ctx, ruckus.NewQuery().WithPageSize(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = venues
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithClientCredentials
// and NewWithToken that wrap New with the appropriate configuration.
package r1client

// Package neighborhoods is a client for the Urban Mapping neighborhoods REST API.
//
// Every lookup issues exactly one GET against the service, checks the status,
// decodes the JSON body and, unless raw mode is on, converts it into a Value
// tree whose records are addressed by key:
//
//	c, err := neighborhoods.New(apiKey, neighborhoods.WithSharedSecret(secret))
//	res, err := c.NeighborhoodsByLatLng(ctx, 40.7233, -74.0030)
//	name, _ := res.Data.Index(0).Get("name").Text()
//
// A Client holds only immutable configuration and is safe for concurrent use.
package neighborhoods

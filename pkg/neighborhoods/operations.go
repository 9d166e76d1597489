package neighborhoods

import (
	"context"
	"strings"
)

// Remote method names.
const (
	MethodNeighborhoodsByLatLng           = "getNeighborhoodsByLatLng"
	MethodNearestNeighborhood             = "getNearestNeighborhood"
	MethodNeighborhoodsByExtent           = "getNeighborhoodsByExtent"
	MethodNeighborhoodsByAddress          = "getNeighborhoodsByAddress"
	MethodNeighborhoodsByCityStateCountry = "getNeighborhoodsByCityStateCountry"
	MethodNeighborhoodsByPostalCode       = "getNeighborhoodsByPostalCode"
	MethodNeighborhoodsByName             = "getNeighborhoodsByName"
	MethodNeighborhoodDetail              = "getNeighborhoodDetail"
	MethodNeighborhoodRelationships       = "getNeighborhoodRelationships"
)

// NeighborhoodsByLatLng returns the neighborhoods whose boundaries contain the point.
func (c *Client) NeighborhoodsByLatLng(ctx context.Context, lat, lng float64, opts ...CallOption) (*Result, error) {
	p := params{}.
		with("lat", formatFloat(lat)).
		with("lng", formatFloat(lng))
	return c.perform(ctx, MethodNeighborhoodsByLatLng, p, opts...)
}

// NearestNeighborhood returns the neighborhood whose centroid is nearest to the
// point within a 20 linear mile range. The service answers with an empty result
// when nothing is in range.
func (c *Client) NearestNeighborhood(ctx context.Context, lat, lng float64, opts ...CallOption) (*Result, error) {
	p := params{}.
		with("lat", formatFloat(lat)).
		with("lng", formatFloat(lng))
	return c.perform(ctx, MethodNearestNeighborhood, p, opts...)
}

// NeighborhoodsByExtent returns the neighborhoods inside the bounding box given
// by its southwest and northeast corners. The service rejects extents larger
// than 45 square miles; that rejection surfaces as a *RequestError.
func (c *Client) NeighborhoodsByExtent(ctx context.Context, swLat, swLng, neLat, neLng float64, opts ...CallOption) (*Result, error) {
	p := params{}.
		with("swlat", formatFloat(swLat)).
		with("swlng", formatFloat(swLng)).
		with("nelat", formatFloat(neLat)).
		with("nelng", formatFloat(neLng))
	return c.perform(ctx, MethodNeighborhoodsByExtent, p, opts...)
}

// NeighborhoodsByAddress geocodes the address and lists the neighborhoods
// containing it in one call. An empty country means DefaultCountry.
func (c *Client) NeighborhoodsByAddress(ctx context.Context, street, city, state, country string, opts ...CallOption) (*Result, error) {
	p := params{}.
		with("street", street).
		with("city", city).
		with("state", state).
		with("country", countryOrDefault(country))
	return c.perform(ctx, MethodNeighborhoodsByAddress, p, opts...)
}

// NeighborhoodsByCityStateCountry lists the neighborhoods of a city.
// An empty country means DefaultCountry.
func (c *Client) NeighborhoodsByCityStateCountry(ctx context.Context, city, state, country string, opts ...CallOption) (*Result, error) {
	p := params{}.
		with("city", city).
		with("state", state).
		with("country", countryOrDefault(country))
	return c.perform(ctx, MethodNeighborhoodsByCityStateCountry, p, opts...)
}

// NeighborhoodsByPostalCode lists the neighborhoods intersecting a postal code.
func (c *Client) NeighborhoodsByPostalCode(ctx context.Context, postalCode string, opts ...CallOption) (*Result, error) {
	return c.perform(ctx, MethodNeighborhoodsByPostalCode, params{}.with("postalCode", postalCode), opts...)
}

// NeighborhoodsByName lists the neighborhoods with the given name.
func (c *Client) NeighborhoodsByName(ctx context.Context, name string, opts ...CallOption) (*Result, error) {
	return c.perform(ctx, MethodNeighborhoodsByName, params{}.with("name", name), opts...)
}

// NeighborhoodDetail returns the details of one neighborhood.
func (c *Client) NeighborhoodDetail(ctx context.Context, id string, opts ...CallOption) (*Result, error) {
	return c.perform(ctx, MethodNeighborhoodDetail, params{}.with("neighborhoodId", id), opts...)
}

// NeighborhoodRelationships returns the relationship attributes of one neighborhood.
func (c *Client) NeighborhoodRelationships(ctx context.Context, id string, opts ...CallOption) (*Result, error) {
	return c.perform(ctx, MethodNeighborhoodRelationships, params{}.with("neighborhoodId", id), opts...)
}

func countryOrDefault(country string) string {
	if strings.TrimSpace(country) == "" {
		return DefaultCountry
	}
	return country
}

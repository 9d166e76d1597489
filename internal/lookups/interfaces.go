package lookups

import (
	"context"

	"github.com/samvad-hq/urbanmapping-go/pkg/neighborhoods"
)

// Querier is the subset of *neighborhoods.Client a lookup dispatches to.
type Querier interface {
	NeighborhoodsByLatLng(ctx context.Context, lat, lng float64, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
	NearestNeighborhood(ctx context.Context, lat, lng float64, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
	NeighborhoodsByExtent(ctx context.Context, swLat, swLng, neLat, neLng float64, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
	NeighborhoodsByAddress(ctx context.Context, street, city, state, country string, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
	NeighborhoodsByCityStateCountry(ctx context.Context, city, state, country string, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
	NeighborhoodsByPostalCode(ctx context.Context, postalCode string, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
	NeighborhoodsByName(ctx context.Context, name string, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
	NeighborhoodDetail(ctx context.Context, id string, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
	NeighborhoodRelationships(ctx context.Context, id string, opts ...neighborhoods.CallOption) (*neighborhoods.Result, error)
}

var _ Querier = (*neighborhoods.Client)(nil)

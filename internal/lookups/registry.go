package lookups

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samvad-hq/urbanmapping-go/pkg/neighborhoods"
)

// Operation names accepted in batch files and on the command line.
const (
	OpNeighborhoodsByLatLng           = "neighborhoodsByLatLng"
	OpNearestNeighborhood             = "nearestNeighborhood"
	OpNeighborhoodsByExtent           = "neighborhoodsByExtent"
	OpNeighborhoodsByAddress          = "neighborhoodsByAddress"
	OpNeighborhoodsByCityStateCountry = "neighborhoodsByCityStateCountry"
	OpNeighborhoodsByPostalCode       = "neighborhoodsByPostalCode"
	OpNeighborhoodsByName             = "neighborhoodsByName"
	OpNeighborhoodDetail              = "neighborhoodDetail"
	OpNeighborhoodRelationships       = "neighborhoodRelationships"
)

type dispatchFn func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error)

type operation struct {
	name     string
	required []string
	call     dispatchFn
}

var operations = []operation{
	{
		name:     OpNeighborhoodsByLatLng,
		required: []string{"lat", "lng"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			c, err := floats(p, "lat", "lng")
			if err != nil {
				return nil, err
			}
			return q.NeighborhoodsByLatLng(ctx, c[0], c[1], opts...)
		},
	},
	{
		name:     OpNearestNeighborhood,
		required: []string{"lat", "lng"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			c, err := floats(p, "lat", "lng")
			if err != nil {
				return nil, err
			}
			return q.NearestNeighborhood(ctx, c[0], c[1], opts...)
		},
	},
	{
		name:     OpNeighborhoodsByExtent,
		required: []string{"swlat", "swlng", "nelat", "nelng"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			c, err := floats(p, "swlat", "swlng", "nelat", "nelng")
			if err != nil {
				return nil, err
			}
			return q.NeighborhoodsByExtent(ctx, c[0], c[1], c[2], c[3], opts...)
		},
	},
	{
		name:     OpNeighborhoodsByAddress,
		required: []string{"street", "city", "state"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			return q.NeighborhoodsByAddress(ctx, p["street"], p["city"], p["state"], p["country"], opts...)
		},
	},
	{
		name:     OpNeighborhoodsByCityStateCountry,
		required: []string{"city", "state"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			return q.NeighborhoodsByCityStateCountry(ctx, p["city"], p["state"], p["country"], opts...)
		},
	},
	{
		name:     OpNeighborhoodsByPostalCode,
		required: []string{"postalCode"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			return q.NeighborhoodsByPostalCode(ctx, p["postalCode"], opts...)
		},
	},
	{
		name:     OpNeighborhoodsByName,
		required: []string{"name"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			return q.NeighborhoodsByName(ctx, p["name"], opts...)
		},
	},
	{
		name:     OpNeighborhoodDetail,
		required: []string{"neighborhoodId"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			return q.NeighborhoodDetail(ctx, p["neighborhoodId"], opts...)
		},
	},
	{
		name:     OpNeighborhoodRelationships,
		required: []string{"neighborhoodId"},
		call: func(ctx context.Context, q Querier, p map[string]string, opts []neighborhoods.CallOption) (*neighborhoods.Result, error) {
			return q.NeighborhoodRelationships(ctx, p["neighborhoodId"], opts...)
		},
	},
}

// operationFor resolves an operation by name, ignoring case.
func operationFor(name string) (operation, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, op := range operations {
		if strings.ToLower(op.name) == key {
			return op, true
		}
	}
	return operation{}, false
}

// Operations lists the supported operation names.
func Operations() []string {
	out := make([]string, 0, len(operations))
	for _, op := range operations {
		out = append(out, op.name)
	}
	return out
}

// Dispatch validates l and runs it against q.
func Dispatch(ctx context.Context, q Querier, l Lookup) (*neighborhoods.Result, error) {
	if q == nil {
		return nil, fmt.Errorf("lookup %q: client is nil", l.ID)
	}
	if err := Validate(l); err != nil {
		return nil, err
	}
	op, _ := operationFor(l.Operation)

	var opts []neighborhoods.CallOption
	if l.Raw != nil {
		opts = append(opts, neighborhoods.Raw(*l.Raw))
	}
	return op.call(ctx, q, l.Params, opts)
}

func floats(p map[string]string, keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		f, err := strconv.ParseFloat(p[k], 64)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", k, err)
		}
		out[i] = f
	}
	return out, nil
}

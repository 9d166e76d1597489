package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samvad-hq/urbanmapping-go/internal/app"
	"github.com/samvad-hq/urbanmapping-go/internal/config"
	"github.com/samvad-hq/urbanmapping-go/internal/logger"
	"github.com/samvad-hq/urbanmapping-go/internal/lookups"
	"github.com/samvad-hq/urbanmapping-go/pkg/neighborhoods"
	"github.com/spf13/cobra"
)

// newRootCommand builds the nbhd command tree. Results are written to out.
func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nbhd",
		Short: "Query the Urban Mapping neighborhoods API",
		Long: `nbhd looks up neighborhoods by point, extent, address, city, postal code,
name or id. Credentials come from --api-key/--shared-secret or the
NBHD_API_KEY/NBHD_SHARED_SECRET environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("api-key", "", "API key (env NBHD_API_KEY)")
	flags.String("shared-secret", "", "shared secret enabling signed premium requests (env NBHD_SHARED_SECRET)")
	flags.String("endpoint", "", "override the service base URL")
	flags.Bool("raw", false, "print decoded JSON without conversion")
	flags.StringP("output", "o", "json", "output format: json or yaml")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Int64("timeout", 15, "request timeout in seconds")

	cmd.AddCommand(
		lookupCommand(out, "latlng LAT LNG", "Neighborhoods containing a point",
			lookups.OpNeighborhoodsByLatLng, []string{"lat", "lng"}, 0),
		lookupCommand(out, "nearest LAT LNG", "Neighborhood with the nearest centroid within 20 miles",
			lookups.OpNearestNeighborhood, []string{"lat", "lng"}, 0),
		lookupCommand(out, "extent SWLAT SWLNG NELAT NELNG", "Neighborhoods inside a bounding box (max 45 sq mi)",
			lookups.OpNeighborhoodsByExtent, []string{"swlat", "swlng", "nelat", "nelng"}, 0),
		lookupCommand(out, "address STREET CITY STATE [COUNTRY]", "Geocode an address and list its neighborhoods",
			lookups.OpNeighborhoodsByAddress, []string{"street", "city", "state", "country"}, 1),
		lookupCommand(out, "city CITY STATE [COUNTRY]", "Neighborhoods of a city",
			lookups.OpNeighborhoodsByCityStateCountry, []string{"city", "state", "country"}, 1),
		lookupCommand(out, "postal POSTAL_CODE", "Neighborhoods intersecting a postal code",
			lookups.OpNeighborhoodsByPostalCode, []string{"postalCode"}, 0),
		lookupCommand(out, "name NAME", "Neighborhoods with a given name",
			lookups.OpNeighborhoodsByName, []string{"name"}, 0),
		lookupCommand(out, "detail ID", "Details of one neighborhood",
			lookups.OpNeighborhoodDetail, []string{"neighborhoodId"}, 0),
		lookupCommand(out, "relationships ID", "Relationship attributes of one neighborhood",
			lookups.OpNeighborhoodRelationships, []string{"neighborhoodId"}, 0),
		batchCommand(out),
	)

	return cmd
}

// lookupCommand maps positional args onto params of a single lookup. The last
// optional args may be omitted.
func lookupCommand(out io.Writer, use, short, operation string, params []string, optional int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.RangeArgs(len(params)-optional, len(params)),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := lookups.Lookup{
				ID:        strings.Fields(use)[0],
				Operation: operation,
				Params:    make(map[string]string, len(params)),
			}
			for i, arg := range args {
				l.Params[params[i]] = arg
			}
			return execute(cmd, out, []lookups.Lookup{l})
		},
	}
}

func batchCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Run every lookup listed in a YAML or JSON file",
		Long: fmt.Sprintf(`Run a batch of lookups. The file holds a "lookups" list whose entries
have an id, an operation and params. Supported operations:
  %s`, strings.Join(lookups.Operations(), "\n  ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := lookups.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("load lookups: %w", err)
			}
			return execute(cmd, out, batch)
		},
	}
}

// execute loads config, builds the client and runs the lookups.
func execute(cmd *cobra.Command, out io.Writer, batch []lookups.Lookup) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	log.DebugObj("nbhd starting", "config", map[string]any{
		"endpoint":        cfg.Endpoint,
		"premium":         cfg.SharedSecret != "",
		"raw":             cfg.Raw,
		"output":          cfg.Output,
		"timeout_seconds": cfg.TimeoutSeconds,
	})

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	runner, err := app.NewRunner(client, out, cfg.Output, log)
	if err != nil {
		return fmt.Errorf("init runner: %w", err)
	}
	return runner.Run(cmd.Context(), batch)
}

func newClient(cfg *config.Config, log logger.Logger) (*neighborhoods.Client, error) {
	opts := []neighborhoods.Option{
		neighborhoods.WithRaw(cfg.Raw),
		neighborhoods.WithTimeout(cfg.Timeout),
		neighborhoods.WithLogger(log),
	}
	if cfg.SharedSecret != "" {
		opts = append(opts, neighborhoods.WithSharedSecret(cfg.SharedSecret))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, neighborhoods.WithEndpoint(cfg.Endpoint))
	}

	client, err := neighborhoods.New(cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("init client: %w", err)
	}
	return client, nil
}

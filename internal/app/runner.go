package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samvad-hq/urbanmapping-go/internal/lookups"
	"github.com/samvad-hq/urbanmapping-go/internal/logger"
	"github.com/samvad-hq/urbanmapping-go/pkg/neighborhoods"
	"gopkg.in/yaml.v3"
)

// Runner executes lookups through the neighborhoods client and renders each
// result to an output stream.
type Runner struct {
	client lookups.Querier
	out    io.Writer
	format string
	log    logger.Logger
}

// Document is what the runner writes for every lookup.
type Document struct {
	ID        string `json:"id" yaml:"id"`
	Operation string `json:"operation" yaml:"operation"`
	Result    any    `json:"result,omitempty" yaml:"result,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewRunner wires a runner. format is "json" or "yaml".
func NewRunner(client lookups.Querier, out io.Writer, format string, log logger.Logger) (*Runner, error) {
	if client == nil {
		return nil, fmt.Errorf("client must not be nil")
	}
	if out == nil {
		return nil, fmt.Errorf("output must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	switch format {
	case "", "json":
		format = "json"
	case "yaml":
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	return &Runner{client: client, out: out, format: format, log: log}, nil
}

// Run executes every lookup in order. A failed lookup is rendered with its
// error and does not stop the batch; all failures are joined into the
// returned error.
func (r *Runner) Run(ctx context.Context, batch []lookups.Lookup) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("runner is not initialized")
	}
	if len(batch) == 0 {
		return fmt.Errorf("no lookups to run")
	}

	start := time.Now()
	r.log.InfoObj("lookups started", "batch_meta", map[string]any{
		"lookups_count": len(batch),
		"started_at":    start.UTC(),
	})

	enc := r.newEncoder()
	var errs []error
	for _, l := range batch {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		doc, err := r.runOne(ctx, l)
		if err != nil {
			errs = append(errs, fmt.Errorf("lookup %s: %w", l.ID, err))
		}
		if encErr := enc.Encode(doc); encErr != nil {
			return errors.Join(append(errs, fmt.Errorf("write result %s: %w", l.ID, encErr))...)
		}
	}
	if closeErr := enc.Close(); closeErr != nil {
		errs = append(errs, fmt.Errorf("flush output: %w", closeErr))
	}

	r.log.InfoObj("lookups completed", "batch_meta", map[string]any{
		"lookups_count": len(batch),
		"failed":        len(errs),
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	return errors.Join(errs...)
}

func (r *Runner) runOne(ctx context.Context, l lookups.Lookup) (Document, error) {
	doc := Document{ID: l.ID, Operation: l.Operation}

	res, err := lookups.Dispatch(ctx, r.client, l)
	if err != nil {
		r.log.ErrorObj("lookup failed", "lookup_error", lookupError(l, err))
		doc.Error = err.Error()
		return doc, err
	}

	doc.Result = plain(resultValue(res))
	r.log.DebugObj("lookup completed", "lookup_result", map[string]any{
		"id":        l.ID,
		"operation": l.Operation,
		"raw":       res.IsRaw(),
	})
	return doc, nil
}

func resultValue(res *neighborhoods.Result) any {
	if res.IsRaw() {
		return res.Raw
	}
	return res.Data.Interface()
}

func lookupError(l lookups.Lookup, err error) map[string]any {
	fields := map[string]any{
		"id":        l.ID,
		"operation": l.Operation,
		"error":     err.Error(),
	}
	var reqErr *neighborhoods.RequestError
	if errors.As(err, &reqErr) {
		fields["status"] = reqErr.Code
	}
	return fields
}

// plain replaces json.Number with int64 or float64 so both encoders print
// numbers as numbers.
func plain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			out[k] = plain(el)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = plain(el)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

type encoder interface {
	Encode(v any) error
	Close() error
}

type jsonEncoder struct{ enc *json.Encoder }

func (j jsonEncoder) Encode(v any) error { return j.enc.Encode(v) }
func (jsonEncoder) Close() error         { return nil }

func (r *Runner) newEncoder() encoder {
	if r.format == "yaml" {
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		return enc
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return jsonEncoder{enc: enc}
}

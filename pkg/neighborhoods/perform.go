package neighborhoods

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	TraceAttributeMethod    string = "neighborhoods-method"
	TraceAttributeRequestID string = "neighborhoods-request-id"
)

var tracer = otel.Tracer("neighborhoods-client")

// Result is the outcome of one lookup.
type Result struct {
	// Raw is the decoded JSON body. Numbers are json.Number.
	Raw any
	// Data is Raw converted into a Value tree. It is the zero Value when the
	// call ran in raw mode.
	Data Value
}

// IsRaw reports whether the call skipped structural conversion.
func (r *Result) IsRaw() bool { return r.Data.Kind() == Invalid }

// perform runs one remote method and maps its response.
func (c *Client) perform(ctx context.Context, method string, p params, opts ...CallOption) (res *Result, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	co := c.callOptions(opts)
	requestID := uuid.NewString()

	ctx, span := tracer.Start(ctx, "neighborhoods/"+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String(TraceAttributeMethod, method)),
		trace.WithAttributes(attribute.String(TraceAttributeRequestID, requestID)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	full := c.buildParams(p)
	reqURL := c.methodURL(method, full.encode())
	logURL := c.methodURL(method, full.redacted())

	start := time.Now()
	resp, err := c.http.Get(ctx, reqURL, nil)
	if err != nil {
		c.logFailure(requestID, logURL, err)
		return nil, &ExecutionError{URL: reqURL, Err: fmt.Errorf("http get: %w", err)}
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.status_code", status))
	c.log.DebugObj("neighborhoods request completed", "request", map[string]any{
		"request_id": requestID,
		"method":     method,
		"url":        logURL,
		"status":     status,
		"elapsed_ms": time.Since(start).Milliseconds(),
		"raw":        co.raw,
	})

	body := resp.Body()
	if status != http.StatusOK {
		reqErr := &RequestError{Code: status, URL: reqURL, Message: string(body)}
		c.logFailure(requestID, logURL, reqErr)
		return nil, reqErr
	}

	decoded, err := decodeJSON(body)
	if err != nil {
		c.logFailure(requestID, logURL, err)
		return nil, &ExecutionError{URL: reqURL, Err: err}
	}

	res = &Result{Raw: decoded}
	if !co.raw {
		res.Data = Convert(decoded)
	}
	return res, nil
}

func (c *Client) logFailure(requestID, logURL string, err error) {
	c.log.WarnObj("neighborhoods request failed", "request_error", map[string]any{
		"request_id": requestID,
		"url":        logURL,
		"error":      err.Error(),
	})
}

// decodeJSON decodes a single JSON document, keeping numbers exact.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json response: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json response: trailing data after document")
	}
	return v, nil
}

package neighborhoods

import (
	"errors"
	"strings"
	"time"

	"github.com/samvad-hq/urbanmapping-go/pkg/httpclient"
)

// Endpoint is the base URL of the remote neighborhoods service.
const Endpoint = "http://api1.urbanmapping.com/neighborhoods/rest"

// DefaultCountry is sent when an address or city lookup leaves country empty.
const DefaultCountry = "USA"

// ErrMissingAPIKey is returned by New when no api key is supplied.
var ErrMissingAPIKey = errors.New("neighborhoods: api key is required")

// Client issues lookups against the neighborhoods service.
type Client struct {
	apiKey       string
	sharedSecret string
	raw          bool
	endpoint     string
	timeout      time.Duration
	http         httpclient.Client
	now          func() time.Time
	log          Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithSharedSecret enables premium mode: every request is signed with sig.
func WithSharedSecret(secret string) Option {
	return func(c *Client) {
		c.sharedSecret = secret
	}
}

// WithRaw makes every call return the decoded JSON without conversion.
func WithRaw(raw bool) Option {
	return func(c *Client) {
		c.raw = raw
	}
}

// WithEndpoint overrides the service base URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	}
}

// WithTimeout sets the round trip timeout of the default transport.
// It has no effect when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the resty backed transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithClock replaces the time source used for request signatures.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithLogger sets the logger used for per-request diagnostics.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client for apiKey. No network I/O happens here.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		apiKey:   apiKey,
		endpoint: Endpoint,
		timeout:  httpclient.DefaultTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.endpoint == "" {
		c.endpoint = Endpoint
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout)
	}
	c.log = ensureLogger(c.log)

	return c, nil
}

// APIKey returns the configured api key.
func (c *Client) APIKey() string { return c.apiKey }

// PremiumAPI reports whether a shared secret was configured.
func (c *Client) PremiumAPI() bool { return c.sharedSecret != "" }

// Raw reports whether calls skip structural conversion by default.
func (c *Client) Raw() bool { return c.raw }

// CallOption adjusts a single call.
type CallOption func(*callOptions)

type callOptions struct {
	raw bool
}

// Raw overrides the client level raw setting for one call.
func Raw(raw bool) CallOption {
	return func(o *callOptions) {
		o.raw = raw
	}
}

func (c *Client) callOptions(opts []CallOption) callOptions {
	co := callOptions{raw: c.raw}
	for _, opt := range opts {
		if opt != nil {
			opt(&co)
		}
	}
	return co
}

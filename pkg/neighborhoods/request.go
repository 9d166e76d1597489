package neighborhoods

import (
	"crypto/md5" //nolint:gosec // the service defines the signature as an md5 digest
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

// param is one query parameter. Parameters keep insertion order on the wire.
type param struct {
	key   string
	value string
}

type params []param

func (p params) with(key, value string) params {
	return append(p, param{key: key, value: value})
}

// encode renders key=value pairs joined by & with every value escaped.
func (p params) encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// redacted is encode with the signature blanked, for logs and spans.
func (p params) redacted() string {
	cp := make(params, len(p))
	for i, kv := range p {
		if kv.key == "sig" {
			kv.value = "REDACTED"
		}
		cp[i] = kv
	}
	return cp.encode()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// signature is md5(apiKey + sharedSecret + unix seconds), hex encoded.
func (c *Client) signature() string {
	ts := strconv.FormatInt(c.now().UTC().Unix(), 10)
	sum := md5.Sum([]byte(c.apiKey + c.sharedSecret + ts)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// buildParams appends the fixed parameters every request carries.
func (c *Client) buildParams(p params) params {
	out := make(params, 0, len(p)+3)
	out = append(out, p...)
	out = out.with("format", "json").with("apikey", c.apiKey)
	if c.PremiumAPI() {
		out = out.with("sig", c.signature())
	}
	return out
}

func (c *Client) methodURL(method string, query string) string {
	return c.endpoint + "/" + method + "?" + query
}

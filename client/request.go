package client

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultBaseURL is the ScreenScraper API host.
	DefaultBaseURL = "https://api.screenscraper.fr/"

	// APIVersion is the path prefix of the supported API version.
	APIVersion = "api2/"
)

// Request describes a single API call. Path is relative to the versioned
// prefix, e.g. "jeuInfos.php". Auth adds the end-user credentials.
type Request struct {
	Path   string
	Auth   bool
	Params Params
}

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Order is preserved on
// the wire and every value is encoded individually.
type Params []Param

// Add appends key=value.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// AddNonEmpty appends key=value when value is not blank.
func (p Params) AddNonEmpty(key, value string) Params {
	if strings.TrimSpace(value) == "" {
		return p
	}
	return p.Add(key, value)
}

// AddInt appends key=value when v is non-nil.
func (p Params) AddInt(key string, v *int) Params {
	if v == nil {
		return p
	}
	return p.Add(key, strconv.Itoa(*v))
}

// Encode renders the parameters as a query string in order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}

	return b.String()
}

// requestURL composes base, version, path and the query: the fixed
// identification parameters first, then the user credentials when auth
// is set, then the caller's parameters.
func (c *Client) requestURL(r Request) string {
	q := make(Params, 0, 6+len(r.Params))
	q = q.Add("output", "json").
		Add("softname", c.creds.SoftwareName).
		Add("devid", c.creds.DevID).
		Add("devpassword", c.creds.DevPassword)

	if r.Auth {
		q = q.Add("ssid", c.creds.UserName).
			Add("sspassword", c.creds.UserPassword)
	}

	q = append(q, r.Params...)

	return c.baseURL + APIVersion + strings.TrimPrefix(r.Path, "/") + "?" + q.Encode()
}

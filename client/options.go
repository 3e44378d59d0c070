package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error
type options struct {
	client            *http.Client
	rt                http.RoundTripper
	timeout           *time.Duration
	userAgent         string
	noFollowRedirects bool
	logger            *slog.Logger
	baseURL           string
	cache             InfoCache
	noCache           bool
	tracer            trace.Tracer
	metrics           *Metrics
}

// WithClient replaces the default [http.Client] used by the [Client].
func WithClient(hc *http.Client) Option {
	return func(c *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		c.client = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		c.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
// It bounds media downloads too, so keep it generous for videos.
func WithTimeout(d time.Duration) Option {
	return func(c *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.timeout = &d
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing requests.
func WithUserAgent(header string) Option {
	return func(c *options) error {
		c.userAgent = header
		return nil
	}
}

// WithNoFollowRedirects prevents the [Client] from following HTTP redirects.
func WithNoFollowRedirects() Option {
	return func(c *options) error {
		c.noFollowRedirects = true
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(c *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithBaseURL points the client at another host, such as a fake server
// in tests. The versioned API prefix is still appended.
func WithBaseURL(raw string) Option {
	return func(c *options) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing base url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base url scheme %q must be http or https", u.Scheme)
		}
		if u.Host == "" {
			return errors.New("base url must have a host")
		}
		if u.RawQuery != "" || u.Fragment != "" {
			return errors.New("base url must not carry a query or fragment")
		}

		c.baseURL = strings.TrimSuffix(u.String(), "/") + "/"
		return nil
	}
}

// WithCache replaces the default in-memory [InfoCache].
func WithCache(cache InfoCache) Option {
	return func(c *options) error {
		if cache == nil {
			return errors.New("cache must not be nil")
		}
		c.cache = cache
		c.noCache = false
		return nil
	}
}

// WithoutCache disables the info cache; cached reads always hit the API.
func WithoutCache() Option {
	return func(c *options) error {
		c.cache = nil
		c.noCache = true
		return nil
	}
}

// WithTracer records a span for every API call.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		c.tracer = tracer
		return nil
	}
}

// WithMetrics records request counts, durations and media bytes.
func WithMetrics(m *Metrics) Option {
	return func(c *options) error {
		if m == nil {
			return errors.New("metrics must not be nil")
		}
		c.metrics = m
		return nil
	}
}

// userAgent is an http.RoundTripper, enabling the persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}

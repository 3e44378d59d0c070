package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/screenscraper/errs"
)

// Client talks to the ScreenScraper API. It is safe for concurrent use;
// the only state shared between calls is the [InfoCache].
type Client struct {
	c       *http.Client
	logger  *slog.Logger
	creds   Credentials
	baseURL string
	tracer  trace.Tracer
	metrics *Metrics
	cache   InfoCache
}

// Build validates creds and returns a configured Client. The credentials
// are copied and never modified afterwards.
func Build(creds Credentials, optFns ...Option) (*Client, error) {
	if err := Validate(creds); err != nil {
		return nil, fmt.Errorf("validating credentials: %w", err)
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	client := &Client{
		c:       &http.Client{},
		logger:  slog.Default(),
		creds:   creds,
		baseURL: DefaultBaseURL,
		tracer:  noop.NewTracerProvider().Tracer("no-op tracer"),
		metrics: opts.metrics,
		cache:   NewMemoryCache(),
	}

	if opts.client != nil {
		cpy := *opts.client
		client.c = &cpy
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.baseURL != "" {
		client.baseURL = opts.baseURL
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	switch {
	case opts.noCache:
		client.cache = nopCache{}
	case opts.cache != nil:
		client.cache = opts.cache
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	client.c.Transport = transport

	return client, nil
}

// execFn handles a 2xx response. The body is drained and closed by exec.
type execFn func(resp *http.Response) error

// exec issues a GET for r and runs fn on a 2xx response. Any other status
// is read up to maxErrBodySize, trimmed, and returned as an *errs.APIError.
func (c *Client) exec(ctx context.Context, r Request, fn execFn) (err error) {
	reqID := uuid.NewString()
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, "screenscraper."+strings.TrimSuffix(r.Path, ".php"), trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("request.id", reqID),
		attribute.String("screenscraper.path", r.Path),
		attribute.Bool("screenscraper.auth", r.Auth),
	)

	var status int
	defer func() {
		c.metrics.observe(r.Path, status, start)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		c.logger.Debug("screenscraper request",
			"request_id", reqID,
			"path", r.Path,
			"status", status,
			"duration", time.Since(start).Round(time.Millisecond),
			"error", err,
		)
	}()

	// The URL carries credentials; it is never logged.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(r), nil)
	if err != nil {
		return fmt.Errorf("instantiating request: %w", err)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("exec http do: %w", redact(err))
	}
	status = resp.StatusCode
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	discardBody := true
	defer func() {
		if discardBody {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				c.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return errs.New(strings.TrimSpace(strings.ToValidUTF8(string(b), "")), resp.StatusCode)
	}

	if err := fn(resp); err != nil {
		discardBody = false
		return err
	}

	return nil
}

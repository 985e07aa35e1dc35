// Package apiclient is the single gateway from the web frontend to the jobs API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const DefaultTimeout = 60 * time.Second

var tracer = otel.Tracer("jobsboard-apiclient")

// Observer receives one event per outbound call. Status is 0 when no response
// was received.
type Observer interface {
	ObserveCall(method, route string, status int, elapsed time.Duration)
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	// Credential returns the bearer token for the call, empty for anonymous calls.
	Credential func(ctx context.Context) string
	HTTPClient *http.Client
	Logger     *logrus.Logger
	Metrics    Observer
}

type Client struct {
	baseURL    string
	credential func(ctx context.Context) string
	httpClient *http.Client
	logger     *logrus.Logger
	metrics    Observer
}

func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	credential := opts.Credential
	if credential == nil {
		credential = func(context.Context) string { return "" }
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		credential: credential,
		httpClient: httpClient,
		logger:     logger,
		metrics:    opts.Metrics,
	}
}

type request struct {
	method string
	// route is the path template used for span names and metric labels.
	route       string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

func jsonRequest(method, route, path string, payload any) (request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("encode %s %s: %w", method, route, err)
	}
	return request{
		method:      method,
		route:       route,
		path:        path,
		body:        bytes.NewReader(body),
		contentType: "application/json",
	}, nil
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	ctx, span := tracer.Start(ctx, "apiclient "+r.method+" "+r.route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", r.method),
			attribute.String("http.route", r.route),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, r.method, target, r.body)
	if err != nil {
		return fmt.Errorf("create %s %s: %w", r.method, r.route, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if token := c.credential(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	propagation.TraceContext{}.Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.observe(r, 0, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		c.logger.WithFields(logrus.Fields{
			"method":   r.method,
			"route":    r.route,
			"duration": elapsed,
		}).WithError(err).Warn("api call failed")
		return fmt.Errorf("send %s %s: %w", r.method, r.route, err)
	}
	defer resp.Body.Close()

	c.observe(r, resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.WithFields(logrus.Fields{
		"method":   r.method,
		"route":    r.route,
		"status":   resp.StatusCode,
		"duration": elapsed,
	}).Debug("api call")

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", r.method, r.route, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		return &Error{Status: resp.StatusCode, Message: parseErrorMessage(payload)}
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.route, err)
	}
	return nil
}

func (c *Client) observe(r request, status int, elapsed time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveCall(r.method, r.route, status, elapsed)
	}
}

func (c *Client) get(ctx context.Context, route, path string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, route: route, path: path, query: query}, out)
}

func (c *Client) send(ctx context.Context, method, route, path string, payload, out any) error {
	if payload == nil {
		return c.do(ctx, request{method: method, route: route, path: path}, out)
	}
	r, err := jsonRequest(method, route, path, payload)
	if err != nil {
		return err
	}
	return c.do(ctx, r, out)
}

func escape(id string) string {
	return url.PathEscape(id)
}

// Ping reports whether the API answers at all. Any HTTP status counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	err := c.get(ctx, "/", "/", nil, nil)
	var apiErr *Error
	if err == nil || errors.As(err, &apiErr) {
		return nil
	}
	return err
}

// BaseURL is the API root without a trailing slash. Browser-facing links such
// as the Google sign-in entry point are built from it.
func (c *Client) BaseURL() string {
	return c.baseURL
}

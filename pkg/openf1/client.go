// Package openf1 is a minimal client for the public OpenF1 REST API.
package openf1

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/flatten"
	"github.com/Melanie472/f1laps/pkg/model"
)

const (
	DefaultBaseURL = "https://api.openf1.org/v1"
	instrumentName = "github.com/Melanie472/f1laps/pkg/openf1"
	defaultTimeout = 30 * time.Second
)

type (
	Option func(*Client)
	Client struct {
		baseURL    string
		httpClient *http.Client
		timeout    time.Duration
		l          *log.Logger
		tracer     trace.Tracer
		requests   metric.Int64Counter
	}
	SessionQuery struct {
		SessionName string
		Year        int
	}
)

// detailPath points to the error message OpenF1 sends along with non-2xx responses
var detailPath = jp.MustParseString("$.detail")

func WithBaseURL(arg string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(arg, "/")
	}
}

// WithHTTPClient sets the client used for requests. It is copied, so a
// timeout set via WithTimeout does not change arg.
func WithHTTPClient(arg *http.Client) Option {
	return func(c *Client) {
		c.httpClient = arg
	}
}

// WithTimeout sets the timeout of a single request. Zero keeps the timeout
// of the http client.
func WithTimeout(arg time.Duration) Option {
	return func(c *Client) {
		c.timeout = arg
	}
}

func WithLogger(arg *log.Logger) Option {
	return func(c *Client) {
		c.l = arg
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		l:          log.Default().Named("openf1"),
		tracer:     otel.Tracer(instrumentName),
	}
	for _, opt := range opts {
		opt(c)
	}
	hc := http.Client{Timeout: defaultTimeout}
	if c.httpClient != nil {
		hc = *c.httpClient
	}
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = &hc
	var err error
	c.requests, err = otel.Meter(instrumentName).Int64Counter("openf1.requests",
		metric.WithDescription("number of requests sent to the OpenF1 API"))
	if err != nil {
		c.l.Warn("could not create request counter", log.ErrorField(err))
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Sessions returns the sessions matching q. Zero values in q are not sent.
func (c *Client) Sessions(ctx context.Context, q SessionQuery) ([]model.Session, error) {
	params := url.Values{}
	if q.SessionName != "" {
		params.Set("session_name", q.SessionName)
	}
	if q.Year != 0 {
		params.Set("year", strconv.Itoa(q.Year))
	}
	rows, err := c.fetchRows(ctx, "sessions", params)
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, SessionFromRow)
}

// Drivers returns all driver entries of all sessions.
func (c *Client) Drivers(ctx context.Context) ([]model.Driver, error) {
	rows, err := c.fetchRows(ctx, "drivers", url.Values{})
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, DriverFromRow)
}

// Laps returns the raw laps of a session, formation lap included.
func (c *Client) Laps(ctx context.Context, sessionKey int) ([]model.Lap, error) {
	params := url.Values{}
	params.Set("session_key", strconv.Itoa(sessionKey))
	rows, err := c.fetchRows(ctx, "laps", params)
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, LapFromRow)
}

//nolint:whitespace // can't make both editor and linter happy
func (c *Client) fetchRows(
	ctx context.Context,
	endpoint string,
	params url.Values,
) ([]flatten.Row, error) {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	ctx, span := c.tracer.Start(ctx, "openf1."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url", reqURL)))
	defer span.End()

	rows, status, err := c.doFetch(ctx, reqURL)
	if c.requests != nil {
		c.requests.Add(ctx, 1, metric.WithAttributes(
			attribute.String("endpoint", endpoint),
			attribute.Int("status", status)))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.l.Error("request failed", log.String("url", reqURL), log.ErrorField(err))
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))
	c.l.Debug("request done",
		log.String("url", reqURL),
		log.Int("status", status),
		log.Int("rows", len(rows)))
	return rows, nil
}

func (c *Client) doFetch(ctx context.Context, reqURL string) ([]flatten.Row, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("get %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read %s: %w", reqURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &StatusError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(data),
		}
	}
	node, err := oj.Parse(data)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %s: %w", ErrInvalidPayload, reqURL, err)
	}
	rows, err := flatten.FlattenAll(node)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %s: %w", ErrInvalidPayload, reqURL, err)
	}
	return rows, resp.StatusCode, nil
}

func extractDetail(data []byte) string {
	node, err := oj.Parse(data)
	if err != nil {
		return strings.TrimSpace(string(data))
	}
	if s, ok := detailPath.First(node).(string); ok {
		return s
	}
	return ""
}

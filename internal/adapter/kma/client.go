package kma

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/kma-mcp/internal/domain"
	"github.com/couchcryptid/kma-mcp/internal/observability"
)

// Default API Hub locations.
const (
	DefaultBaseURL        = "https://apihub.kma.go.kr/api/typ01/url"
	DefaultCGIBaseURL     = "https://apihub.kma.go.kr/api/typ01/cgi-bin/url"
	DefaultOpenAPIBaseURL = "https://apihub.kma.go.kr/api/typ02/openApi"
	DefaultHubURL         = "https://apihub.kma.go.kr/api"

	DefaultTimeout          = 30 * time.Second
	DefaultSatelliteTimeout = 60 * time.Second
)

const (
	successCode = "00"
	// Upper bound on response bodies; raw products (NetCDF, images) are the largest.
	maxResponseBytes = 64 << 20
	// Upper bound on error bodies echoed into TransportError.
	maxErrorBodyBytes = 512
)

// Config holds the client settings. It is copied on construction.
type Config struct {
	AuthKey          string
	BaseURL          string
	CGIBaseURL       string
	OpenAPIBaseURL   string
	HubURL           string
	Timeout          time.Duration
	SatelliteTimeout time.Duration
}

// Client issues requests against the KMA API Hub and unwraps the response envelope.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	authKey          string
	httpClient       *http.Client
	bases            [baseCount]string
	satelliteTimeout time.Duration
	catalog          *Catalog
	logger           *slog.Logger
	metrics          *observability.Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its Timeout is left as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records request outcomes and durations.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithCatalog replaces the embedded endpoint catalog.
func WithCatalog(cat *Catalog) Option {
	return func(c *Client) { c.catalog = cat }
}

// NewClient creates an API Hub client. Empty URLs and zero timeouts fall back
// to the package defaults.
func NewClient(cfg Config, logger *slog.Logger, opts ...Option) (*Client, error) {
	if cfg.AuthKey == "" {
		return nil, errors.New("kma: auth key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SatelliteTimeout <= 0 {
		cfg.SatelliteTimeout = DefaultSatelliteTimeout
	}

	c := &Client{
		authKey:          cfg.AuthKey,
		httpClient:       &http.Client{Timeout: cfg.Timeout},
		satelliteTimeout: cfg.SatelliteTimeout,
		logger:           logger,
	}
	c.bases[BaseURL] = orDefault(cfg.BaseURL, DefaultBaseURL)
	c.bases[BaseCGI] = orDefault(cfg.CGIBaseURL, DefaultCGIBaseURL)
	c.bases[BaseOpenAPI] = orDefault(cfg.OpenAPIBaseURL, DefaultOpenAPIBaseURL)
	c.bases[BaseHub] = orDefault(cfg.HubURL, DefaultHubURL)

	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.catalog == nil {
		cat, err := DefaultCatalog()
		if err != nil {
			return nil, err
		}
		c.catalog = cat
	}
	return c, nil
}

// Catalog returns the endpoint catalog the client resolves names against.
func (c *Client) Catalog() *Catalog { return c.catalog }

// withTimeout returns a shallow copy whose HTTP client uses timeout d.
func (c *Client) withTimeout(d time.Duration) *Client {
	hc := *c.httpClient
	hc.Timeout = d
	clone := *c
	clone.httpClient = &hc
	return &clone
}

// Params is a set of query parameters. Values may be strings, integers,
// floats or booleans.
type Params map[string]any

// Execute issues one GET to endpoint under base, merging the auth key and a
// default help=0 into params, and returns the envelope's items in order.
// An envelope without items yields an empty, non-nil slice.
func (c *Client) Execute(ctx context.Context, endpoint string, params Params, base Base) ([]json.RawMessage, error) {
	page, err := c.ExecutePage(ctx, endpoint, params, base)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Page is an unwrapped envelope body.
type Page struct {
	Items      []json.RawMessage
	DataType   string
	PageNo     int
	NumOfRows  int
	TotalCount int
}

// ExecutePage is Execute with the envelope's pagination fields.
func (c *Client) ExecutePage(ctx context.Context, endpoint string, params Params, base Base) (*Page, error) {
	return c.executePage(ctx, endpoint, endpoint, params, base)
}

// executePage requests path and reports the outcome under label, which is the
// catalog name for catalog calls and the path otherwise.
func (c *Client) executePage(ctx context.Context, label, path string, params Params, base Base) (*Page, error) {
	start := time.Now()
	requestID := uuid.NewString()

	body, err := c.get(ctx, requestID, path, params, base)
	if err != nil {
		c.observe(label, requestID, start, 0, err)
		return nil, err
	}

	page, err := parseEnvelope(body)
	if err != nil {
		c.observe(label, requestID, start, 0, err)
		return nil, err
	}

	c.observe(label, requestID, start, len(page.Items), nil)
	c.logger.Debug("kma envelope",
		"request_id", requestID,
		"endpoint", label,
		"items", len(page.Items),
		"total_count", page.TotalCount,
	)
	return page, nil
}

// ExecuteRaw issues one GET and returns the response body unchanged. It serves
// products that do not use the envelope, such as images and NetCDF files.
func (c *Client) ExecuteRaw(ctx context.Context, endpoint string, params Params, base Base) ([]byte, error) {
	return c.executeRaw(ctx, endpoint, endpoint, params, base)
}

func (c *Client) executeRaw(ctx context.Context, label, path string, params Params, base Base) ([]byte, error) {
	start := time.Now()
	requestID := uuid.NewString()

	body, err := c.get(ctx, requestID, path, params, base)
	c.observe(label, requestID, start, 0, err)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, requestID, endpoint string, params Params, base Base) ([]byte, error) {
	fullURL, err := c.buildURL(endpoint, params, base)
	if err != nil {
		return nil, &UnexpectedError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &UnexpectedError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("kma request", "request_id", requestID, "path", endpoint, "base", base.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

func (c *Client) buildURL(endpoint string, params Params, base Base) (string, error) {
	if !base.valid() {
		return "", fmt.Errorf("unknown base %d", base)
	}

	query := url.Values{}
	for k, v := range params {
		query.Set(k, formatParam(v))
	}
	query.Set("authKey", c.authKey)
	if _, ok := params["help"]; !ok {
		query.Set("help", "0")
	}

	return strings.TrimRight(c.bases[base], "/") + "/" + strings.TrimLeft(endpoint, "/") + "?" + query.Encode(), nil
}

func formatParam(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return domain.FormatMinute(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func (c *Client) observe(endpoint, requestID string, start time.Time, records int, err error) {
	outcome := outcomeOf(err)
	if c.metrics != nil {
		c.metrics.Requests.WithLabelValues(endpoint, outcome).Inc()
		c.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		if err == nil {
			c.metrics.RecordsReturned.WithLabelValues(endpoint).Add(float64(records))
		}
	}
	if err != nil {
		c.logger.Warn("kma request failed",
			"request_id", requestID,
			"endpoint", endpoint,
			"outcome", outcome,
			"duration", time.Since(start),
			"error", err,
		)
	}
}

func outcomeOf(err error) string {
	var (
		apiErr       *APIError
		transportErr *TransportError
		validErr     *ValidationError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &apiErr):
		return "api_error"
	case errors.As(err, &transportErr):
		return "transport_error"
	case errors.Is(err, ErrNotSupported):
		return "not_supported"
	case errors.As(err, &validErr):
		return "invalid"
	default:
		return "unexpected_error"
	}
}

// Envelope wire types.

type envelope struct {
	Response struct {
		Header struct {
			ResultCode domain.ID `json:"resultCode"`
			ResultMsg  string    `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			DataType   string          `json:"dataType"`
			Items      json.RawMessage `json:"items"`
			PageNo     domain.Number   `json:"pageNo"`
			NumOfRows  domain.Number   `json:"numOfRows"`
			TotalCount domain.Number   `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

func parseEnvelope(body []byte) (*Page, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &UnexpectedError{Err: fmt.Errorf("decode envelope: %w", err)}
	}

	header := env.Response.Header
	if header.ResultCode == "" {
		return nil, &UnexpectedError{Err: errors.New("decode envelope: missing resultCode")}
	}
	if header.ResultCode != successCode {
		return nil, &APIError{Code: header.ResultCode.String(), Message: header.ResultMsg}
	}

	items, err := decodeItems(env.Response.Body.Items)
	if err != nil {
		return nil, &UnexpectedError{Err: err}
	}
	return &Page{
		Items:      items,
		DataType:   env.Response.Body.DataType,
		PageNo:     int(env.Response.Body.PageNo.Value),
		NumOfRows:  int(env.Response.Body.NumOfRows.Value),
		TotalCount: int(env.Response.Body.TotalCount.Value),
	}, nil
}

// decodeItems accepts items as an object holding an item array or a single
// item object. Missing, null or empty-string items mean no rows.
func decodeItems(raw json.RawMessage) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return []json.RawMessage{}, nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	item := bytes.TrimSpace(wrapper.Item)
	switch {
	case len(item) == 0 || bytes.Equal(item, []byte("null")):
		return []json.RawMessage{}, nil
	case item[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(item, &items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
		if items == nil {
			items = []json.RawMessage{}
		}
		return items, nil
	case item[0] == '{':
		return []json.RawMessage{item}, nil
	default:
		return nil, fmt.Errorf("decode items: unexpected item %.40s", item)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Package genability is a client for the Genability REST API. A Client holds
// the credentials and server address and exposes one service per resource
// family. Clients keep no per-call state and are safe for concurrent use.
package genability

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const DefaultRestAPIServer = "https://api.genability.com/rest/"

type Client struct {
	appID         string
	appKey        string
	restAPIServer string
	httpClient    *http.Client
	logger        *slog.Logger
	metrics       prometheus.Registerer

	Accounts   *AccountService
	Profiles   *ProfileService
	Prices     *PriceService
	Tariffs    *TariffService
	Properties *PropertyService
	Calendars  *CalendarService
	BulkUpload *BulkUploadService
}

type Option func(*Client)

// WithRestAPIServer overrides the base URL, e.g. a staging server.
func WithRestAPIServer(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.restAPIServer = url
		}
	}
}

// WithHTTPClient replaces the transport. Timeouts are configured here, the
// client itself has none.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics instruments the transport and registers the collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = reg
	}
}

func New(appID, appKey string, opts ...Option) (*Client, error) {
	c := &Client{
		appID:         appID,
		appKey:        appKey,
		restAPIServer: DefaultRestAPIServer,
		httpClient:    &http.Client{},
		logger:        slog.Default().With(slog.String("module", "genability")),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !strings.HasSuffix(c.restAPIServer, "/") {
		c.restAPIServer += "/"
	}

	if c.metrics != nil {
		instrumented, err := instrumentClient(c.httpClient, c.metrics)
		if err != nil {
			return nil, err
		}
		c.httpClient = instrumented
	}

	c.Accounts = &AccountService{client: c}
	c.Profiles = &ProfileService{client: c}
	c.Prices = &PriceService{client: c}
	c.Tariffs = &TariffService{client: c}
	c.Properties = &PropertyService{client: c}
	c.Calendars = &CalendarService{client: c}
	c.BulkUpload = &BulkUploadService{client: c}
	return c, nil
}

func (c *Client) RestAPIServer() string {
	return c.restAPIServer
}

// Package apiclient is a client for the ChatEase board creation API.
//
// Requests are validated locally before anything is sent, so format errors
// come back as *errors.ValidationError without a network round trip. Non-2xx
// responses come back as *errors.APIError and network failures as
// *errors.TransportError.
package apiclient

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bagooon/chatease-go/shared/config"
	"github.com/bagooon/chatease-go/shared/domain"
	"github.com/bagooon/chatease-go/shared/logger"
	"github.com/bagooon/chatease-go/shared/validation"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultBaseURL = "https://api.chatease.jp"
	defaultTimeout = 30 * time.Second

	boardPath = "/api/v1/board"
)

// RequestValidator checks requests before they are serialized.
type RequestValidator interface {
	BoardWithoutStatus(req domain.BoardCreationRequest) error
	BoardWithStatus(req domain.BoardCreationRequest) error
}

// Client is safe for concurrent use. Its configuration is fixed at construction.
type Client struct {
	baseURL       string
	workspaceSlug string
	transport     HTTPTransport
	validator     RequestValidator
	log           *slog.Logger
}

type options struct {
	baseURL    string
	transport  HTTPTransport
	httpClient *http.Client
	timeout    time.Duration
	registerer prometheus.Registerer
	log        *slog.Logger
}

type Option func(*options)

// WithBaseURL points the client at another API host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTransport replaces the network layer. The API token is not passed to a
// custom transport; it is responsible for its own authorization.
func WithTransport(t HTTPTransport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithHTTPClient sets the *http.Client used by the default transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithTimeout sets the request timeout of the default transport's client.
// Ignored when WithHTTPClient or WithTransport is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithMetrics records Prometheus metrics for every request on reg.
// Clients sharing a registry share the collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithLogger sets the client's logger. Without it the client logs through logger.Log.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func New(apiToken, workspaceSlug string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiToken) == "" {
		return nil, errors.New("api token is required")
	}
	if strings.TrimSpace(workspaceSlug) == "" {
		return nil, errors.New("workspace slug is required")
	}

	o := options{baseURL: DefaultBaseURL, timeout: defaultTimeout, log: logger.Log}
	for _, opt := range opts {
		opt(&o)
	}
	if o.baseURL == "" {
		o.baseURL = DefaultBaseURL
	}
	if o.log == nil {
		o.log = logger.Log
	}

	transport := o.transport
	if transport == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		transport = NewHTTPTransport(apiToken, httpClient)
	}
	if o.registerer != nil {
		m, err := newClientMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("cannot register metrics: %w", err)
		}
		transport = instrument(transport, m)
	}

	return &Client{
		baseURL:       strings.TrimRight(o.baseURL, "/"),
		workspaceSlug: workspaceSlug,
		transport:     transport,
		validator:     validation.New(),
		log:           o.log,
	}, nil
}

// NewFromConfig builds a client from a loaded config file. Explicit options
// are applied after the ones derived from cfg. A configured log level gives
// the client its own stderr logger.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	var fromConfig []Option
	if cfg.LogLevel != "" {
		fromConfig = append(fromConfig, WithLogger(logger.New(os.Stderr, cfg.LogLevel, cfg.LogJSON)))
	}
	if cfg.BaseURL != "" {
		fromConfig = append(fromConfig, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		fromConfig = append(fromConfig, WithTimeout(cfg.Timeout))
	}
	return New(cfg.APIToken, cfg.WorkspaceSlug, append(fromConfig, opts...)...)
}

func (c *Client) boardURL() string {
	return c.baseURL + boardPath
}

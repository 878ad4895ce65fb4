// Package transport provides the authenticated HTTP client used to talk to the
// translation server. It is a thin layer over resty that fixes the base URL,
// applies the token on every request and logs each exchange at debug level.
package transport

import (
	"context"
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/agentstation/pushull/pkg/constants"
	"github.com/agentstation/pushull/pkg/logging"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "pushull"

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. https://weblate.example.com/api/.
	// Relative request paths are resolved against it.
	BaseURL string

	// Token is the API key. Empty means unauthenticated.
	Token string

	// Auth applies the token, defaults to TokenAuth.
	Auth Authenticator

	// Timeout per request, defaults to constants.DefaultHTTPTimeout.
	Timeout time.Duration

	UserAgent string

	// SkipTLSVerify disables certificate verification.
	SkipTLSVerify bool

	// HTTPClient overrides the underlying client, mostly for tests.
	HTTPClient *http.Client

	Logger *zerolog.Logger
}

// Client provides HTTP client functionality with authentication.
type Client struct {
	http    *resty.Client
	baseURL string
}

// New creates a client from cfg.
func New(cfg Config) *Client {
	auth := cfg.Auth
	if auth == nil {
		auth = &TokenAuth{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	rc.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetPreRequestHook(func(_ *resty.Client, req *http.Request) error {
			if cfg.Token != "" {
				auth.Apply(req, cfg.Token)
			}
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("elapsed", resp.Time()).
				Msg("HTTP exchange")
			return nil
		})

	if cfg.SkipTLSVerify {
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // explicit opt-in
	}

	return &Client{http: rc, baseURL: baseURL}
}

// R starts a request bound to ctx.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// BaseURL returns the API root without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

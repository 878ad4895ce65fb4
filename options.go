package pushull

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/pushull/pkg/constants"
	"github.com/agentstation/pushull/pkg/errors"
)

// config holds the settings of a Provider.
type config struct {
	endpoint      string // API root, derived from host when empty
	host          string
	insecureHTTP  bool
	skipTLSVerify bool
	project       string
	token         string
	defaultLocale string
	userAgent     string
	timeout       time.Duration
	httpClient    *http.Client
	logger        *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		defaultLocale: constants.DefaultLocale,
		timeout:       constants.DefaultHTTPTimeout,
	}
}

// Option is a function that configures a Provider.
type Option func(*config) error

// apply runs opts against c.
func (c *config) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// WithEndpoint sets the API root explicitly, e.g. https://weblate.example.com/api/.
func WithEndpoint(endpoint string) Option {
	return func(c *config) error {
		if endpoint == "" {
			return &errors.ValidationError{Field: "endpoint", Message: "endpoint cannot be empty"}
		}
		c.endpoint = endpoint
		return nil
	}
}

// WithHost sets the server host; the endpoint becomes https://<host>/api/.
func WithHost(host string) Option {
	return func(c *config) error {
		c.host = host
		return nil
	}
}

// WithInsecureHTTP talks plain http to the host instead of https.
func WithInsecureHTTP() Option {
	return func(c *config) error {
		c.insecureHTTP = true
		return nil
	}
}

// WithSkipTLSVerify disables certificate verification.
func WithSkipTLSVerify() Option {
	return func(c *config) error {
		c.skipTLSVerify = true
		return nil
	}
}

// WithProject sets the remote project slug.
func WithProject(project string) Option {
	return func(c *config) error {
		c.project = project
		return nil
	}
}

// WithToken sets the API token.
func WithToken(token string) Option {
	return func(c *config) error {
		c.token = token
		return nil
	}
}

// WithDefaultLocale sets the locale used as source language of new components.
func WithDefaultLocale(locale string) Option {
	return func(c *config) error {
		if locale != "" {
			c.defaultLocale = locale
		}
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *config) error {
		c.userAgent = userAgent
		return nil
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout < 0 {
			return &errors.ValidationError{Field: "timeout", Value: timeout, Message: "timeout must be non-negative"}
		}
		c.timeout = timeout
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) error {
		c.httpClient = client
		return nil
	}
}

// WithLogger sets the logger, defaults to logging.Default().
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

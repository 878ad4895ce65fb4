// Package weblate implements the client side of the Weblate REST API needed to
// push, pull and delete translation catalogs: components, translations and units.
//
// All state lives in a Session. A Session owns the component cache and is
// meant to be created (or Reset) once per sync run.
package weblate

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/agentstation/pushull/internal/cache"
	"github.com/agentstation/pushull/internal/transport"
	"github.com/agentstation/pushull/pkg/errors"
	"github.com/agentstation/pushull/pkg/logging"
)

// Session holds the transport, project settings and resource caches of one sync run.
type Session struct {
	client        *transport.Client
	logger        *zerolog.Logger
	project       string
	defaultLocale string

	components *cache.Store[*Component]

	Components   *ComponentClient
	Translations *TranslationClient
	Units        *UnitClient
}

// NewSession creates a session for project. A nil logger falls back to the default logger.
func NewSession(client *transport.Client, project, defaultLocale string, logger *zerolog.Logger) *Session {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Session{
		client:        client,
		logger:        logger,
		project:       project,
		defaultLocale: defaultLocale,
		components:    cache.New[*Component](),
	}
	s.Components = &ComponentClient{s: s}
	s.Translations = &TranslationClient{s: s}
	s.Units = &UnitClient{s: s}
	return s
}

// Reset clears every cache and partial flag.
func (s *Session) Reset() {
	s.components.Reset()
}

// Project returns the remote project slug.
func (s *Session) Project() string {
	return s.project
}

// DefaultLocale returns the source language used for new components.
func (s *Session) DefaultLocale() string {
	return s.defaultLocale
}

// remoteError builds the error for an unexpected status and logs the body.
func (s *Session) remoteError(operation, resource, id string, resp *resty.Response) error {
	body := strings.TrimSpace(resp.String())
	s.logger.Debug().
		Str("operation", operation).
		Str("resource", resource).
		Str("id", id).
		Int("status", resp.StatusCode()).
		Str("body", body).
		Msg("Unexpected response")
	return errors.NewRemoteError(operation, resource, id, resp.StatusCode(), body)
}

// decodeError reports a response whose status was expected but whose body
// could not be used.
func (s *Session) decodeError(operation, resource, id string, resp *resty.Response, err error) error {
	return &errors.RemoteError{
		Operation:  operation,
		Resource:   resource,
		ID:         id,
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(resp.String()),
		Err:        err,
	}
}

package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/pushull"
	"github.com/agentstation/pushull/pkg/constants"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ProviderFunc        func() (pushull.Provider, error)
	LoggerFunc          func() *zerolog.Logger
	OutputFormatFunc    func() string
	DefaultLocaleFunc   func() string
	LocalesFunc         func() []string
	TranslationsDirFunc func() string
	VersionFunc         func() string
	CommitFunc          func() string
	DateFunc            func() string
	BuiltByFunc         func() string
}

// Provider returns a provider using the mock function or nil.
func (m *Mock) Provider() (pushull.Provider, error) {
	if m.ProviderFunc != nil {
		return m.ProviderFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// DefaultLocale returns the default locale using the mock function or "en".
func (m *Mock) DefaultLocale() string {
	if m.DefaultLocaleFunc != nil {
		return m.DefaultLocaleFunc()
	}
	return constants.DefaultLocale
}

// Locales returns locales using the mock function or nil.
func (m *Mock) Locales() []string {
	if m.LocalesFunc != nil {
		return m.LocalesFunc()
	}
	return nil
}

// TranslationsDir returns the directory using the mock function or the default.
func (m *Mock) TranslationsDir() string {
	if m.TranslationsDirFunc != nil {
		return m.TranslationsDirFunc()
	}
	return constants.DefaultTranslationsDir
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/pushull/pkg/constants"
	"github.com/agentstation/pushull/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Provider configuration
	DSN             string
	DefaultLocale   string
	Locales         []string
	TranslationsDir string
	Timeout         time.Duration
	InsecureHTTP    bool
	SkipTLSVerify   bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (PUSHULL_*)
// 3. .env files
// 4. Config file (configFile, or .pushull.yaml in $HOME or .)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("PUSHULL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("default_locale", constants.DefaultLocale)
	v.SetDefault("translations_dir", constants.DefaultTranslationsDir)
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		// Search for config in standard locations
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".pushull")

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	config := &Config{
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),

		DSN:             v.GetString("dsn"),
		DefaultLocale:   v.GetString("default_locale"),
		Locales:         splitList(v.GetStringSlice("locales")),
		TranslationsDir: v.GetString("translations_dir"),
		Timeout:         v.GetDuration("timeout"),
		InsecureHTTP:    v.GetBool("insecure_http"),
		SkipTLSVerify:   v.GetBool("skip_tls_verify"),

		// Logging configuration
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
		NoColor:   os.Getenv("NO_COLOR") != "",
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Only flags set on the command line override the loaded configuration.
func (c *Config) UpdateFromFlags(flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		value := f.Value.String()
		switch f.Name {
		case "verbose":
			c.Verbose = value == "true"
		case "quiet":
			c.Quiet = value == "true"
		case "no-color":
			c.NoColor = value == "true"
		case "format":
			c.Format = value
		case "log-level":
			c.LogLevel = value
		case "dsn":
			c.DSN = value
		case "default-locale":
			c.DefaultLocale = value
		case "translations-dir":
			c.TranslationsDir = value
		case "timeout":
			if timeout, err := flags.GetDuration("timeout"); err == nil {
				c.Timeout = timeout
			}
		}
	})
}

// Validate checks the settings required to talk to the server.
func (c *Config) Validate() error {
	if c.DSN == "" {
		return &errors.ConfigError{
			Component: "dsn",
			Message:   "no DSN configured; set PUSHULL_DSN, dsn in .pushull.yaml or --dsn",
		}
	}
	return nil
}

// splitList flattens comma separated entries and drops empty ones.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local is loaded first: godotenv never overrides a variable already set
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

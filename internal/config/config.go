package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/fcavalcantirj/solvr-ui/internal/errors"
	"github.com/fcavalcantirj/solvr-ui/pkg/api"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "solvr-ui.json"

	// DefaultKeyEnv is the environment variable consulted for the API key
	// when the configuration does not name one.
	DefaultKeyEnv = "SOLVR_API_KEY"

	// DefaultTimeout is the default API request timeout.
	DefaultTimeout = "30s"

	// DefaultMaxRetries is the default retry budget for network errors.
	DefaultMaxRetries = 3

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "solvr_ui"
)

// Config represents the complete solvr-ui.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// API contains platform API client settings.
	API APIConfig `json:"api,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// APIConfig contains platform API client settings.
type APIConfig struct {
	// BaseURL is the API base URL.
	BaseURL string `json:"baseUrl,omitempty"`

	// Key is a literal API key. Local development only; prefer KeyEnv.
	Key string `json:"key,omitempty"`

	// KeyEnv names the environment variable holding the API key.
	KeyEnv string `json:"keyEnv,omitempty"`

	// Timeout is the request timeout as a duration string (e.g., "30s").
	Timeout string `json:"timeout,omitempty"`

	// MaxRetries is the retry budget for network errors.
	MaxRetries int `json:"maxRetries,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is the log output format: text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled controls whether metrics are registered.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		API: APIConfig{
			BaseURL:    api.DefaultBaseURL,
			KeyEnv:     DefaultKeyEnv,
			Timeout:    DefaultTimeout,
			MaxRetries: DefaultMaxRetries,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: DefaultMetricsNamespace,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for solvr-ui.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No solvr-ui.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'solvr-ui init' to create one")
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E102").
			WithDetail("Failed to parse solvr-ui.json: " + err.Error()).
			WithSuggestion("Check that solvr-ui.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E102").Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E102").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = api.DefaultBaseURL
	}
	if c.API.KeyEnv == "" {
		c.API.KeyEnv = DefaultKeyEnv
	}
	if c.API.Timeout == "" {
		c.API.Timeout = DefaultTimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// Validate checks field values that have an allowed range.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return errors.New("E103").
			WithDetail("api.timeout is not a valid duration: " + c.API.Timeout).
			WithSuggestion(`Use a Go duration string such as "30s" or "1m"`)
	}
	if c.API.MaxRetries < 0 {
		return errors.New("E103").
			WithDetail("api.maxRetries must not be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E103").
			WithDetail("log.level must be one of: debug, info, warn, error")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E103").
			WithDetail("log.format must be text or json")
	}

	return nil
}

// APIKey resolves the API key: the literal key if set, otherwise the
// named environment variable.
func (c *Config) APIKey() (string, error) {
	if c.API.Key != "" {
		return c.API.Key, nil
	}
	if key := os.Getenv(c.API.KeyEnv); key != "" {
		return key, nil
	}
	return "", errors.New("E110").
		WithDetail("Set " + c.API.KeyEnv + " or the api.key field in solvr-ui.json").
		WithSuggestion("export " + c.API.KeyEnv + "=<your key>")
}

// TimeoutDuration returns the parsed request timeout.
// Validate has already checked the format on load.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

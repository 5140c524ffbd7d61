package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"adminctl/internal/domain"
)

// Bulk request encodings
const (
	BulkEncodingForm = "form"
	BulkEncodingJSON = "json"
)

// EnvPrefix is the prefix for environment overrides (ADMINCTL_BASE_URL, ...)
const EnvPrefix = "ADMINCTL"

// Config represents the application configuration
type Config struct {
	BaseURL           string        `mapstructure:"base_url"`
	Resource          string        `mapstructure:"resource"`
	SessionCookie     string        `mapstructure:"session_cookie"`
	SessionCookieName string        `mapstructure:"session_cookie_name"`
	BulkEncoding      string        `mapstructure:"bulk_encoding"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	SearchDebounce    time.Duration `mapstructure:"search_debounce"`
	NotificationTTL   time.Duration `mapstructure:"notification_ttl"`
	Types             []string      `mapstructure:"types"`
	BulkActions       []string      `mapstructure:"bulk_actions"`
	Endpoints         Endpoints     `mapstructure:"endpoints"`
}

// Endpoints holds path templates; {id} is replaced with the escaped row id.
// Empty entries fall back to the resource defaults.
type Endpoints struct {
	List   string `mapstructure:"list" toml:"list,omitempty"`
	Delete string `mapstructure:"delete" toml:"delete,omitempty"`
	Status string `mapstructure:"status" toml:"status,omitempty"`
	Bulk   string `mapstructure:"bulk" toml:"bulk,omitempty"`
}

// fileConfig is the on-disk shape; durations are written as strings
type fileConfig struct {
	BaseURL           string    `toml:"base_url"`
	Resource          string    `toml:"resource"`
	SessionCookie     string    `toml:"session_cookie"`
	SessionCookieName string    `toml:"session_cookie_name"`
	BulkEncoding      string    `toml:"bulk_encoding"`
	RequestTimeout    string    `toml:"request_timeout"`
	SearchDebounce    string    `toml:"search_debounce"`
	NotificationTTL   string    `toml:"notification_ttl"`
	Types             []string  `toml:"types"`
	BulkActions       []string  `toml:"bulk_actions"`
	Endpoints         Endpoints `toml:"endpoints"`
}

// ConfigService handles configuration management
type ConfigService interface {
	DefaultPath() string
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "adminctl", "config.toml"),
	}
}

// DefaultPath returns the default config file location
func (cs *configService) DefaultPath() string {
	return cs.filePath
}

// LoadFromPath loads configuration from path, layering ADMINCTL_* environment
// variables over the file and the file over the defaults. A missing file is not
// an error.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Types = splitList(cfg.Types)
	cfg.BulkActions = splitList(cfg.BulkActions)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(fileConfig{
		BaseURL:           config.BaseURL,
		Resource:          config.Resource,
		SessionCookie:     config.SessionCookie,
		SessionCookieName: config.SessionCookieName,
		BulkEncoding:      config.BulkEncoding,
		RequestTimeout:    config.RequestTimeout.String(),
		SearchDebounce:    config.SearchDebounce.String(),
		NotificationTTL:   config.NotificationTTL.String(),
		Types:             config.Types,
		BulkActions:       config.BulkActions,
		Endpoints:         config.Endpoints,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may carry a session cookie
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "http://localhost:5000",
		Resource:          domain.Applications.Name,
		SessionCookieName: "session",
		BulkEncoding:      BulkEncodingForm,
		RequestTimeout:    10 * time.Second,
		SearchDebounce:    300 * time.Millisecond,
		NotificationTTL:   3 * time.Second,
		Types:             []string{"internship", "job", "hackathon"},
		BulkActions:       []string{"approve", "reject", "delete"},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("resource", d.Resource)
	v.SetDefault("session_cookie", d.SessionCookie)
	v.SetDefault("session_cookie_name", d.SessionCookieName)
	v.SetDefault("bulk_encoding", d.BulkEncoding)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("search_debounce", d.SearchDebounce)
	v.SetDefault("notification_ttl", d.NotificationTTL)
	v.SetDefault("types", d.Types)
	v.SetDefault("bulk_actions", d.BulkActions)
	v.SetDefault("endpoints.list", "")
	v.SetDefault("endpoints.delete", "")
	v.SetDefault("endpoints.status", "")
	v.SetDefault("endpoints.bulk", "")
}

// splitList normalises list values; environment overrides arrive as one
// comma-separated element.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Validate checks the configuration for values the client cannot work with
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute http(s) URL", c.BaseURL)
	}
	if _, ok := domain.ResourceByName(c.Resource); !ok {
		return fmt.Errorf("unknown resource %q: want applications or opportunities", c.Resource)
	}
	switch c.BulkEncoding {
	case BulkEncodingForm, BulkEncodingJSON:
	default:
		return fmt.Errorf("unknown bulk_encoding %q: want form or json", c.BulkEncoding)
	}
	if c.RequestTimeout <= 0 || c.SearchDebounce <= 0 || c.NotificationTTL <= 0 {
		return fmt.Errorf("request_timeout, search_debounce and notification_ttl must be positive")
	}
	if len(c.BulkActions) == 0 {
		return fmt.Errorf("bulk_actions must not be empty")
	}
	return nil
}

// ResourceInfo returns the configured resource
func (c *Config) ResourceInfo() domain.Resource {
	res, ok := domain.ResourceByName(c.Resource)
	if !ok {
		return domain.Applications
	}
	return res
}

// ResolvedEndpoints returns the endpoint templates for the configured
// resource with defaults filled in
func (c *Config) ResolvedEndpoints() Endpoints {
	e := DefaultEndpoints(c.ResourceInfo())
	if c.Endpoints.List != "" {
		e.List = c.Endpoints.List
	}
	if c.Endpoints.Delete != "" {
		e.Delete = c.Endpoints.Delete
	}
	if c.Endpoints.Status != "" {
		e.Status = c.Endpoints.Status
	}
	if c.Endpoints.Bulk != "" {
		e.Bulk = c.Endpoints.Bulk
	}
	return e
}

// DefaultEndpoints returns the backend routes for a resource
func DefaultEndpoints(res domain.Resource) Endpoints {
	if res.Name == domain.Opportunities.Name {
		return Endpoints{
			List:   "/admin/api/opportunities",
			Delete: "/admin/opportunity/delete/{id}",
			Status: "/admin/opportunities/{id}/status",
			Bulk:   "/admin/bulk-action",
		}
	}
	return Endpoints{
		List:   "/admin/api/applications",
		Delete: "/admin/applications/delete/{id}",
		Status: "/admin/update-status/{id}",
		Bulk:   "/admin/applications/bulk-action",
	}
}

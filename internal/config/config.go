// Package config loads flowdoc settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"flowdoc/internal/application"
)

const (
	DefaultBaseURL   = "https://api.webflow.com/v2"
	DefaultPageSize  = 100
	DefaultOutputDir = "collection_items"
	DefaultListFile  = "all_items.json"
)

// Environment variables read by Load
const (
	EnvAPIToken     = "WEBFLOW_API_TOKEN"
	EnvSiteID       = "WEBFLOW_SITE_ID"
	EnvCollectionID = "WEBFLOW_COLLECTION_ID"
	EnvBaseURL      = "WEBFLOW_API_BASE_URL"
	EnvOutputDir    = "FLOWDOC_OUTPUT_DIR"
	EnvPageSize     = "FLOWDOC_PAGE_SIZE"
	EnvConfigPath   = "FLOWDOC_CONFIG"
)

// Config holds everything needed to talk to one Webflow collection.
type Config struct {
	APIToken     string `toml:"api_token"`
	SiteID       string `toml:"site_id"`
	CollectionID string `toml:"collection_id"`
	BaseURL      string `toml:"base_url"`

	// PageSize is the number of items requested per list call (max 100).
	PageSize int `toml:"page_size"`

	// OutputDir is where saved content and item lists are written.
	OutputDir string `toml:"output_dir"`

	// IndexPath is the SQLite file holding item summaries for search.
	IndexPath string `toml:"index_path"`

	// Timeout bounds each HTTP request. Zero keeps the transport default.
	Timeout Duration `toml:"timeout"`
}

// Duration decodes TOML strings like "30s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns a config with only defaults applied
func Default() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		PageSize:  DefaultPageSize,
		OutputDir: DefaultOutputDir,
		IndexPath: DefaultIndexPath(),
	}
}

// Load builds the config from defaults, the config file (if it exists) and
// the environment, in that order of precedence. An empty path means
// $FLOWDOC_CONFIG or DefaultPath().
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultPath()
		}
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		EnvAPIToken:     &c.APIToken,
		EnvSiteID:       &c.SiteID,
		EnvCollectionID: &c.CollectionID,
		EnvBaseURL:      &c.BaseURL,
		EnvOutputDir:    &c.OutputDir,
	}
	for name, field := range overrides {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}

	if v := os.Getenv(EnvPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageSize, err)
		}
		c.PageSize = n
	}
	return nil
}

// Validate reports missing credentials
func (c *Config) Validate() error {
	var missing []string
	if c.APIToken == "" {
		missing = append(missing, EnvAPIToken)
	}
	if c.SiteID == "" {
		missing = append(missing, EnvSiteID)
	}
	if c.CollectionID == "" {
		missing = append(missing, EnvCollectionID)
	}
	if len(missing) > 0 {
		msg := fmt.Sprintf("missing required settings: %s (set them in the environment or %s)",
			strings.Join(missing, ", "), DefaultPath())
		return &application.ValidationError{Field: "config", Message: msg}
	}
	return nil
}

// DefaultPath returns ~/.config/flowdoc/config.toml, falling back to the
// OS-specific config directory
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "flowdoc", "config.toml")
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "flowdoc", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}

// DefaultIndexPath returns the search index location under XDG_DATA_HOME
func DefaultIndexPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "flowdoc", "index.db")
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/feedfan/feedfan/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP status server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Operational server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedfan.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		Interval    time.Duration `yaml:"interval" json:"interval" jsonschema:"default=10m,description=Poll interval"`
		Concurrency int           `yaml:"concurrency" json:"concurrency" jsonschema:"default=1,description=Feeds processed in parallel per cycle"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Transport TransportConfig `yaml:"transport" json:"transport" jsonschema:"description=Destination messaging transport configuration"`

	Icon IconConfig `yaml:"icon" json:"icon" jsonschema:"description=Feed icon resolution configuration"`

	Dedup DedupConfig `yaml:"dedup" json:"dedup" jsonschema:"description=New-item detection strategy"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article snippet extraction configuration"`

	Feeds []FeedConfig `yaml:"feeds" json:"feeds" jsonschema:"required,description=Feed sources to poll"`
}

// FeedConfig describes one feed source and its delivery destinations
type FeedConfig struct {
	URL          string   `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Name         string   `yaml:"name" json:"name" jsonschema:"description=Display name (defaults to URL)"`
	Destinations []string `yaml:"destinations" json:"destinations" jsonschema:"required,description=Destination channel ids"`
}

// TransportConfig holds messaging transport settings
type TransportConfig struct {
	APIBase    string        `yaml:"api_base" json:"api_base" jsonschema:"default=https://discord.com/api/v10,description=Messaging API base URL"`
	Token      string        `yaml:"token" json:"token" jsonschema:"required,description=Bot token (can use environment variable)"`
	SenderName string        `yaml:"sender_name" json:"sender_name" jsonschema:"default=FeedFan,description=Display name for created webhook senders"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Transport request timeout"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=FeedFan/1.0,description=User agent for transport requests"`
}

// IconConfig holds icon resolution settings
type IconConfig struct {
	Strategy        string        `yaml:"strategy" json:"strategy" jsonschema:"default=probe,enum=probe,enum=service,description=Resolution strategy: probe well-known paths and page markup or go straight to a logo service"`
	LogoService     string        `yaml:"logo_service" json:"logo_service" jsonschema:"default=https://logo.clearbit.com/,description=Logo service URL prefix for the service strategy"`
	FallbackService string        `yaml:"fallback_service" json:"fallback_service" jsonschema:"default=https://www.google.com/s2/favicons,description=Favicon-by-domain service used as the guaranteed fallback"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Icon probe timeout"`
}

// DedupConfig selects how new items are detected
type DedupConfig struct {
	Strategy string `yaml:"strategy" json:"strategy" jsonschema:"default=watermark,enum=watermark,enum=seen,description=watermark compares each item against the single stored high-water mark; seen keeps a bounded set of recently delivered ids"`
	SeenSize int    `yaml:"seen_size" json:"seen_size" jsonschema:"default=200,description=Recently-seen ids kept per feed for the seen strategy"`
}

// ExtractionConfig holds article snippet extraction settings, used when a
// feed item carries no description or content of its own
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable snippet extraction from linked articles"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=FeedFan/1.0,description=User agent for extraction requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedfan.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.Interval == 0 {
		cfg.Schedule.Interval = 10 * time.Minute
	}
	if cfg.Schedule.Concurrency == 0 {
		cfg.Schedule.Concurrency = 1
	}

	// set defaults for transport
	if cfg.Transport.APIBase == "" {
		cfg.Transport.APIBase = "https://discord.com/api/v10"
	}
	if cfg.Transport.SenderName == "" {
		cfg.Transport.SenderName = "FeedFan"
	}
	if cfg.Transport.Timeout == 0 {
		cfg.Transport.Timeout = 15 * time.Second
	}
	if cfg.Transport.UserAgent == "" {
		cfg.Transport.UserAgent = "FeedFan/1.0"
	}

	// set defaults for icon resolution
	if cfg.Icon.Strategy == "" {
		cfg.Icon.Strategy = "probe"
	}
	if cfg.Icon.LogoService == "" {
		cfg.Icon.LogoService = "https://logo.clearbit.com/"
	}
	if cfg.Icon.FallbackService == "" {
		cfg.Icon.FallbackService = "https://www.google.com/s2/favicons"
	}
	if cfg.Icon.Timeout == 0 {
		cfg.Icon.Timeout = 10 * time.Second
	}

	// set defaults for dedup
	if cfg.Dedup.Strategy == "" {
		cfg.Dedup.Strategy = "watermark"
	}
	if cfg.Dedup.SeenSize == 0 {
		cfg.Dedup.SeenSize = 200
	}

	// set defaults for extraction
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "FeedFan/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}

	// feed display names default to the URL
	for i := range cfg.Feeds {
		if cfg.Feeds[i].Name == "" {
			cfg.Feeds[i].Name = cfg.Feeds[i].URL
		}
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if len(cfg.Feeds) == 0 {
		return fmt.Errorf("at least one feed is required")
	}
	for i, f := range cfg.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
		if len(f.Destinations) == 0 {
			return fmt.Errorf("feeds[%d].destinations is required", i)
		}
	}

	if cfg.Transport.Token == "" {
		return fmt.Errorf("transport.token is required")
	}

	if cfg.Schedule.Interval < time.Minute {
		return fmt.Errorf("schedule.interval must be at least 1 minute")
	}
	if cfg.Schedule.Concurrency < 1 {
		return fmt.Errorf("schedule.concurrency must be at least 1")
	}

	if cfg.Icon.Strategy != "probe" && cfg.Icon.Strategy != "service" {
		return fmt.Errorf("icon.strategy must be probe or service")
	}
	if cfg.Dedup.Strategy != "watermark" && cfg.Dedup.Strategy != "seen" {
		return fmt.Errorf("dedup.strategy must be watermark or seen")
	}
	if cfg.Dedup.SeenSize < 1 {
		return fmt.Errorf("dedup.seen_size must be at least 1")
	}

	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction min_text_length must be non-negative")
		}
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetFeeds returns configured feed sources as domain objects
func (c *Config) GetFeeds() []domain.Feed {
	feeds := make([]domain.Feed, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		feeds = append(feeds, domain.Feed{URL: f.URL, Name: f.Name, Destinations: f.Destinations})
	}
	return feeds
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetTransportConfig returns messaging transport configuration
func (c *Config) GetTransportConfig() TransportConfig {
	return c.Transport
}

// GetIconConfig returns icon resolution configuration
func (c *Config) GetIconConfig() IconConfig {
	return c.Icon
}

// GetExtractionConfig returns snippet extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

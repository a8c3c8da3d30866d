package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yanqian/tenki/internal/domain/weather"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Forecast ForecastConfig `yaml:"forecast"`
	Widget   WidgetConfig   `yaml:"widget"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	CORSOrigins     []string        `yaml:"corsOrigins"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ForecastConfig points at the upstream forecast API.
type ForecastConfig struct {
	BaseURL  string        `yaml:"baseUrl"`
	Timezone string        `yaml:"timezone"`
	Daily    bool          `yaml:"daily"`
	Timeout  time.Duration `yaml:"timeout"`
}

// WidgetConfig holds the selectable locations and viewer state settings.
type WidgetConfig struct {
	DefaultLocation string             `yaml:"defaultLocation"`
	IdleTTL         time.Duration      `yaml:"idleTtl"`
	Locations       []weather.Location `yaml:"locations"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadDotEnv populates the environment from DOTENV_PATH or ./.env. Variables
// already set in the environment win.
func loadDotEnv() error {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		path = ".env"
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load dotenv file: %w", err)
	}
	return nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("FORECAST_BASE_URL"); v != "" {
		cfg.Forecast.BaseURL = v
	}
	if v := os.Getenv("FORECAST_TIMEZONE"); v != "" {
		cfg.Forecast.Timezone = v
	}
	if v := os.Getenv("FORECAST_DAILY"); v != "" {
		cfg.Forecast.Daily = parseBool(v)
	}
	if v := os.Getenv("FORECAST_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Forecast.Timeout = parsed
		}
	}
	if v := os.Getenv("WIDGET_DEFAULT_LOCATION"); v != "" {
		cfg.Widget.DefaultLocation = v
	}
	if v := os.Getenv("WIDGET_IDLE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Widget.IdleTTL = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Forecast: ForecastConfig{
			BaseURL:  "https://api.open-meteo.com/v1/forecast",
			Timezone: "Asia/Tokyo",
			Daily:    true,
			Timeout:  10 * time.Second,
		},
		Widget: WidgetConfig{
			DefaultLocation: "tokyo",
			IdleTTL:         30 * time.Minute,
			Locations: []weather.Location{
				{ID: "tokyo", Name: "東京", Latitude: 35.6895, Longitude: 139.6917},
				{ID: "osaka", Name: "大阪", Latitude: 34.6937, Longitude: 135.5023},
				{ID: "sapporo", Name: "札幌", Latitude: 43.0618, Longitude: 141.3545},
				{ID: "nagoya", Name: "名古屋", Latitude: 35.1815, Longitude: 136.9066},
				{ID: "fukuoka", Name: "福岡", Latitude: 33.5902, Longitude: 130.4017},
				{ID: "naha", Name: "那覇", Latitude: 26.2124, Longitude: 127.6809},
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Forecast.BaseURL) == "" {
		return errors.New("forecast.baseUrl cannot be empty")
	}
	if c.Forecast.Daily && strings.TrimSpace(c.Forecast.Timezone) == "" {
		return errors.New("forecast.timezone cannot be empty when daily forecast is enabled")
	}
	if c.Forecast.Timeout < 0 {
		return errors.New("forecast.timeout cannot be negative")
	}
	if c.Widget.IdleTTL < 0 {
		return errors.New("widget.idleTtl cannot be negative")
	}
	if len(c.Widget.Locations) == 0 {
		return errors.New("widget.locations cannot be empty")
	}
	seen := make(map[string]struct{}, len(c.Widget.Locations))
	for i, loc := range c.Widget.Locations {
		if strings.TrimSpace(loc.ID) == "" {
			return fmt.Errorf("widget.locations[%d].id cannot be empty", i)
		}
		if strings.TrimSpace(loc.Name) == "" {
			return fmt.Errorf("widget.locations[%d].name cannot be empty", i)
		}
		if _, dup := seen[loc.ID]; dup {
			return fmt.Errorf("widget.locations[%d].id %q is duplicated", i, loc.ID)
		}
		seen[loc.ID] = struct{}{}
	}
	if _, ok := seen[c.Widget.DefaultLocation]; !ok {
		return fmt.Errorf("widget.defaultLocation %q is not a configured location", c.Widget.DefaultLocation)
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}

// Package config collects settings from defaults, an optional YAML file and
// the environment. Command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"riftrewind/pkg/game/api"
	"riftrewind/pkg/game/i18n"
	"riftrewind/pkg/game/storage"
)

// Config holds every setting the commands read. A zero RequestTimeout means
// requests never time out.
type Config struct {
	APIURL         string        `yaml:"api_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	StoragePath    string        `yaml:"storage_path"`
	ZonesFile      string        `yaml:"zones_file"`
	MapImage       string        `yaml:"map_image"`
	Locale         string        `yaml:"locale"`
	Window         WindowConfig  `yaml:"window"`
	MockServer     MockConfig    `yaml:"mock_server"`
}

// WindowConfig is the initial size of the map window.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MockConfig configures the development backend. An empty DatabaseURL keeps
// analyses in memory.
type MockConfig struct {
	Port        int    `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
}

// Default returns the built-in settings.
func Default() *Config {
	storagePath, err := storage.DefaultPath()
	if err != nil {
		storagePath = "riftrewind-storage.json"
	}
	return &Config{
		APIURL:      api.DefaultBaseURL,
		StoragePath: storagePath,
		Locale:      i18n.DefaultLocale,
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
		},
		MockServer: MockConfig{
			Port: 5000,
		},
	}
}

// Load applies the YAML file at path (if any) and then the environment on
// top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.APIURL = getEnv("RIFTREWIND_API_URL", c.APIURL)
	c.StoragePath = getEnv("RIFTREWIND_STORAGE", c.StoragePath)
	c.ZonesFile = getEnv("RIFTREWIND_ZONES", c.ZonesFile)
	c.MapImage = getEnv("RIFTREWIND_MAP_IMAGE", c.MapImage)
	c.Locale = getEnv("RIFTREWIND_LOCALE", c.Locale)
	c.MockServer.Port = getEnvInt("PORT", c.MockServer.Port)
	c.MockServer.DatabaseURL = getEnv("DATABASE_URL", c.MockServer.DatabaseURL)
}

// Validate rejects settings the client cannot run with.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url must not be empty")
	}
	if c.StoragePath == "" {
		return fmt.Errorf("storage_path must not be empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.MockServer.Port <= 0 || c.MockServer.Port > 65535 {
		return fmt.Errorf("mock_server.port out of range: %d", c.MockServer.Port)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

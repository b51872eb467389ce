package infra

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var userAgent = GetPlatformUserAgent()

// GetUserAgent returns the User-Agent sent to the market-data API.
func GetUserAgent() string {
	return userAgent
}

// GetPlatformUserAgent generates a browser-like User-Agent string based on current OS.
func GetPlatformUserAgent() string {
	chromeVer := "120.0.0.0"

	switch runtime.GOOS {
	case "windows":
		return fmt.Sprintf("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36", chromeVer)
	case "linux":
		linuxArch := "x86_64"
		if runtime.GOARCH == "arm64" {
			linuxArch = "aarch64"
		}
		return fmt.Sprintf("Mozilla/5.0 (X11; Linux %s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36", linuxArch, chromeVer)
	case "darwin":
		return fmt.Sprintf("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36", chromeVer)
	default:
		return "Mozilla/5.0 (compatible; CryptoDash/1.0)"
	}
}

// Config holds all dashboard settings.
// File values are loaded first, then environment variables override them.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		CoinGecko struct {
			BaseURL             string `yaml:"base_url"`
			FetchTimeoutSec     int    `yaml:"fetch_timeout_sec"`
			RefreshIntervalSec  int    `yaml:"refresh_interval_sec"`
			ManualRefreshPerMin int    `yaml:"manual_refresh_per_min"`
		} `yaml:"coingecko"`
	} `yaml:"api"`

	UI struct {
		DefaultSymbol   string `yaml:"default_symbol"`
		DefaultInterval string `yaml:"default_interval"`
		Locale          string `yaml:"locale"`
		Theme           string `yaml:"theme"`
	} `yaml:"ui"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	var cfg Config
	cfg.App.Name = "crypto-dash"
	cfg.App.Version = "1.0.0"
	cfg.API.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	cfg.API.CoinGecko.FetchTimeoutSec = 10
	cfg.API.CoinGecko.RefreshIntervalSec = 30
	cfg.API.CoinGecko.ManualRefreshPerMin = 6
	cfg.UI.DefaultSymbol = "BINANCE:BTCUSDT"
	cfg.UI.DefaultInterval = "15"
	cfg.UI.Locale = "br"
	cfg.UI.Theme = "dark"
	cfg.Server.Addr = "127.0.0.1:8080"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	return &cfg
}

// LoadConfig reads the yaml file at path on top of DefaultConfig.
// A missing file is not an error. A .env file in the working directory,
// if present, is loaded before environment overrides are applied.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	cg := c.API.CoinGecko
	if !hasPrefix(cg.BaseURL, "http://") && !hasPrefix(cg.BaseURL, "https://") {
		return fmt.Errorf("invalid CoinGecko base URL: %q", cg.BaseURL)
	}
	if cg.RefreshIntervalSec <= 0 {
		return fmt.Errorf("refresh interval must be positive")
	}
	if cg.FetchTimeoutSec <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}
	if cg.ManualRefreshPerMin < 0 {
		return fmt.Errorf("manual refresh rate must not be negative")
	}

	if !strings.Contains(c.UI.DefaultSymbol, ":") {
		return fmt.Errorf("default symbol must look like EXCHANGE:PAIR, got %q", c.UI.DefaultSymbol)
	}
	if c.UI.DefaultInterval == "" {
		return fmt.Errorf("default interval is required")
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server address is required")
	}

	return nil
}

// RefreshInterval is the poll period as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.API.CoinGecko.RefreshIntervalSec) * time.Second
}

// FetchTimeout is the per-request timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.API.CoinGecko.FetchTimeoutSec) * time.Second
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[0:len(prefix)] == prefix
}

// overrideWithEnv applies environment variables on top of file values.
func overrideWithEnv(cfg *Config) error {
	if v := os.Getenv("DASH_COINGECKO_URL"); v != "" {
		cfg.API.CoinGecko.BaseURL = v
	}
	if v := os.Getenv("DASH_REFRESH_SEC"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DASH_REFRESH_SEC: %w", err)
		}
		cfg.API.CoinGecko.RefreshIntervalSec = sec
	}
	if v := os.Getenv("DASH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DASH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://www.datos.gov.co/resource/32sa-8pi3.json"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Source is the Socrata dataset publishing the rate.
type Source struct {
	BaseURL      string `mapstructure:"base_url"`
	AppToken     string `mapstructure:"app_token"`
	MaxRangeRows int    `mapstructure:"max_range_rows"`
}

type Refresh struct {
	IntervalSec int `mapstructure:"interval_sec"`
	HistorySize int `mapstructure:"history_size"`
	TimeoutSec  int `mapstructure:"timeout_sec"`
}

// Cache configures the date and range lookup cache. MaxItems is a budget of
// cached records; <= 0 disables the cache.
type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
	TTLSec   int   `mapstructure:"ttl_sec"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Source     Source     `mapstructure:"source"`
	Refresh    Refresh    `mapstructure:"refresh"`
	Cache      Cache      `mapstructure:"cache"`
	Logging    Logging    `mapstructure:"logging"`
}

// Init reads config.yaml and .env from the working directory. Both are
// optional; environment variables override the file and defaults.
func Init() (*AppConfig, error) {
	return Load("config.yaml", ".env")
}

func Load(configFile, envFile string) (*AppConfig, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s file: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("source.base_url", DefaultSourceURL)
	v.SetDefault("source.app_token", "")
	v.SetDefault("source.max_range_rows", 5000)
	v.SetDefault("refresh.interval_sec", 3600)
	v.SetDefault("refresh.history_size", 60)
	v.SetDefault("refresh.timeout_sec", 30)
	v.SetDefault("cache.max_items", 1024)
	v.SetDefault("cache.ttl_sec", 86400)
	v.SetDefault("logging.level", "info")

	// http env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// source env vars
	_ = v.BindEnv("source.base_url", "SOURCE_BASE_URL")
	_ = v.BindEnv("source.app_token", "SOURCE_APP_TOKEN")
	_ = v.BindEnv("source.max_range_rows", "SOURCE_MAX_RANGE_ROWS")

	// refresh env vars
	_ = v.BindEnv("refresh.interval_sec", "REFRESH_INTERVAL_SEC")
	_ = v.BindEnv("refresh.history_size", "REFRESH_HISTORY_SIZE")
	_ = v.BindEnv("refresh.timeout_sec", "REFRESH_TIMEOUT_SEC")

	// cache env vars
	_ = v.BindEnv("cache.max_items", "CACHE_MAX_ITEMS")
	_ = v.BindEnv("cache.ttl_sec", "CACHE_TTL_SEC")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

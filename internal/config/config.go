package config

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// KMA API Hub configuration.
	APIKey           string
	BaseURL          string
	CGIBaseURL       string
	OpenAPIBaseURL   string
	HubURL           string
	Timeout          time.Duration
	SatelliteTimeout time.Duration
}

var defaults = map[string]string{
	"HTTP_ADDR":             ":8080",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "json",
	"SHUTDOWN_TIMEOUT":      "10s",
	"KMA_BASE_URL":          "https://apihub.kma.go.kr/api/typ01/url",
	"KMA_CGI_BASE_URL":      "https://apihub.kma.go.kr/api/typ01/cgi-bin/url",
	"KMA_OPENAPI_BASE_URL":  "https://apihub.kma.go.kr/api/typ02/openApi",
	"KMA_HUB_URL":           "https://apihub.kma.go.kr/api",
	"KMA_TIMEOUT":           "30s",
	"KMA_SATELLITE_TIMEOUT": "60s",
}

// Load reads configuration from the environment, applying defaults where unset.
// A .env file (ENV_FILE, default ".env") is read first when present and never
// overrides variables already set. KMA_CONFIG may name a YAML file whose keys
// mirror the environment variable names.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := os.Getenv("KMA_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.New("invalid KMA_CONFIG: " + err.Error())
		}
	}

	shutdownTimeout, err := parsePositiveDuration(v, "SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}
	timeout, err := parsePositiveDuration(v, "KMA_TIMEOUT")
	if err != nil {
		return nil, err
	}
	satelliteTimeout, err := parsePositiveDuration(v, "KMA_SATELLITE_TIMEOUT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		ShutdownTimeout: shutdownTimeout,

		APIKey:           v.GetString("KMA_API_KEY"),
		BaseURL:          v.GetString("KMA_BASE_URL"),
		CGIBaseURL:       v.GetString("KMA_CGI_BASE_URL"),
		OpenAPIBaseURL:   v.GetString("KMA_OPENAPI_BASE_URL"),
		HubURL:           v.GetString("KMA_HUB_URL"),
		Timeout:          timeout,
		SatelliteTimeout: satelliteTimeout,
	}

	if cfg.APIKey == "" {
		return nil, errors.New("KMA_API_KEY is required")
	}
	for name, raw := range map[string]string{
		"KMA_BASE_URL":         cfg.BaseURL,
		"KMA_CGI_BASE_URL":     cfg.CGIBaseURL,
		"KMA_OPENAPI_BASE_URL": cfg.OpenAPIBaseURL,
		"KMA_HUB_URL":          cfg.HubURL,
	} {
		if u, err := url.Parse(raw); err != nil || !u.IsAbs() {
			return nil, errors.New("invalid " + name)
		}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid LOG_LEVEL")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("invalid LOG_FORMAT")
	}

	return cfg, nil
}

func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.New("invalid ENV_FILE: " + err.Error())
	}
	return nil
}

func parsePositiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

// Package config provides configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/fd1az/asset-console/internal/apperror"
	"github.com/fd1az/asset-console/internal/asset"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Assets    AssetsConfig    `mapstructure:"assets"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

// KnownAsset describes an asset that already exists on chain.
type KnownAsset struct {
	ID       string `mapstructure:"id"`
	Symbol   string `mapstructure:"symbol"`
	Name     string `mapstructure:"name"`
	Decimals uint8  `mapstructure:"decimals"`
}

// AssetsConfig holds the asset creation settings.
type AssetsConfig struct {
	Known    []KnownAsset `mapstructure:"known"`
	OpenID   string       `mapstructure:"open_id"` // empty: one past the highest known id
	Accounts []string     `mapstructure:"accounts"`
	Output   string       `mapstructure:"output"` // empty: stdout
}

// OpenIDInt returns the configured id suggestion, or nil when unset.
func (c *AssetsConfig) OpenIDInt() (*big.Int, error) {
	if c.OpenID == "" {
		return nil, nil
	}
	return asset.ParseID(c.OpenID, asset.IDBitLength)
}

// Registry builds the registry of existing assets.
func (c *AssetsConfig) Registry() (*asset.Registry, error) {
	r := asset.NewRegistry()
	for i, k := range c.Known {
		id, err := asset.ParseID(k.ID, asset.IDBitLength)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.CodeRegistryLoadFailed, fmt.Sprintf("assets.known[%d]", i))
		}
		if id.Sign() == 0 {
			return nil, apperror.Validation(apperror.CodeInvalidAssetID, fmt.Sprintf("assets.known[%d]", i))
		}
		if err := r.Register(asset.NewAsset(id, k.Symbol, k.Name, k.Decimals)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	TraceProvider  string `mapstructure:"trace_provider"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	OTLPHeaders    string `mapstructure:"otlp_headers"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := newViper(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, apperror.Config("read", err)
		}
		// Config file not found is OK, use env vars
	}

	return decode(v)
}

// Watch reloads the configuration file whenever it changes and passes the
// result to fn. It returns false when there is no file to watch.
// fn runs on the watcher goroutine.
func Watch(configPath string, fn func(*Config, error)) bool {
	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		return false
	}

	v.OnConfigChange(func(fsnotify.Event) {
		fn(decode(v))
	})
	v.WatchConfig()
	return true
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("ASSETS")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperror.Config("unmarshal", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "ASSETS_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "ASSETS_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "ASSETS_LOG_LEVEL", "LOG_LEVEL")

	// Assets
	v.BindEnv("assets.open_id", "ASSETS_OPEN_ID")
	v.BindEnv("assets.accounts", "ASSETS_ACCOUNTS")
	v.BindEnv("assets.output", "ASSETS_OUTPUT")

	// Telemetry
	v.BindEnv("telemetry.enabled", "ASSETS_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "ASSETS_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.trace_provider", "ASSETS_TRACE_PROVIDER")
	v.BindEnv("telemetry.otlp_endpoint", "ASSETS_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("telemetry.otlp_headers", "ASSETS_OTEL_HEADERS", "OTEL_EXPORTER_OTLP_HEADERS")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "asset-console")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("assets.known", []map[string]any{})
	v.SetDefault("assets.accounts", []string{})

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "asset-console")
	v.SetDefault("telemetry.trace_provider", "empty")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := c.Assets.OpenIDInt(); err != nil {
		return apperror.Config("assets.open_id", err)
	}
	if _, err := c.Assets.Registry(); err != nil {
		return apperror.Config("assets.known", err)
	}
	switch c.Telemetry.TraceProvider {
	case "", "empty", "console", "zipkin", "otlp-grpc", "otlp-http":
	default:
		return apperror.Config("telemetry.trace_provider",
			fmt.Errorf("unsupported provider %q", c.Telemetry.TraceProvider))
	}
	if c.Telemetry.Enabled && c.Telemetry.PrometheusPort <= 0 {
		return apperror.Config("telemetry.prometheus_port",
			fmt.Errorf("invalid port %d", c.Telemetry.PrometheusPort))
	}
	return nil
}

// Package config turns the viper state into a typed, validated configuration.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	ProviderEero     = "eero"
	ProviderFritzbox = "fritzbox"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultFetchTimeout     = 10 * time.Second
	DefaultWindow           = 2 * time.Hour
	DefaultTokenMaxAge      = 24 * time.Hour
	DefaultSpeedTestTimeout = 2 * time.Minute
)

type Config struct {
	Listen            string        `mapstructure:"listen"`
	DataDir           string        `mapstructure:"data-dir"`
	TokenFile         string        `mapstructure:"token-file"`
	NetworkConfigFile string        `mapstructure:"network-config-file"`
	NetworkID         string        `mapstructure:"network-id"`
	APIBase           string        `mapstructure:"api-base"`
	FetchTimeout      time.Duration `mapstructure:"fetch-timeout"`
	Window            time.Duration `mapstructure:"window"`
	RefreshInterval   time.Duration `mapstructure:"refresh-interval"`
	TokenMaxAge       time.Duration `mapstructure:"token-max-age"`
	SpeedTestTimeout  time.Duration `mapstructure:"speedtest-timeout"`
	Provider          string        `mapstructure:"provider"`
	FritzboxURL       string        `mapstructure:"fritzbox-url"`
	FritzboxUsername  string        `mapstructure:"fritzbox-username"`
	FritzboxPassword  string        `mapstructure:"fritzbox-password"`
	ServiceName       string        `mapstructure:"service-name"`
	StaticDir         string        `mapstructure:"static-dir"`
	LogLevel          string        `mapstructure:"log-level"`
	LogFormat         string        `mapstructure:"log-format"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("listen", ":8080")
	v.SetDefault("data-dir", "/opt/minirack")
	v.SetDefault("token-file", "")
	v.SetDefault("network-config-file", "")
	v.SetDefault("network-id", "")
	v.SetDefault("api-base", "https://api-user.e2ro.com/2.2")
	v.SetDefault("fetch-timeout", DefaultFetchTimeout)
	v.SetDefault("window", DefaultWindow)
	v.SetDefault("refresh-interval", time.Duration(0))
	v.SetDefault("token-max-age", DefaultTokenMaxAge)
	v.SetDefault("speedtest-timeout", DefaultSpeedTestTimeout)
	v.SetDefault("provider", ProviderEero)
	v.SetDefault("fritzbox-url", "")
	v.SetDefault("fritzbox-username", "")
	v.SetDefault("fritzbox-password", "")
	v.SetDefault("service-name", "eero-dashboard")
	v.SetDefault("static-dir", "")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", LogFormatJSON)
}

// Load decodes v, fills in the data-dir relative file paths and validates the result.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if c.TokenFile == "" {
		c.TokenFile = filepath.Join(c.DataDir, ".eero_token")
	}
	if c.NetworkConfigFile == "" {
		c.NetworkConfigFile = filepath.Join(c.DataDir, ".config.json")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ValidateLogFormat accepts json and text.
func ValidateLogFormat(format string) error {
	switch format {
	case LogFormatJSON, LogFormatText:
		return nil
	}
	return fmt.Errorf("unknown log-format %q", format)
}

func (c Config) Validate() error {
	var errs []error
	if c.Listen == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, fmt.Errorf("fetch-timeout must be positive, got %s", c.FetchTimeout))
	}
	if c.Window <= 0 {
		errs = append(errs, fmt.Errorf("window must be positive, got %s", c.Window))
	}
	if c.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("refresh-interval must not be negative, got %s", c.RefreshInterval))
	}
	if c.TokenMaxAge <= 0 {
		errs = append(errs, fmt.Errorf("token-max-age must be positive, got %s", c.TokenMaxAge))
	}
	if c.SpeedTestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("speedtest-timeout must be positive, got %s", c.SpeedTestTimeout))
	}
	if err := ValidateLogFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	switch c.Provider {
	case ProviderEero:
		if c.APIBase == "" {
			errs = append(errs, errors.New("api-base is required for the eero provider"))
		}
	case ProviderFritzbox:
		if c.FritzboxUsername == "" || c.FritzboxPassword == "" {
			errs = append(errs, errors.New("fritzbox-username and fritzbox-password are required for the fritzbox provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q", c.Provider))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

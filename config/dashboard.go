package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// DashboardConfig holds the dashboard BFF configuration
type DashboardConfig struct {
	Application ApplicationConfig   `mapstructure:"application"`
	Server      ServerConfig        `mapstructure:"server"`
	Logging     LoggingConfig       `mapstructure:"logging"`
	Catalog     CatalogClientConfig `mapstructure:"catalog"`
	Session     SessionConfig       `mapstructure:"session"`
}

// CatalogClientConfig points the dashboard at the catalog service
type CatalogClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	// APIKey is sent as X-API-KEY on seller orders
	APIKey string `mapstructure:"api_key"`
}

// SessionConfig controls the auth cookies and the per-session workspaces
type SessionConfig struct {
	TokenMaxAge   time.Duration `mapstructure:"token_max_age"`
	RefreshMaxAge time.Duration `mapstructure:"refresh_max_age"`
	Secure        bool          `mapstructure:"secure"`
	// IdleTimeout drops the cached screens of a session nobody used for that long
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// LoadDashboardConfig loads dashboard.yaml, environment overrides and
// defaults
func LoadDashboardConfig() (*DashboardConfig, error) {
	return loadDashboard(newViper("dashboard"))
}

func loadDashboard(v *viper.Viper) (*DashboardConfig, error) {
	setCommonDefaults(v, "Dashboard", 3000)
	v.SetDefault("catalog.base_url", "http://localhost:8080")
	v.SetDefault("catalog.timeout", "15s")
	v.SetDefault("catalog.api_key", "")
	v.SetDefault("session.token_max_age", "24h")
	v.SetDefault("session.refresh_max_age", "168h")
	v.SetDefault("session.secure", false)
	v.SetDefault("session.idle_timeout", "30m")
	v.SetDefault("session.sweep_interval", "5m")

	if err := read(v); err != nil {
		return nil, err
	}

	var config DashboardConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Catalog.BaseURL == "" {
		return nil, errors.New("catalog base url is required")
	}
	if config.Catalog.APIKey == "" {
		return nil, errors.New("catalog api key is required")
	}

	return &config, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the surfcast server and its dependencies.
type Config struct {
	// Listen is the address the surfcast server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level for the server (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// SessionKey is the key used to sign and encrypt session cookies.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	// Zero means the cookie lives for the browser session only.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// Forecast holds the configuration for the external forecast provider.
	Forecast *ForecastConfig `yaml:"forecast" mapstructure:"forecast"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the SQLite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// ForecastConfig holds the configuration for the external forecast provider.
type ForecastConfig struct {
	// URL is the base URL of the forecast API.
	URL string `yaml:"url" mapstructure:"url"`
	// Days is the number of forecast days to request.
	Days int `yaml:"days" mapstructure:"days"`
	// Timeout is the timeout for a single forecast request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it searches the default locations for a config file.
// A missing config file is not an error, defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("SURFCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.surfcast")
		v.AddConfigPath("/etc/surfcast")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if c.SessionKey == "" {
		log.Warn("no session key configured, session cookies will not be tamper-proof")
	}

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("database.path", "./data/surfcast.db")
	v.SetDefault("session_max_age", 0)
	v.SetDefault("forecast.url", "https://services.surfline.com/kbyg/spots/forecasts")
	v.SetDefault("forecast.days", 1)
	v.SetDefault("forecast.timeout", 10*time.Second)
}

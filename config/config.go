// Package config handles configuration loading for both binaries
package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// ApplicationConfig holds the application-level configuration
// It contains settings that define the application's identity and behavior
type ApplicationConfig struct {
	// Name specifies the name of the application
	Name string `mapstructure:"name"`
	// Version specifies the version of the application
	Version string `mapstructure:"version"`
}

// ServerConfig holds the server configuration
// It contains settings for HTTP server behavior including timeouts and port
type ServerConfig struct {
	// Port specifies the port number the server will listen on
	Port int `mapstructure:"port"`
	// ReadTimeout defines the maximum duration for reading the entire request, including the body, in seconds
	ReadTimeout int `mapstructure:"read_timeout"` // in seconds
	// WriteTimeout defines the maximum duration before timing out writes of the response, in seconds
	WriteTimeout int `mapstructure:"write_timeout"` // seconds
	// ShutdownTimeout defines the maximum duration the server will wait for active connections to finish during shutdown, in seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // seconds
}

// LoggingConfig selects the slog level and handler
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is json or text
	Format string `mapstructure:"format"`
}

// newViper returns a viper instance that reads <name>.yaml from the usual
// places and lets environment variables override any key, with dots
// replaced by underscores (server.port -> SERVER_PORT).
func newViper(name string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setCommonDefaults(v *viper.Viper, name string, port int) {
	v.SetDefault("application.name", name)
	v.SetDefault("application.version", "1.0")
	v.SetDefault("server.port", port)
	v.SetDefault("server.read_timeout", 15)     // seconds
	v.SetDefault("server.write_timeout", 15)    // seconds
	v.SetDefault("server.shutdown_timeout", 30) // seconds
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// read loads the config file if there is one. A missing file is fine;
// environment variables and defaults still apply.
func read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("Config file not found, using environment variables and defaults")
			return nil
		}
		return err
	}
	return nil
}

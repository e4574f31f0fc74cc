package config

import (
	"errors"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/pkg/kafka"
	"github.com/izaldotcom/gerbang-backoffice/pkg/redis"
	"github.com/spf13/viper"
)

// CatalogConfig holds the catalog service configuration
type CatalogConfig struct {
	Application    ApplicationConfig     `mapstructure:"application"`
	Server         ServerConfig          `mapstructure:"server"`
	Logging        LoggingConfig         `mapstructure:"logging"`
	Infrastructure InfrastructureConfig  `mapstructure:"infrastructure"`
	Security       CatalogSecurityConfig `mapstructure:"security"`
	Cache          CacheConfig           `mapstructure:"cache"`
}

// InfrastructureConfig holds the infrastructure connection settings
type InfrastructureConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    redis.Config   `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

// PostgresConfig holds the PostgreSQL database configuration
// It contains all necessary parameters to establish a PostgreSQL connection
type PostgresConfig struct {
	// Host specifies the database server host
	Host string `mapstructure:"host"`
	// Port specifies the database server port
	Port int `mapstructure:"port"`
	// User specifies the database user
	User string `mapstructure:"user"`
	// Password specifies the database password
	Password string `mapstructure:"password"`
	// DBName specifies the database name
	DBName string `mapstructure:"dbname"`
	// Schema specifies the database schema
	Schema string `mapstructure:"schema"`
	// SSLMode specifies the SSL mode for database connection
	SSLMode string `mapstructure:"sslmode"`
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"` // minutes
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // minutes
	// Debug enables or disables debug mode for database operations
	Debug bool `mapstructure:"debug"`
	// IsUseMigrate specifies whether to use database migration
	IsUseMigrate bool `mapstructure:"is_use_migrate"`
}

// KafkaConfig is the producer setup plus the topics written to
type KafkaConfig struct {
	kafka.Config `mapstructure:",squash"`
	Topics       TopicsConfig `mapstructure:"topics"`
}

type TopicsConfig struct {
	OrderCreated string `mapstructure:"order_created"`
}

// CatalogSecurityConfig holds token secrets and the seller API key
type CatalogSecurityConfig struct {
	JWT    JWTConfig    `mapstructure:"jwt"`
	Seller SellerConfig `mapstructure:"seller"`
}

type JWTConfig struct {
	AccessSecret  string        `mapstructure:"access_secret"`
	RefreshSecret string        `mapstructure:"refresh_secret"`
	AccessExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshExpiry time.Duration `mapstructure:"refresh_expiry"`
	// Stateful keeps refresh tokens in Redis so they can be revoked
	Stateful bool `mapstructure:"stateful"`
}

// SellerConfig is the single seller allowed on /seller/order. An empty
// APIKey rejects every order.
type SellerConfig struct {
	APIKey string `mapstructure:"api_key"`
	Name   string `mapstructure:"name"`
}

type CacheConfig struct {
	ProfileTTL time.Duration `mapstructure:"profile_ttl"`
}

// LoadCatalogConfig loads catalog-service.yaml, environment overrides and
// defaults, then checks the required secrets
func LoadCatalogConfig() (*CatalogConfig, error) {
	return loadCatalog(newViper("catalog-service"))
}

func loadCatalog(v *viper.Viper) (*CatalogConfig, error) {
	setCommonDefaults(v, "Catalog Service", 8080)
	v.SetDefault("infrastructure.postgres.host", "localhost")
	v.SetDefault("infrastructure.postgres.port", 5432)
	// No defaults for user and password - they must be provided
	v.SetDefault("infrastructure.postgres.user", "")
	v.SetDefault("infrastructure.postgres.password", "")
	v.SetDefault("infrastructure.postgres.dbname", "gerbang")
	v.SetDefault("infrastructure.postgres.schema", "public")
	v.SetDefault("infrastructure.postgres.sslmode", "disable")
	v.SetDefault("infrastructure.postgres.max_idle_conns", 10)
	v.SetDefault("infrastructure.postgres.max_open_conns", 100)
	v.SetDefault("infrastructure.postgres.conn_max_idle_time", 5) // minutes
	v.SetDefault("infrastructure.postgres.conn_max_lifetime", 60) // minutes
	v.SetDefault("infrastructure.postgres.debug", false)
	v.SetDefault("infrastructure.postgres.is_use_migrate", true)
	v.SetDefault("infrastructure.redis.addrs", []string{"localhost:6379"})
	v.SetDefault("infrastructure.redis.password", "")
	v.SetDefault("infrastructure.redis.db", 0)
	v.SetDefault("infrastructure.kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("infrastructure.kafka.client_id", "catalog-service")
	v.SetDefault("infrastructure.kafka.allow_auto_topic_creation", true)
	v.SetDefault("infrastructure.kafka.produce_timeout", "10s")
	v.SetDefault("infrastructure.kafka.topics.order_created", "order.created")
	v.SetDefault("security.jwt.access_secret", "")
	v.SetDefault("security.jwt.refresh_secret", "")
	v.SetDefault("security.jwt.access_expiry", "24h")
	v.SetDefault("security.jwt.refresh_expiry", "168h")
	v.SetDefault("security.jwt.stateful", true)
	v.SetDefault("security.seller.api_key", "")
	v.SetDefault("security.seller.name", "dashboard")
	v.SetDefault("cache.profile_ttl", "10m")

	if err := read(v); err != nil {
		return nil, err
	}

	var config CatalogConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate required secrets
	if config.Infrastructure.Postgres.User == "" {
		return nil, errors.New("database user is required")
	}
	if config.Infrastructure.Postgres.Password == "" {
		return nil, errors.New("database password is required")
	}
	if config.Security.JWT.AccessSecret == "" || config.Security.JWT.RefreshSecret == "" {
		return nil, errors.New("jwt access and refresh secrets are required")
	}

	return &config, nil
}

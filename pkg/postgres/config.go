// Package postgres provides PostgreSQL database infrastructure components
package postgres

// Config holds the PostgreSQL database configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Schema   string
	SSLMode  string
	// Pool sizes
	MaxIdleConns int
	MaxOpenConns int
	// ConnMaxIdleTime and ConnMaxLifetime are in minutes
	ConnMaxIdleTime int
	ConnMaxLifetime int
	// Debug logs every SQL statement
	Debug bool
	// ConnectTimeout is in seconds; zero leaves it to libpq
	ConnectTimeout int
}

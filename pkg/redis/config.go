package redis

import (
	"time"
)

// Config is the redis section of a service config. Zero timeouts and pool
// size leave the go-redis defaults in place.
type Config struct {
	Addrs        []string      `mapstructure:"addrs"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	PoolSize     int           `mapstructure:"pool_size"`
}

// Options expands the config into client options
func (c Config) Options() []Option {
	return []Option{
		WithAddrs(c.Addrs),
		WithUsername(c.Username),
		WithPassword(c.Password),
		WithDB(c.DB),
		WithDialTimeout(c.DialTimeout),
		WithReadTimeout(c.ReadTimeout),
		WithWriteTimeout(c.WriteTimeout),
		WithPoolSize(c.PoolSize),
	}
}

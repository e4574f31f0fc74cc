package kafka

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"

	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// Config holds Kafka producer configuration
type Config struct {
	Brokers                []string      `mapstructure:"brokers"`
	ClientID               string        `mapstructure:"client_id"`
	AllowAutoTopicCreation bool          `mapstructure:"allow_auto_topic_creation"`
	RequestRetries         int           `mapstructure:"request_retries"`
	DialTimeout            time.Duration `mapstructure:"dial_timeout"`
	ProduceTimeout         time.Duration `mapstructure:"produce_timeout"`
	SASLUser               string        `mapstructure:"sasl_user"`
	SASLPassword           string        `mapstructure:"sasl_password"`
}

// Options translates config into kgo options, skipping zero values
func (config Config) Options() []kgo.Opt {
	opts := []kgo.Opt{
		WithBrokers(config.Brokers...),
	}

	if config.ClientID != "" {
		opts = append(opts, WithClientID(config.ClientID))
	}
	if config.AllowAutoTopicCreation {
		opts = append(opts, WithAllowAutoTopicCreation())
	}
	if config.RequestRetries > 0 {
		opts = append(opts, WithRequestRetries(config.RequestRetries))
	}
	if config.DialTimeout > 0 {
		opts = append(opts, WithDialTimeout(config.DialTimeout))
	}
	if config.ProduceTimeout > 0 {
		opts = append(opts, WithProduceTimeout(config.ProduceTimeout))
	}
	if config.SASLUser != "" {
		opts = append(opts, WithSASL(plain.Auth{User: config.SASLUser, Pass: config.SASLPassword}.AsMechanism()))
	}

	return opts
}

// NewWithConfig creates a new Kafka client from a config struct
func NewWithConfig(config Config, log logger.LoggerInterface) (KafkaClient, error) {
	return New(log, config.Options()...)
}

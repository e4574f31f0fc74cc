// Package kafka publishes catalog events through pkg/kafka
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/domain/repository"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// DefaultOrderTopic receives one record per stored seller order
const DefaultOrderTopic = "order.created"

// Producer is the part of pkg/kafka.KafkaClient the publisher needs
type Producer interface {
	ProduceJSON(ctx context.Context, topic, key string, payload any) error
}

type orderPublisher struct {
	producer Producer
	topic    string
	logger   logger.LoggerInterface
}

// NewOrderPublisher creates an OrderEventPublisher. Records are keyed by
// product id so the orders of one product stay in one partition.
func NewOrderPublisher(producer Producer, topic string, logger logger.LoggerInterface) repository.OrderEventPublisher {
	if topic == "" {
		topic = DefaultOrderTopic
	}
	return &orderPublisher{producer: producer, topic: topic, logger: logger}
}

func (p *orderPublisher) PublishOrderCreated(ctx context.Context, trx *model.Transaction, productName string) error {
	event := catalog.OrderCreatedEvent{
		TrxID:        trx.ID,
		RefID:        trx.RefID,
		SupplierID:   trx.SupplierID,
		ProductID:    trx.ProductID,
		Destination:  trx.Destination,
		QuantityLoop: trx.QuantityLoop,
		Status:       trx.Status,
		Seller:       trx.Seller,
		CreatedAt:    trx.CreatedAt.UTC().Format(time.RFC3339),
	}

	if err := p.producer.ProduceJSON(ctx, p.topic, trx.ProductID, event); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish order event", "trx_id", trx.ID, "topic", p.topic, "error", err)
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	p.logger.InfoContext(ctx, "Order event published", "trx_id", trx.ID, "product", productName, "topic", p.topic)
	return nil
}

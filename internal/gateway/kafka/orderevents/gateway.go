package orderevents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Gateway publishes order lifecycle events to Kafka. Publish failures
// are logged here so callers can treat publishing as best effort.
type Gateway struct {
	producer producer
	topic    string
	log      handlerLogger
}

func New(producer producer, topic string, log handlerLogger) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

func (g *Gateway) Publish(ctx context.Context, event entities.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gateway order events, publish %s: %w", event.Type, err)
	}

	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		EventsPublishFailedTotal.WithLabelValues(event.Type.String()).Inc()
		g.log.With(
			logger.NewField("error", err),
			logger.NewField("type", event.Type.String()),
			logger.NewField("order_id", event.Order.ID),
		).Error("failed to marshal order event")
		return fmt.Errorf("gateway order events, marshal %s: %w", event.Type, err)
	}

	message := &sarama.ProducerMessage{
		Topic: g.topic,
		// all events of one order land in the same partition
		Key:   sarama.StringEncoder(event.Order.ID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := g.producer.SendMessage(message)
	if err != nil {
		EventsPublishFailedTotal.WithLabelValues(event.Type.String()).Inc()
		g.log.With(
			logger.NewField("error", err),
			logger.NewField("type", event.Type.String()),
			logger.NewField("order_id", event.Order.ID),
		).Error("failed to publish order event")
		return fmt.Errorf("gateway order events, publish %s: %w", event.Type, err)
	}

	EventsPublishedTotal.WithLabelValues(event.Type.String()).Inc()
	g.log.With(
		logger.NewField("type", event.Type.String()),
		logger.NewField("order_id", event.Order.ID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order event published")

	return nil
}

package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/pkg/logger"
)

// orderEvent decodes just enough of the published message for logging.
// The full payload is forwarded to the webhook untouched.
type orderEvent struct {
	Type  string `json:"type"`
	Order struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"order"`
}

type Handler struct {
	sender                   Sender
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, sender Sender, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		sender:                   sender,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. Returns true when
// ConsumeClaim must stop (context cancelled, message stays unmarked and
// will be reprocessed). Undeliverable events are marked anyway: a dead
// webhook must not wedge the whole topic.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event orderEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.Order.ID),
		logger.NewField("type", event.Type),
		logger.NewField("status", event.Order.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.events processing")

	err = h.sender.Send(ctx, message.Value)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, errWebhookRejected):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler webhook rejected event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.events handler failed to deliver event after retries")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.events: delivered")

	sess.MarkMessage(message, "")
	return false
}

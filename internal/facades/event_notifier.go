package facades

//go:generate mockgen -source=event_notifier.go -destination=mock_event_notifier.go -package=facades

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventNotifier publishes event change notifications to Kafka.
type EventNotifier struct {
	writer KafkaWriter
}

// NewEventNotifier creates a notifier over the given writer.
func NewEventNotifier(writer KafkaWriter) *EventNotifier {
	return &EventNotifier{writer: writer}
}

// Publish writes the notification keyed by event id, so changes to one event stay ordered.
func (n *EventNotifier) Publish(ctx context.Context, notification models.EventNotification) error {
	log := logger.FromContext(ctx)

	value, err := json.Marshal(notification)
	if err != nil {
		log.Errorw("failed to marshal event notification", "event_id", notification.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(notification.EventID, 10)),
		Value: value,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		log.Errorw("failed to publish event notification",
			"type", notification.Type, "event_id", notification.EventID, "error", err)
		return err
	}

	log.Infow("event notification published",
		"type", notification.Type, "event_id", notification.EventID, "notification_id", notification.NotificationID)
	return nil
}

// Close flushes and closes the underlying writer.
func (n *EventNotifier) Close() error {
	return n.writer.Close()
}

package producer

import (
	"context"

	"employee-api/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// Writer is the slice of kafka-go's Writer the relay needs; *kafkago.Writer
// satisfies it.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func publishEvent(ctx context.Context, writer Writer, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}

package storage

import (
	"context"
	"encoding/json"

	"das-foods/internal/domain"
	"das-foods/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishEvent(ctx context.Context, msg domain.KafkaMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Key()),
		Value: payload,
	})
}

// LogPublisher records events in the log when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) PublishEvent(_ context.Context, msg domain.KafkaMessage) error {
	log.Debug().Str("type", msg.Type).Str("key", msg.Key()).Str("status", msg.Status).Msg("event")
	return nil
}

var (
	_ service.EventPublisher = (*KafkaPublisher)(nil)
	_ service.EventPublisher = LogPublisher{}
)

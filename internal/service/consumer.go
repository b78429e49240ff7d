package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"das-foods/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Config() kafka.ReaderConfig
}

// Consumer folds order_placed events into item popularity scores.
type Consumer struct {
	Reader     MessageReader
	Store      PopularityStore
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store PopularityStore) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: time.Second,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Info().Str("topic", c.Reader.Config().Topic).Msg("starting popularity consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info().Msg("popularity consumer stopped")
				return
			}
			log.Error().Err(err).Dur("retry_in", c.RetryDelay).Msg("error reading message")
			select {
			case <-ctx.Done():
				log.Info().Msg("popularity consumer stopped")
				return
			case <-time.After(c.RetryDelay):
			}
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Warn().Err(err).Msg("error unmarshaling message")
			continue
		}

		c.ProcessEvent(ctx, msg)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, msg domain.KafkaMessage) {
	if msg.Type != domain.EventOrderPlaced {
		return
	}

	day := msg.Timestamp.UTC().Format("2006-01-02")
	for _, line := range msg.Lines {
		if line.Quantity <= 0 {
			continue
		}
		if err := c.Store.RecordSale(ctx, day, line.MenuItemID, line.Quantity); err != nil {
			log.Error().Err(err).Str("order_id", msg.OrderID).Int("menu_item_id", line.MenuItemID).Msg("error recording sale")
			return
		}
	}

	log.Debug().Str("order_id", msg.OrderID).Int("lines", len(msg.Lines)).Msg("processed order for popularity")
}

// PopularityRecorder folds events into the popularity store as they are
// published. It stands in for the Kafka consumer when no broker is configured.
type PopularityRecorder struct {
	Next     EventPublisher
	Consumer *Consumer
}

func NewPopularityRecorder(next EventPublisher, store PopularityStore) *PopularityRecorder {
	return &PopularityRecorder{Next: next, Consumer: &Consumer{Store: store}}
}

func (p *PopularityRecorder) PublishEvent(ctx context.Context, msg domain.KafkaMessage) error {
	p.Consumer.ProcessEvent(ctx, msg)
	if p.Next == nil {
		return nil
	}
	return p.Next.PublishEvent(ctx, msg)
}

var _ EventPublisher = (*PopularityRecorder)(nil)

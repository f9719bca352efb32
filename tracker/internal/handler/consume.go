package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/book-tracker/pkg/kafka"
	"github.com/Astemirdum/book-tracker/pkg/retry"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	activityAttempts  = 4
	activityBaseDelay = 200 * time.Millisecond
)

type activity func(ctx context.Context, event kafka.EventActivity) error

// Consumer materializes reading-activity events into feed posts.
type Consumer struct {
	activityHandler activity
	retryOptions    []retry.Option
	log             *zap.Logger
}

// NewConsumer retries a failing event with backoff before giving up on it.
// opts override the default attempts and delays.
func NewConsumer(activity activity, log *zap.Logger, opts ...retry.Option) *Consumer {
	return &Consumer{
		activityHandler: activity,
		retryOptions: append([]retry.Option{
			retry.OnAnyExcept(context.Canceled, context.DeadlineExceeded),
			retry.WithMaxAttempts(activityAttempts),
			retry.WithBaseDelay(activityBaseDelay),
		}, opts...),
		log: log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) handle(ctx context.Context, event kafka.EventActivity) error {
	opts := append(append([]retry.Option(nil), consumer.retryOptions...), retry.OnRetry(func(attempt int, err error) {
		consumer.log.Warn("retrying activity",
			zap.Stringer("id", event.ID), zap.Int("attempt", attempt), zap.Error(err))
	}))
	return retry.Do(ctx, func(ctx context.Context) error {
		return consumer.activityHandler(ctx, event)
	}, opts...)
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.EventActivity
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal activity", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}
			if err := consumer.handle(session.Context(), event); err != nil {
				if session.Context().Err() != nil {
					// left unmarked so the next session redelivers it
					return nil
				}
				// later marks commit past this offset anyway; skip it loudly
				consumer.log.Error("dropping activity after retries",
					zap.Stringer("id", event.ID), zap.Int64("offset", message.Offset), zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}
			consumer.log.Debug("message claimed",
				zap.String("value", string(message.Value)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

package notifier

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/book-tracker/pkg/kafka"
	"github.com/IBM/sarama"
)

type ActivityPublisher interface {
	Publish(ctx context.Context, events ...kafka.EventActivity) error
}

type kafkaActivity struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaActivity(producer sarama.SyncProducer, topic string) ActivityPublisher {
	return &kafkaActivity{producer: producer, topic: topic}
}

func (a *kafkaActivity) Publish(_ context.Context, events ...kafka.EventActivity) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: a.topic,
			Key:   sarama.StringEncoder(ev.UserID.String()),
			Value: sarama.ByteEncoder(data),
		})
	}
	return a.producer.SendMessages(msgs)
}

type NopActivity struct{}

func (NopActivity) Publish(context.Context, ...kafka.EventActivity) error { return nil }

// ActivityFunc hands events to an in-process sink. Used when no broker is configured.
type ActivityFunc func(ctx context.Context, ev kafka.EventActivity) error

func (f ActivityFunc) Publish(ctx context.Context, events ...kafka.EventActivity) error {
	for _, ev := range events {
		if err := f(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// Package notifier persists user notifications and pushes them to the
// realtime channel. Delivery is best effort: failures are logged, never returned.
package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/book-tracker/pkg/circuit_breaker"
	"github.com/Astemirdum/book-tracker/pkg/kafka"
	"github.com/Astemirdum/book-tracker/tracker/internal/metrics"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type store interface {
	CreateNotification(ctx context.Context, n model.Notification) error
}

type Pusher interface {
	Push(ctx context.Context, n model.Notification) error
}

type Notifier struct {
	store   store
	pusher  Pusher
	cb      circuit_breaker.CircuitBreaker
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time
}

func New(store store, pusher Pusher, cb circuit_breaker.CircuitBreaker, timeout time.Duration, log *zap.Logger) *Notifier {
	if pusher == nil {
		pusher = NopPusher{}
	}
	return &Notifier{
		store:   store,
		pusher:  pusher,
		cb:      cb,
		timeout: timeout,
		log:     log.Named("notifier"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Send stores the notification and pushes it. It outlives the caller's
// cancellation, bounded by the configured timeout.
func (n *Notifier) Send(ctx context.Context, userID uuid.UUID, typ model.NotificationType, message string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	item := model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      typ,
		Message:   message,
		CreatedAt: n.now(),
	}
	log := n.log.With(zap.Stringer("user_id", userID), zap.String("type", string(typ)))

	if err := n.store.CreateNotification(ctx, item); err != nil {
		metrics.RecordNotification(string(typ), "store_failed")
		log.Warn("store notification", zap.Error(err))
	} else {
		metrics.RecordNotification(string(typ), "stored")
	}

	push := func() error { return n.pusher.Push(ctx, item) }
	var err error
	if n.cb != nil {
		err = n.cb.Call(push)
	} else {
		err = push()
	}
	if err != nil {
		metrics.RecordNotification(string(typ), "push_failed")
		log.Warn("push notification", zap.Error(err))
		return
	}
	metrics.RecordNotification(string(typ), "pushed")
}

type NopPusher struct{}

func (NopPusher) Push(context.Context, model.Notification) error { return nil }

type kafkaPusher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPusher(producer sarama.SyncProducer, topic string) Pusher {
	return &kafkaPusher{producer: producer, topic: topic}
}

func (p *kafkaPusher) Push(_ context.Context, n model.Notification) error {
	data, err := json.Marshal(kafka.EventNotification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(n.UserID.String()),
		Value: sarama.ByteEncoder(data),
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

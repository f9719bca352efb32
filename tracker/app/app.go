package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/book-tracker/pkg/circuit_breaker"
	"github.com/Astemirdum/book-tracker/pkg/kafka"
	"github.com/Astemirdum/book-tracker/pkg/locker"
	"github.com/Astemirdum/book-tracker/pkg/logger"
	"github.com/Astemirdum/book-tracker/pkg/postgres"
	"github.com/Astemirdum/book-tracker/tracker/config"
	"github.com/Astemirdum/book-tracker/tracker/internal/handler"
	"github.com/Astemirdum/book-tracker/tracker/internal/notifier"
	"github.com/Astemirdum/book-tracker/tracker/internal/repository"
	"github.com/Astemirdum/book-tracker/tracker/internal/server"
	"github.com/Astemirdum/book-tracker/tracker/internal/service"
	"github.com/Astemirdum/book-tracker/tracker/migrations"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const lockPrefix = "tracker:user:"

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "tracker")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()
	repo := repository.NewRepository(db, log)

	var lk locker.Locker = locker.NewLocal()
	if cfg.Redis.Enabled() {
		client, err := locker.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("redis init", zap.Error(err))
		}
		defer client.Close()
		lk = locker.NewRedis(client, lockPrefix, cfg.Redis.TTL, cfg.Redis.Poll)
		log.Info("user locks in redis", zap.String("addr", cfg.Redis.Addr))
	}

	var (
		pusher   notifier.Pusher = notifier.NopPusher{}
		activity notifier.ActivityPublisher
		svc      *service.Service
	)
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		pusher = notifier.NewKafkaPusher(producer, kafka.NotificationsTopic)
		activity = notifier.NewKafkaActivity(producer, kafka.ActivityTopic)
	} else {
		// no broker: the feed is written in process
		activity = notifier.ActivityFunc(func(ctx context.Context, ev kafka.EventActivity) error {
			return svc.SaveActivity(ctx, ev)
		})
	}

	cb := circuit_breaker.New(cfg.Notify.CBWindow, cfg.Notify.CBCooldown, cfg.Notify.CBThreshold, cfg.Notify.CBRecovery)
	ntf := notifier.New(repo, pusher, cb, cfg.Notify.Timeout, log)
	svc = service.NewService(repo, repository.NewTxManager(db), lk, ntf, log,
		service.WithReadReward(cfg.Points.ReadReward),
		service.WithRetryDelay(cfg.RetryDelay),
		service.WithActivity(activity),
	)

	g, gCtx := errgroup.WithContext(ctx)
	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.FeedConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		g.Go(func() error {
			kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.SaveActivity, log), log, kafka.ActivityTopic)
			return consumer.Close()
		})
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gCtx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("tracker stopped", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

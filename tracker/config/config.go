package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/book-tracker/pkg/kafka"
	"github.com/Astemirdum/book-tracker/pkg/locker"
	"github.com/Astemirdum/book-tracker/pkg/logger"
	"github.com/Astemirdum/book-tracker/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `envconfig:"TRACKER_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"TRACKER_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE" default:"10s"`
}

// Points tunes the progress ledger.
type Points struct {
	ReadReward int `envconfig:"POINTS_READ_REWARD" default:"10"`
}

// Notify bounds notification delivery and the breaker guarding the push channel.
type Notify struct {
	Timeout     time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"3s"`
	CBWindow    int           `envconfig:"NOTIFY_CB_WINDOW" default:"20"`
	CBThreshold float64       `envconfig:"NOTIFY_CB_THRESHOLD" default:"0.5"`
	CBCooldown  time.Duration `envconfig:"NOTIFY_CB_COOLDOWN" default:"10s"`
	CBRecovery  int           `envconfig:"NOTIFY_CB_RECOVERY" default:"3"`
}

type Config struct {
	Server   HTTPServer
	Database postgres.DB
	Kafka    kafka.Config
	Redis    locker.RedisConfig
	Log      logger.Log
	Points   Points
	Notify   Notify

	// RetryDelay is the base pause before a conflicting transaction is retried.
	RetryDelay time.Duration `envconfig:"CONFLICT_RETRY_DELAY" default:"5ms"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment. Options override what was read.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	cfg.Redis.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/campuslib/lending-service/internal/server"
	"github.com/campuslib/lending-service/pkg/kafka"
	"github.com/campuslib/lending-service/pkg/logger"
	"github.com/campuslib/lending-service/pkg/postgres"
)

type Config struct {
	Server      server.Config   `yaml:"server"`
	Database    postgres.Config `yaml:"database"`
	Kafka       kafka.Config
	Log         logger.Log    `yaml:"log"`
	SweepEvery  time.Duration `yaml:"sweepEvery" envconfig:"SWEEP_INTERVAL" default:"24h"`
	SettingsTTL time.Duration `yaml:"settingsTTL" envconfig:"SETTINGS_CACHE_TTL" default:"300s"`
}

var (
	once sync.Once
	cfg  Config
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(t time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = t
	}
}

func WithSweepInterval(d time.Duration) Option {
	return func(c *Config) {
		c.SweepEvery = d
	}
}

// NewConfig reads config from environment. Options apply after the env pass
// so they win over `default:` tags.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campuslib/lending-service/config"
	"github.com/campuslib/lending-service/internal/handler"
	"github.com/campuslib/lending-service/internal/repository"
	"github.com/campuslib/lending-service/internal/server"
	"github.com/campuslib/lending-service/internal/service"
	"github.com/campuslib/lending-service/migrations"
	"github.com/campuslib/lending-service/pkg/kafka"
	"github.com/campuslib/lending-service/pkg/logger"
	"github.com/campuslib/lending-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "lending")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer %v", err)
	}
	svc := service.NewService(repo, handler.NewEnqueuer(producer), log,
		service.WithSettingsTTL(cfg.SettingsTTL),
		service.WithNotifyTopic(cfg.Kafka.Topic),
	)
	h := handler.New(svc, log)

	consumerGroup, err := kafka.NewConsumerGroup(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka consumer group %v", err)
	}
	consumer := handler.NewConsumer(handler.NewLogSender(log), log)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	g, gCtx := errgroup.WithContext(consumeCtx)
	g.Go(func() error {
		for {
			if err := consumerGroup.Consume(gCtx, []string{cfg.Kafka.Topic}, consumer); err != nil {
				log.Error("consumerGroup.Consume", zap.Error(err))
				return err
			}
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
		}
	})

	scheduler := service.NewSweepScheduler(svc, cfg.SweepEvery, log)
	scheduler.Start()

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	scheduler.Stop()
	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error("consumer stop", zap.Error(err))
	}
	if err := consumerGroup.Close(); err != nil {
		log.Error("consumerGroup.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}

package kafka

import (
	"github.com/IBM/sarama"
)

type Config struct {
	Addrs         []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Topic         string   `envconfig:"KAFKA_NOTIFY_TOPIC" default:"fine.notifications"`
	ConsumerGroup string   `envconfig:"KAFKA_CONSUMER_GROUP" default:"lending-mailer"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumerGroup(cfg Config) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, cfg.ConsumerGroup, defaultCfg)
}

package handler

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/model"
)

// Sender delivers one overdue-fine notice to a member. The default sender
// only logs; a real mail gateway plugs in here.
type Sender interface {
	Send(n model.FineNotification) error
}

type logSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) Sender {
	return &logSender{log: log.Named("mail")}
}

func (s *logSender) Send(n model.FineNotification) error {
	s.log.Info("overdue notice",
		zap.String("email", n.Email),
		zap.String("member", n.MemberName),
		zap.String("book", n.BookTitle),
		zap.String("amount", n.Amount.StringFixed(2)),
		zap.Int("days_overdue", n.DaysOverdue))
	return nil
}

type Consumer struct {
	sender Sender
	log    *zap.Logger
}

func NewConsumer(sender Sender, log *zap.Logger) *Consumer {
	return &Consumer{
		sender: sender,
		log:    log.Named("consumer"),
	}
}

// Setup runs at the start of every session, including after a rebalance, so
// it must hold no per-session state.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var n model.FineNotification
			if err := json.Unmarshal(message.Value, &n); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			// A failed delivery is marked anyway: the next sweep updates the
			// fine and enqueues a fresh notice.
			if err := consumer.sender.Send(n); err != nil {
				consumer.log.Error("sender.Send", zap.Error(err))
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/repository"
	"github.com/campuslib/lending-service/pkg/breaker"
)

const defaultSettingsTTL = 300 * time.Second

type Service struct {
	log  *zap.Logger
	repo repository.Repository

	clock    Clock
	enqueuer Enqueuer
	topic    string
	cb       breaker.CircuitBreaker

	settings settingsCache
	sweepMu  sync.Mutex
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithSettingsTTL(ttl time.Duration) Option {
	return func(s *Service) { s.settings.ttl = ttl }
}

func WithNotifyTopic(topic string) Option {
	return func(s *Service) { s.topic = topic }
}

func WithBreaker(cb breaker.CircuitBreaker) Option {
	return func(s *Service) { s.cb = cb }
}

func NewService(repo repository.Repository, enq Enqueuer, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log,
		repo:     repo,
		clock:    NewClock(),
		enqueuer: enq,
		topic:    "fine.notifications",
		cb:       breaker.New(20, 30*time.Second, 0.5, 3),
		settings: settingsCache{ttl: defaultSettingsTTL},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

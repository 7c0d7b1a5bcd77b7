package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SweepScheduler triggers RunSweep on a fixed interval. A zero or negative
// interval disables the scheduler; the HTTP trigger stays available either
// way.
type SweepScheduler struct {
	svc      *Service
	interval time.Duration
	log      *zap.Logger

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewSweepScheduler(svc *Service, interval time.Duration, log *zap.Logger) *SweepScheduler {
	return &SweepScheduler{
		svc:      svc,
		interval: interval,
		log:      log.Named("scheduler"),
		stop:     make(chan struct{}),
	}
}

func (ss *SweepScheduler) Start() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.interval <= 0 {
		ss.log.Info("sweep scheduler disabled")
		return
	}
	ss.ticker = time.NewTicker(ss.interval)
	ss.wg.Add(1)
	go ss.run()
	ss.log.Info("sweep scheduler started", zap.Duration("interval", ss.interval))
}

func (ss *SweepScheduler) Stop() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.ticker != nil {
		ss.ticker.Stop()
		close(ss.stop)
		ss.wg.Wait()
		ss.log.Info("sweep scheduler stopped")
	}
}

func (ss *SweepScheduler) run() {
	defer ss.wg.Done()

	ss.sweep()
	for {
		select {
		case <-ss.ticker.C:
			ss.sweep()
		case <-ss.stop:
			return
		}
	}
}

func (ss *SweepScheduler) sweep() {
	report, err := ss.svc.RunSweep(context.Background())
	if err != nil {
		ss.log.Error("scheduled sweep", zap.Error(err))
		return
	}
	ss.log.Info("scheduled sweep done",
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped))
}

package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DigestSender sends every tutor a summary of their pending registrations
type DigestSender interface {
	SendPendingDigests(ctx context.Context) (int, error)
}

// Scheduler runs background jobs
type Scheduler struct {
	digests  DigestSender
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewScheduler(digests DigestSender, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		digests:  digests,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("digest_interval", s.interval))

	go s.runDigestTask(ctx)
}

// Stop ends the background jobs and waits for the running one to return
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
	<-s.done
}

func (s *Scheduler) runDigestTask(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sendDigests(ctx)
		case <-s.stopChan:
			s.logger.Info("Digest task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Digest task cancelled")
			return
		}
	}
}

func (s *Scheduler) sendDigests(ctx context.Context) {
	sent, err := s.digests.SendPendingDigests(ctx)
	if err != nil {
		s.logger.Error("Failed to send pending digests", zap.Error(err))
		return
	}

	s.logger.Info("Pending digests sent", zap.Int("tutors", sent))
}

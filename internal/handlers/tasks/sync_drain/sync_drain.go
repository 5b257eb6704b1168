package sync_drain

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	Drain(ctx context.Context) error
	Online() bool
	Pending(ctx context.Context) (int64, error)
}

// SyncDrain periodically replays queued offline operations. The queue
// drains itself on reconnect; this task is the safety net for items
// that failed a previous drain.
type SyncDrain struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSyncDrain(log logger.Logger, service Service, interval time.Duration) *SyncDrain {
	return &SyncDrain{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SyncDrain) TTL() time.Duration {
	return s.interval
}

func (s *SyncDrain) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if !s.service.Online() {
		return nil
	}

	pending, err := s.service.Pending(ctxWithTimeout)
	if err != nil {
		return err
	}
	if pending == 0 {
		return nil
	}

	s.log.With(
		logger.NewField("pending", pending),
	).Info("sync drain")

	return s.service.Drain(ctxWithTimeout)
}

func (s *SyncDrain) Info() string {
	return "sync drain"
}

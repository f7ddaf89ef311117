package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type eventCompleter interface {
	CompletePast(ctx context.Context) ([]string, error)
}

// Scheduler periodically marks published events whose date has passed as
// completed, closing them to further registration.
type Scheduler struct {
	eventService eventCompleter
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.eventService.CompletePast(ctx)
	if err != nil {
		s.logger.Error("failed to complete past events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range completed {
		s.logger.Info("event completed", logger.String("event_id", id))
	}
}

package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type hackathonReconciler interface {
	ReconcileAll(ctx context.Context, sel domain.Selector) (*domain.ReconcileReport, error)
}

type Scheduler struct {
	reconciler hackathonReconciler
	interval   time.Duration
	logger     logger.Logger
}

func New(
	reconciler hackathonReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

// Start reconciles every hackathon right away and then once per interval
// until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

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
	report, err := s.reconciler.ReconcileAll(ctx, domain.Selector{})
	if err != nil && report == nil {
		s.logger.Error("failed to reconcile hackathons",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range report.Results {
		s.logger.Info("hackathon phase advanced",
			logger.String("hackathon_id", r.HackathonID),
			logger.String("slug", r.Slug),
			logger.String("from", string(r.From)),
			logger.String("to", string(r.To)),
		)
	}

	for _, e := range report.Errors {
		s.logger.Warn("hackathon left unreconciled",
			logger.String("hackathon_id", e.HackathonID),
			logger.String("slug", e.Slug),
			logger.String("error", e.Err.Error()),
		)
	}

	if err != nil {
		s.logger.Warn("reconciliation run interrupted",
			logger.String("error", err.Error()),
		)
	}
}

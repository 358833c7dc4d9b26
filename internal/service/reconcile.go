package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stpnv0/HackathonLifecycle/internal/lifecycle"
	"github.com/stpnv0/HackathonLifecycle/internal/metrics"
	"github.com/stpnv0/HackathonLifecycle/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReconcileService keeps the stored phase of a hackathon equal to the phase
// derived from its window. The stored value is a cache; the write is a plain
// overwrite, so concurrent reconcilers converge on the same value.
type ReconcileService struct {
	repo    ports.HackathonRepo
	cache   ports.PhaseCache
	alerter ports.AdminAlerter
	ledger  ports.AlertLedger
	logger  logger.Logger
	metrics *metrics.Reconcile
	now     func() time.Time
}

type ReconcileOption func(*ReconcileService)

func WithClock(now func() time.Time) ReconcileOption {
	return func(s *ReconcileService) {
		s.now = now
	}
}

// WithAlertLedger suppresses repeated alerts for the same hackathon.
func WithAlertLedger(l ports.AlertLedger) ReconcileOption {
	return func(s *ReconcileService) {
		s.ledger = l
	}
}

func WithMetrics(m *metrics.Reconcile) ReconcileOption {
	return func(s *ReconcileService) {
		s.metrics = m
	}
}

// NewReconcileService builds the service. cache and alerter may be nil.
func NewReconcileService(
	repo ports.HackathonRepo,
	cache ports.PhaseCache,
	alerter ports.AdminAlerter,
	logger logger.Logger,
	opts ...ReconcileOption,
) *ReconcileService {
	s := &ReconcileService{
		repo:    repo,
		cache:   cache,
		alerter: alerter,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reconcile validates h, derives its phase at a single instant and persists
// the derived phase when it differs from the stored one. An invalid window
// is reported and never written.
func (s *ReconcileService) Reconcile(ctx context.Context, h *domain.Hackathon) (domain.ReconcileResult, error) {
	now := s.now()

	res := domain.ReconcileResult{
		HackathonID: h.ID,
		Slug:        h.Slug,
		From:        h.Phase,
		EvaluatedAt: now,
	}

	if err := lifecycle.Validate(h.Window); err != nil {
		s.metrics.RecordOutcome(metrics.OutcomeInvalidWindow)
		return res, err
	}

	derived := lifecycle.Derive(now, h.Window)
	res.To = derived

	if derived == h.Phase {
		res.Outcome = domain.OutcomeUnchanged
		s.metrics.RecordOutcome(metrics.OutcomeUnchanged)
		s.cachePhase(ctx, h.ID, derived)
		return res, nil
	}

	if err := s.repo.UpdatePhase(ctx, h.ID, derived); err != nil {
		s.metrics.RecordOutcome(metrics.OutcomePersistenceError)
		return res, fmt.Errorf("%w: update phase: %w", domain.ErrPersistence, err)
	}

	h.Phase = derived
	res.Outcome = domain.OutcomeCorrected
	s.metrics.RecordOutcome(metrics.OutcomeCorrected)
	s.cachePhase(ctx, h.ID, derived)

	s.logger.Info("hackathon phase corrected",
		logger.String("hackathon_id", h.ID),
		logger.String("slug", h.Slug),
		logger.String("from", string(res.From)),
		logger.String("to", string(res.To)),
	)

	return res, nil
}

// ReconcileAll reconciles every hackathon matching sel. Records are
// independent: a failure is collected in the report and the batch moves on.
// Cancellation is checked between records, so a record is never left half
// processed; the partial report is returned together with ctx.Err().
func (s *ReconcileService) ReconcileAll(ctx context.Context, sel domain.Selector) (*domain.ReconcileReport, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordBatch(time.Since(start))
	}()

	hackathons, err := s.repo.Find(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("find hackathons: %w", err)
	}

	report := &domain.ReconcileReport{}
	var invalid []domain.RecordError

	for _, h := range hackathons {
		if err = ctx.Err(); err != nil {
			s.logger.Warn("reconciliation interrupted",
				logger.Int("processed", report.Corrected+report.Unchanged+report.Failed),
				logger.Int("total", len(hackathons)),
			)
			s.alertInvalid(ctx, invalid)
			return report, err
		}

		res, err := s.Reconcile(ctx, h)
		if err != nil {
			recErr := domain.RecordError{HackathonID: h.ID, Slug: h.Slug, Err: err}
			report.Failed++
			report.Errors = append(report.Errors, recErr)
			if errors.Is(err, domain.ErrInvalidWindow) {
				invalid = append(invalid, recErr)
			}
			s.logger.Error("failed to reconcile hackathon",
				logger.String("hackathon_id", h.ID),
				logger.String("slug", h.Slug),
				logger.String("error", err.Error()),
			)
			continue
		}

		switch res.Outcome {
		case domain.OutcomeCorrected:
			report.Corrected++
			report.Results = append(report.Results, res)
		default:
			report.Unchanged++
		}
	}

	if report.Corrected > 0 || report.Failed > 0 {
		s.logger.Info("hackathons reconciled",
			logger.Int("corrected", report.Corrected),
			logger.Int("unchanged", report.Unchanged),
			logger.Int("failed", report.Failed),
		)
	}

	s.alertInvalid(ctx, invalid)

	return report, nil
}

func (s *ReconcileService) cachePhase(ctx context.Context, id string, phase domain.Phase) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, id, phase); err != nil {
		s.logger.Warn("failed to cache hackathon phase",
			logger.String("hackathon_id", id),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReconcileService) alertInvalid(ctx context.Context, records []domain.RecordError) {
	if s.alerter == nil || len(records) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)

	fresh := make([]domain.RecordError, 0, len(records))
	for _, r := range records {
		if s.ledger != nil {
			first, err := s.ledger.MarkAlerted(ctx, r.HackathonID)
			if err != nil {
				s.logger.Warn("alert ledger unavailable, alerting anyway",
					logger.String("hackathon_id", r.HackathonID),
					logger.String("error", err.Error()),
				)
			} else if !first {
				continue
			}
		}
		fresh = append(fresh, r)
	}
	if len(fresh) == 0 {
		return
	}

	go s.alerter.AlertInvalidWindows(ctx, fresh)
}

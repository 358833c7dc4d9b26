package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stpnv0/HackathonLifecycle/internal/lifecycle"
	"github.com/stpnv0/HackathonLifecycle/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/singleflight"
)

type Freshness string

const (
	// FreshnessStrict reconciles before answering.
	FreshnessStrict Freshness = "strict"
	// FreshnessEventual answers from the cache or the stored phase and leaves
	// correction to the background scheduler.
	FreshnessEventual Freshness = "eventual"
)

func ParseFreshness(s string) (Freshness, error) {
	switch f := Freshness(s); f {
	case FreshnessStrict, FreshnessEventual:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown freshness %q", domain.ErrValidation, s)
}

// strictReconcileTimeout bounds a shared reconciliation that no longer
// belongs to any single request.
const strictReconcileTimeout = 10 * time.Second

type phaseReconciler interface {
	Reconcile(ctx context.Context, h *domain.Hackathon) (domain.ReconcileResult, error)
}

// LifecycleFacade is the read path for "which phase is this hackathon in".
type LifecycleFacade struct {
	reconciler phaseReconciler
	cache      ports.PhaseCache
	freshness  Freshness
	logger     logger.Logger
	now        func() time.Time

	// strict reads of the same hackathon share one reconciliation
	inflight singleflight.Group
}

// NewLifecycleFacade builds the facade. cache may be nil.
func NewLifecycleFacade(
	reconciler phaseReconciler,
	cache ports.PhaseCache,
	freshness Freshness,
	logger logger.Logger,
) *LifecycleFacade {
	return &LifecycleFacade{
		reconciler: reconciler,
		cache:      cache,
		freshness:  freshness,
		logger:     logger,
		now:        time.Now,
	}
}

func (f *LifecycleFacade) Freshness() Freshness {
	return f.freshness
}

func (f *LifecycleFacade) CurrentPhase(ctx context.Context, h *domain.Hackathon) (domain.Phase, error) {
	lc, err := f.Lifecycle(ctx, h)
	if err != nil {
		return "", err
	}
	return lc.DerivedPhase, nil
}

// Lifecycle answers with the phase chosen by the freshness policy. Under
// eventual freshness DerivedPhase carries the cached or stored phase, which
// may lag behind the window.
func (f *LifecycleFacade) Lifecycle(ctx context.Context, h *domain.Hackathon) (domain.Lifecycle, error) {
	if f.freshness == FreshnessEventual {
		return f.eventual(ctx, h)
	}
	return f.strict(ctx, h)
}

// strict shares one reconciliation per hackathon between concurrent readers.
// The shared run is detached from the reader that started it, so a
// disconnecting client fails only its own read.
func (f *LifecycleFacade) strict(ctx context.Context, h *domain.Hackathon) (domain.Lifecycle, error) {
	ch := f.inflight.DoChan(h.ID, func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), strictReconcileTimeout)
		defer cancel()
		return f.reconciler.Reconcile(runCtx, h)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return domain.Lifecycle{}, fmt.Errorf("reconcile %s: %w", h.Slug, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return domain.Lifecycle{}, fmt.Errorf("reconcile %s: %w", h.Slug, res.Err)
	}

	rr := res.Val.(domain.ReconcileResult)
	if res.Shared {
		f.logger.Debug("reconciliation shared",
			logger.String("hackathon_id", h.ID),
		)
	}
	h.Phase = rr.To

	return lifecycle.Compute(rr.EvaluatedAt, h.Window), nil
}

func (f *LifecycleFacade) eventual(ctx context.Context, h *domain.Hackathon) (domain.Lifecycle, error) {
	if err := lifecycle.Validate(h.Window); err != nil {
		return domain.Lifecycle{}, fmt.Errorf("hackathon %s: %w", h.Slug, err)
	}

	lc := lifecycle.Compute(f.now(), h.Window)
	lc.DerivedPhase = h.Phase

	if f.cache == nil {
		return lc, nil
	}

	cached, ok, err := f.cache.Get(ctx, h.ID)
	if err != nil {
		f.logger.Warn("phase cache read failed, using stored phase",
			logger.String("hackathon_id", h.ID),
			logger.String("error", err.Error()),
		)
		return lc, nil
	}
	if ok {
		lc.DerivedPhase = cached
	}

	return lc, nil
}

package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stpnv0/HackathonLifecycle/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_RunsImmediately(t *testing.T) {
	reconciler := mocks.NewMockHackathonReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, time.Hour, log)

	report := &domain.ReconcileReport{
		Corrected: 1,
		Results: []domain.ReconcileResult{
			{HackathonID: "h1", Slug: "fintech", From: domain.PhaseUpcoming, To: domain.PhaseApplications},
		},
	}
	reconciler.EXPECT().ReconcileAll(mock.Anything, domain.Selector{}).Return(report, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Len(t, reconciler.Calls, 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	reconciler := mocks.NewMockHackathonReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, 50*time.Millisecond, log)

	reconciler.EXPECT().ReconcileAll(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reconciler.Calls), 1)
}

func TestScheduler_Tick_LogsPartialReport(t *testing.T) {
	reconciler := mocks.NewMockHackathonReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, time.Hour, log)

	report := &domain.ReconcileReport{
		Failed: 1,
		Errors: []domain.RecordError{{HackathonID: "h2", Slug: "broken", Err: domain.ErrInvalidWindow}},
	}
	reconciler.EXPECT().ReconcileAll(mock.Anything, mock.Anything).Return(report, context.Canceled).Once()

	s.tick(context.Background())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reconciler := mocks.NewMockHackathonReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, time.Second, log) // interval longer than test

	reconciler.EXPECT().ReconcileAll(mock.Anything, mock.Anything).Return(&domain.ReconcileReport{}, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	reconciler := mocks.NewMockHackathonReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, 30*time.Millisecond, log)

	reconciler.EXPECT().ReconcileAll(mock.Anything, mock.Anything).Return(&domain.ReconcileReport{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reconciler.Calls), 3)
}

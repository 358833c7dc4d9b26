package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stpnv0/HackathonLifecycle/internal/service/ports"
	"github.com/stpnv0/HackathonLifecycle/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFacade(t *testing.T, repo *mocks.MockHackathonRepo, cache *mocks.MockPhaseCache, freshness Freshness, now time.Time) *LifecycleFacade {
	t.Helper()
	log := newTestLogger(t)

	var pc ports.PhaseCache
	if cache != nil {
		pc = cache
	}

	reconciler := NewReconcileService(repo, pc, nil, log, WithClock(fixedClock(now)))
	f := NewLifecycleFacade(reconciler, pc, freshness, log)
	f.now = fixedClock(now)
	return f
}

func TestParseFreshness(t *testing.T) {
	f, err := ParseFreshness("strict")
	require.NoError(t, err)
	assert.Equal(t, FreshnessStrict, f)

	f, err = ParseFreshness("eventual")
	require.NoError(t, err)
	assert.Equal(t, FreshnessEventual, f)

	_, err = ParseFreshness("sometimes")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLifecycleFacade_Strict_ReconcilesBeforeAnswering(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	f := newFacade(t, repo, nil, FreshnessStrict, anchor.Add(10*day))

	h := newHackathon("h1", "fintech", domain.PhaseApplications, testWindow())

	repo.EXPECT().UpdatePhase(mock.Anything, "h1", domain.PhaseSubmissions).Return(nil)

	lc, err := f.Lifecycle(context.Background(), h)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSubmissions, lc.DerivedPhase)
	assert.False(t, lc.IsApplicationWindowOpen)
	assert.True(t, lc.IsSubmissionWindowOpen)
	assert.Equal(t, anchor.Add(10*day), lc.EvaluatedAt)
	assert.Equal(t, domain.PhaseSubmissions, h.Phase)
}

func TestLifecycleFacade_Strict_GapCarriesClosedStage(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	// between application close and submission open
	f := newFacade(t, repo, nil, FreshnessStrict, anchor.Add(5*day+time.Hour))

	h := newHackathon("h1", "fintech", domain.PhaseApplications, testWindow())

	phase, err := f.CurrentPhase(context.Background(), h)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseApplications, phase)
}

func TestLifecycleFacade_Strict_InvalidWindow(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	f := newFacade(t, repo, nil, FreshnessStrict, anchor)

	h := newHackathon("h1", "broken", domain.PhaseUpcoming, invalidWindow())

	_, err := f.Lifecycle(context.Background(), h)

	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestLifecycleFacade_Strict_PersistenceError(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	f := newFacade(t, repo, nil, FreshnessStrict, anchor)

	h := newHackathon("h1", "fintech", domain.PhaseUpcoming, testWindow())

	repo.EXPECT().UpdatePhase(mock.Anything, "h1", domain.PhaseApplications).Return(errors.New("timeout"))

	_, err := f.Lifecycle(context.Background(), h)

	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestLifecycleFacade_Strict_ConcurrentReadsShareReconciliation(t *testing.T) {
	const readers = 8

	repo := mocks.NewMockHackathonRepo(t)
	f := newFacade(t, repo, nil, FreshnessStrict, anchor)

	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	repo.EXPECT().UpdatePhase(mock.Anything, "h1", domain.PhaseApplications).
		RunAndReturn(func(context.Context, string, domain.Phase) error {
			calls.Add(1)
			once.Do(func() { close(entered) })
			<-release
			return nil
		})

	phases := make([]domain.Phase, readers)
	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h := newHackathon("h1", "fintech", domain.PhaseUpcoming, testWindow())
			lc, err := f.Lifecycle(context.Background(), h)
			if err == nil {
				phases[i] = lc.DerivedPhase
			}
		}(i)
	}

	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, p := range phases {
		assert.Equal(t, domain.PhaseApplications, p)
	}
	assert.Less(t, int(calls.Load()), readers)
}

func TestLifecycleFacade_Strict_CancelledReaderDoesNotFailOthers(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	f := newFacade(t, repo, nil, FreshnessStrict, anchor)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	repo.EXPECT().UpdatePhase(mock.Anything, "h1", domain.PhaseApplications).
		RunAndReturn(func(ctx context.Context, _ string, _ domain.Phase) error {
			once.Do(func() { close(entered) })
			<-release
			return ctx.Err()
		})

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		h := newHackathon("h1", "fintech", domain.PhaseUpcoming, testWindow())
		_, err := f.Lifecycle(firstCtx, h)
		firstErr <- err
	}()
	<-entered

	type outcome struct {
		lc  domain.Lifecycle
		err error
	}
	second := make(chan outcome, 1)
	go func() {
		h := newHackathon("h1", "fintech", domain.PhaseUpcoming, testWindow())
		lc, err := f.Lifecycle(context.Background(), h)
		second <- outcome{lc, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, domain.PhaseApplications, got.lc.DerivedPhase)
}

func TestLifecycleFacade_Eventual_UsesStoredPhaseOnCacheMiss(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	cache := mocks.NewMockPhaseCache(t)
	f := newFacade(t, repo, cache, FreshnessEventual, anchor.Add(10*day))

	h := newHackathon("h1", "fintech", domain.PhaseApplications, testWindow())

	cache.EXPECT().Get(mock.Anything, "h1").Return("", false, nil)

	lc, err := f.Lifecycle(context.Background(), h)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseApplications, lc.DerivedPhase)
	assert.True(t, lc.IsSubmissionWindowOpen)
}

func TestLifecycleFacade_Eventual_PrefersCachedPhase(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	cache := mocks.NewMockPhaseCache(t)
	f := newFacade(t, repo, cache, FreshnessEventual, anchor.Add(10*day))

	h := newHackathon("h1", "fintech", domain.PhaseApplications, testWindow())

	cache.EXPECT().Get(mock.Anything, "h1").Return(domain.PhaseSubmissions, true, nil)

	phase, err := f.CurrentPhase(context.Background(), h)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSubmissions, phase)
}

func TestLifecycleFacade_Eventual_CacheErrorFallsBack(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	cache := mocks.NewMockPhaseCache(t)
	f := newFacade(t, repo, cache, FreshnessEventual, anchor)

	h := newHackathon("h1", "fintech", domain.PhaseUpcoming, testWindow())

	cache.EXPECT().Get(mock.Anything, "h1").Return("", false, errors.New("redis down"))

	phase, err := f.CurrentPhase(context.Background(), h)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseUpcoming, phase)
}

func TestLifecycleFacade_Eventual_InvalidWindow(t *testing.T) {
	repo := mocks.NewMockHackathonRepo(t)
	f := newFacade(t, repo, nil, FreshnessEventual, anchor)

	h := newHackathon("h1", "broken", domain.PhaseUpcoming, invalidWindow())

	_, err := f.Lifecycle(context.Background(), h)

	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

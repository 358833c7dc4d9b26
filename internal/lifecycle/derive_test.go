package lifecycle

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_DecisionTable(t *testing.T) {
	w := fintechWindow(anchor)

	tests := []struct {
		name string
		now  time.Time
		want domain.Phase
	}{
		{"before applications open", anchor.Add(-16 * day), domain.PhaseUpcoming},
		{"one nanosecond before applications open", w.ApplicationOpensAt.Add(-time.Nanosecond), domain.PhaseUpcoming},
		{"applications open instant", w.ApplicationOpensAt, domain.PhaseApplications},
		{"inside applications", anchor, domain.PhaseApplications},
		{"applications close instant starts the gap", w.ApplicationClosesAt, domain.PhaseApplications},
		{"gap between applications and submissions", anchor.Add(5*day + 12*time.Hour), domain.PhaseApplications},
		{"submissions open instant", w.SubmissionOpensAt, domain.PhaseSubmissions},
		{"inside submissions", anchor.Add(10 * day), domain.PhaseSubmissions},
		{"submissions close instant carries submissions", w.SubmissionClosesAt, domain.PhaseSubmissions},
		{"judging open instant", w.JudgingOpensAt, domain.PhaseJudging},
		{"inside judging", anchor.Add(30 * day), domain.PhaseJudging},
		{"judging close instant", w.JudgingClosesAt, domain.PhaseCompleted},
		{"long after", anchor.Add(400 * day), domain.PhaseCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.now, w))
		})
	}
}

func TestDerive_ApplicationsAtNow(t *testing.T) {
	now := time.Now()

	assert.Equal(t, domain.PhaseApplications, Derive(now, fintechWindow(now)))
}

func TestDerive_GapCarryAtSubmissionClose(t *testing.T) {
	w := fintechWindow(anchor)
	now := anchor.Add(25 * day)
	require.True(t, now.Equal(w.SubmissionClosesAt))
	require.True(t, now.Before(w.JudgingOpensAt))

	assert.Equal(t, domain.PhaseSubmissions, Derive(now, w))
}

func TestDerive_SharedBoundaryLaterStageWins(t *testing.T) {
	w := domain.Window{
		ApplicationOpensAt:  anchor,
		ApplicationClosesAt: anchor.Add(day),
		SubmissionOpensAt:   anchor.Add(day),
		SubmissionClosesAt:  anchor.Add(2 * day),
		JudgingOpensAt:      anchor.Add(2 * day),
		JudgingClosesAt:     anchor.Add(3 * day),
	}

	assert.Equal(t, domain.PhaseSubmissions, Derive(anchor.Add(day), w))
	assert.Equal(t, domain.PhaseJudging, Derive(anchor.Add(2*day), w))
	assert.Equal(t, domain.PhaseCompleted, Derive(anchor.Add(3*day), w))
}

func TestDerive_IgnoresLocation(t *testing.T) {
	istanbul := time.FixedZone("TRT", 3*60*60)
	newYork := time.FixedZone("EDT", -4*60*60)

	w := fintechWindow(anchor)
	local := domain.Window{
		ApplicationOpensAt:  w.ApplicationOpensAt.In(istanbul),
		ApplicationClosesAt: w.ApplicationClosesAt.In(istanbul),
		SubmissionOpensAt:   w.SubmissionOpensAt.In(istanbul),
		SubmissionClosesAt:  w.SubmissionClosesAt.In(istanbul),
		JudgingOpensAt:      w.JudgingOpensAt.In(istanbul),
		JudgingClosesAt:     w.JudgingClosesAt.In(istanbul),
		Timezone:            "Europe/Istanbul",
	}

	for _, offset := range []time.Duration{-15 * day, 5 * day, 25 * day, 40 * day} {
		now := anchor.Add(offset)
		assert.Equal(t, Derive(now, w), Derive(now.In(newYork), local))
	}
}

func TestDerive_MonotonicProgression(t *testing.T) {
	w := fintechWindow(anchor)

	rank := make(map[domain.Phase]int, len(domain.AllPhases))
	for i, p := range domain.AllPhases {
		rank[p] = i
	}

	var seen []domain.Phase
	prev := -1
	for now := anchor.Add(-30 * day); now.Before(anchor.Add(60 * day)); now = now.Add(time.Hour) {
		p := Derive(now, w)
		r := rank[p]
		require.GreaterOrEqual(t, r, prev, "phase went backwards at %s", now)
		require.LessOrEqual(t, r-prev, 1, "phase skipped at %s", now)
		if r != prev {
			seen = append(seen, p)
		}
		prev = r
	}

	assert.Equal(t, domain.AllPhases, seen)
}

func TestDerive_Totality(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	randomSpan := func(max time.Duration) time.Duration {
		return time.Duration(rng.Int64N(int64(max)))
	}

	for i := 0; i < 2000; i++ {
		aO := anchor.Add(randomSpan(365*day) - 180*day)
		aC := aO.Add(time.Second + randomSpan(30*day))
		sO := aC.Add(randomSpan(3 * day))
		sC := sO.Add(time.Second + randomSpan(30*day))
		jO := sC.Add(randomSpan(3 * day))
		jC := jO.Add(time.Second + randomSpan(30*day))
		w := domain.Window{
			ApplicationOpensAt: aO, ApplicationClosesAt: aC,
			SubmissionOpensAt: sO, SubmissionClosesAt: sC,
			JudgingOpensAt: jO, JudgingClosesAt: jC,
		}
		require.NoError(t, Validate(w))

		now := anchor.Add(randomSpan(730*day) - 365*day)
		assert.True(t, Derive(now, w).Valid())
	}
}

func TestCompute_WindowFlags(t *testing.T) {
	w := fintechWindow(anchor)

	tests := []struct {
		name            string
		now             time.Time
		phase           domain.Phase
		applicationOpen bool
		submissionOpen  bool
	}{
		{"upcoming", anchor.Add(-20 * day), domain.PhaseUpcoming, false, false},
		{"applications", anchor, domain.PhaseApplications, true, false},
		{"gap after applications", w.ApplicationClosesAt, domain.PhaseApplications, false, false},
		{"submissions", w.SubmissionOpensAt, domain.PhaseSubmissions, false, true},
		{"gap after submissions", w.SubmissionClosesAt, domain.PhaseSubmissions, false, false},
		{"judging", w.JudgingOpensAt, domain.PhaseJudging, false, false},
		{"completed", w.JudgingClosesAt, domain.PhaseCompleted, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := Compute(tt.now, w)

			assert.Equal(t, tt.phase, lc.DerivedPhase)
			assert.Equal(t, tt.applicationOpen, lc.IsApplicationWindowOpen)
			assert.Equal(t, tt.submissionOpen, lc.IsSubmissionWindowOpen)
			assert.True(t, tt.now.Equal(lc.EvaluatedAt))
		})
	}
}

func TestEvaluate_InvalidWindow(t *testing.T) {
	w := fintechWindow(anchor)
	w.SubmissionOpensAt = w.ApplicationClosesAt.Add(-day)

	_, err := Evaluate(anchor, w)

	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

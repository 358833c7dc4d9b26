package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

var anchor = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

// fintechWindow mirrors the seeded "current" hackathon: applications open
// since T-15d, judging closes at T+40d.
func fintechWindow(t time.Time) domain.Window {
	return domain.Window{
		ApplicationOpensAt:  t.Add(-15 * day),
		ApplicationClosesAt: t.Add(5 * day),
		SubmissionOpensAt:   t.Add(6 * day),
		SubmissionClosesAt:  t.Add(25 * day),
		JudgingOpensAt:      t.Add(26 * day),
		JudgingClosesAt:     t.Add(40 * day),
		Timezone:            "Europe/Istanbul",
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, Validate(fintechWindow(anchor)))
}

func TestValidate_SharedBoundariesAllowed(t *testing.T) {
	w := domain.Window{
		ApplicationOpensAt:  anchor,
		ApplicationClosesAt: anchor.Add(day),
		SubmissionOpensAt:   anchor.Add(day),
		SubmissionClosesAt:  anchor.Add(2 * day),
		JudgingOpensAt:      anchor.Add(2 * day),
		JudgingClosesAt:     anchor.Add(3 * day),
	}

	assert.NoError(t, Validate(w))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *domain.Window)
	}{
		{"application closes before opening", func(w *domain.Window) {
			w.ApplicationClosesAt = w.ApplicationOpensAt.Add(-time.Second)
		}},
		{"application closes at opening", func(w *domain.Window) {
			w.ApplicationClosesAt = w.ApplicationOpensAt
		}},
		{"submission opens before applications close", func(w *domain.Window) {
			w.SubmissionOpensAt = w.ApplicationClosesAt.Add(-time.Nanosecond)
		}},
		{"submission closes at opening", func(w *domain.Window) {
			w.SubmissionClosesAt = w.SubmissionOpensAt
		}},
		{"judging opens before submissions close", func(w *domain.Window) {
			w.JudgingOpensAt = w.SubmissionClosesAt.Add(-time.Hour)
		}},
		{"judging closes before opening", func(w *domain.Window) {
			w.JudgingClosesAt = w.JudgingOpensAt.Add(-day)
		}},
		{"missing judging bounds", func(w *domain.Window) {
			w.JudgingOpensAt = time.Time{}
			w.JudgingClosesAt = time.Time{}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := fintechWindow(anchor)
			tt.mutate(&w)

			err := Validate(w)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidWindow)

			var we *WindowError
			require.True(t, errors.As(err, &we))
			assert.NotEmpty(t, we.Violations)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	w := fintechWindow(anchor)
	w.ApplicationClosesAt = w.ApplicationOpensAt
	w.JudgingClosesAt = w.JudgingOpensAt

	var we *WindowError
	require.ErrorAs(t, Validate(w), &we)
	assert.Len(t, we.Violations, 2)
}

package lifecycle

import (
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

// Derive returns the phase of w at now. w must have passed Validate.
//
// Opens bounds are inclusive and closes bounds exclusive, so on a shared
// boundary the later stage wins. An instant in the gap between two stages
// keeps the phase of the stage that just closed.
func Derive(now time.Time, w domain.Window) domain.Phase {
	switch {
	case now.Before(w.ApplicationOpensAt):
		return domain.PhaseUpcoming
	case now.Before(w.ApplicationClosesAt):
		return domain.PhaseApplications
	case now.Before(w.SubmissionOpensAt):
		// applications closed, submissions not yet open
		return domain.PhaseApplications
	case now.Before(w.SubmissionClosesAt):
		return domain.PhaseSubmissions
	case now.Before(w.JudgingOpensAt):
		// submissions closed, judging not yet open
		return domain.PhaseSubmissions
	case now.Before(w.JudgingClosesAt):
		return domain.PhaseJudging
	default:
		return domain.PhaseCompleted
	}
}

// Compute derives the phase together with the open/closed state of the
// application and submission windows. In a gap the carried phase is reported
// but the stage window itself is closed.
func Compute(now time.Time, w domain.Window) domain.Lifecycle {
	return domain.Lifecycle{
		DerivedPhase:            Derive(now, w),
		IsApplicationWindowOpen: within(now, w.ApplicationOpensAt, w.ApplicationClosesAt),
		IsSubmissionWindowOpen:  within(now, w.SubmissionOpensAt, w.SubmissionClosesAt),
		EvaluatedAt:             now,
	}
}

// Evaluate validates w before computing its lifecycle.
func Evaluate(now time.Time, w domain.Window) (domain.Lifecycle, error) {
	if err := Validate(w); err != nil {
		return domain.Lifecycle{}, err
	}
	return Compute(now, w), nil
}

func within(now, opens, closes time.Time) bool {
	return !now.Before(opens) && now.Before(closes)
}

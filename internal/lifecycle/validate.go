// Package lifecycle derives a hackathon's phase from its stage window.
// Everything here is pure: callers pass the instant to evaluate at.
package lifecycle

import (
	"strings"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

// WindowError lists every ordering rule a window breaks.
type WindowError struct {
	Violations []string
}

func (e *WindowError) Error() string {
	return domain.ErrInvalidWindow.Error() + ": " + strings.Join(e.Violations, "; ")
}

func (e *WindowError) Unwrap() error {
	return domain.ErrInvalidWindow
}

// Validate checks aO < aC <= sO < sC <= jO < jC. Adjacent stages may share a
// boundary instant.
func Validate(w domain.Window) error {
	var v []string

	bounds := []struct {
		name string
		at   time.Time
	}{
		{"application_opens_at", w.ApplicationOpensAt},
		{"application_closes_at", w.ApplicationClosesAt},
		{"submission_opens_at", w.SubmissionOpensAt},
		{"submission_closes_at", w.SubmissionClosesAt},
		{"judging_opens_at", w.JudgingOpensAt},
		{"judging_closes_at", w.JudgingClosesAt},
	}
	for _, b := range bounds {
		if b.at.IsZero() {
			v = append(v, b.name+" is not set")
		}
	}
	if len(v) > 0 {
		return &WindowError{Violations: v}
	}

	if !w.ApplicationClosesAt.After(w.ApplicationOpensAt) {
		v = append(v, "application_closes_at must be after application_opens_at")
	}
	if w.SubmissionOpensAt.Before(w.ApplicationClosesAt) {
		v = append(v, "submission_opens_at must not be before application_closes_at")
	}
	if !w.SubmissionClosesAt.After(w.SubmissionOpensAt) {
		v = append(v, "submission_closes_at must be after submission_opens_at")
	}
	if w.JudgingOpensAt.Before(w.SubmissionClosesAt) {
		v = append(v, "judging_opens_at must not be before submission_closes_at")
	}
	if !w.JudgingClosesAt.After(w.JudgingOpensAt) {
		v = append(v, "judging_closes_at must be after judging_opens_at")
	}

	if len(v) > 0 {
		return &WindowError{Violations: v}
	}
	return nil
}

package domain

import "time"

type ReconcileOutcome string

const (
	OutcomeUnchanged ReconcileOutcome = "unchanged"
	OutcomeCorrected ReconcileOutcome = "corrected"
)

type ReconcileResult struct {
	HackathonID string           `json:"hackathon_id"`
	Slug        string           `json:"slug"`
	Outcome     ReconcileOutcome `json:"outcome"`
	From        Phase            `json:"from"`
	To          Phase            `json:"to"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
}

type RecordError struct {
	HackathonID string `json:"hackathon_id"`
	Slug        string `json:"slug"`
	Err         error  `json:"-"`
}

func (e RecordError) Error() string {
	return e.Slug + ": " + e.Err.Error()
}

func (e RecordError) Unwrap() error {
	return e.Err
}

// ReconcileReport summarises a batch run. Results holds corrected records only.
type ReconcileReport struct {
	Corrected int
	Unchanged int
	Failed    int
	Results   []ReconcileResult
	Errors    []RecordError
}

type SeedReport struct {
	Created []string
	Errors  []RecordError
}

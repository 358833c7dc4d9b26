package dto

import (
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

type HackathonResponse struct {
	ID                  string            `json:"id"`
	Slug                string            `json:"slug"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Visibility          string            `json:"visibility"`
	Phase               string            `json:"phase"`
	ApplicationOpensAt  string            `json:"application_opens_at"`
	ApplicationClosesAt string            `json:"application_closes_at"`
	SubmissionOpensAt   string            `json:"submission_opens_at"`
	SubmissionClosesAt  string            `json:"submission_closes_at"`
	JudgingOpensAt      string            `json:"judging_opens_at"`
	JudgingClosesAt     string            `json:"judging_closes_at"`
	Timezone            string            `json:"timezone"`
	Tags                []string          `json:"tags"`
	MaxParticipants     *int              `json:"max_participants,omitempty"`
	PrizesSummary       string            `json:"prizes_summary,omitempty"`
	CreatedAt           string            `json:"created_at"`
	Lifecycle           LifecycleResponse `json:"lifecycle"`
}

type LifecycleResponse struct {
	DerivedPhase            string `json:"derived_phase"`
	IsApplicationWindowOpen bool   `json:"is_application_window_open"`
	IsSubmissionWindowOpen  bool   `json:"is_submission_window_open"`
	EvaluatedAt             string `json:"evaluated_at"`
}

type ListHackathonsResponse struct {
	Items []HackathonResponse `json:"items"`
	Count int                 `json:"count"`
}

type RecordErrorResponse struct {
	HackathonID string `json:"hackathon_id,omitempty"`
	Slug        string `json:"slug"`
	Error       string `json:"error"`
}

type ReconcileResultResponse struct {
	HackathonID string `json:"hackathon_id"`
	Slug        string `json:"slug"`
	From        string `json:"from"`
	To          string `json:"to"`
}

type ReconcileResponse struct {
	Corrected int                       `json:"corrected"`
	Unchanged int                       `json:"unchanged"`
	Failed    int                       `json:"failed"`
	Results   []ReconcileResultResponse `json:"results"`
	Errors    []RecordErrorResponse     `json:"errors"`
}

type SeedResponse struct {
	Success bool                  `json:"success"`
	Created int                   `json:"created"`
	Slugs   []string              `json:"slugs"`
	Message string                `json:"message"`
	Errors  []RecordErrorResponse `json:"errors,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToHackathonResponse(v *domain.HackathonView) HackathonResponse {
	h, w := v.Hackathon, v.Hackathon.Window
	tags := h.Tags
	if tags == nil {
		tags = []string{}
	}

	return HackathonResponse{
		ID:                  h.ID,
		Slug:                h.Slug,
		Title:               h.Title,
		Description:         h.Description,
		Visibility:          string(h.Visibility),
		Phase:               string(h.Phase),
		ApplicationOpensAt:  w.ApplicationOpensAt.Format(time.RFC3339),
		ApplicationClosesAt: w.ApplicationClosesAt.Format(time.RFC3339),
		SubmissionOpensAt:   w.SubmissionOpensAt.Format(time.RFC3339),
		SubmissionClosesAt:  w.SubmissionClosesAt.Format(time.RFC3339),
		JudgingOpensAt:      w.JudgingOpensAt.Format(time.RFC3339),
		JudgingClosesAt:     w.JudgingClosesAt.Format(time.RFC3339),
		Timezone:            w.Timezone,
		Tags:                tags,
		MaxParticipants:     h.MaxParticipants,
		PrizesSummary:       h.PrizesSummary,
		CreatedAt:           h.CreatedAt.Format(time.RFC3339),
		Lifecycle: LifecycleResponse{
			DerivedPhase:            string(v.Lifecycle.DerivedPhase),
			IsApplicationWindowOpen: v.Lifecycle.IsApplicationWindowOpen,
			IsSubmissionWindowOpen:  v.Lifecycle.IsSubmissionWindowOpen,
			EvaluatedAt:             v.Lifecycle.EvaluatedAt.Format(time.RFC3339),
		},
	}
}

func ToRecordErrors(errs []domain.RecordError) []RecordErrorResponse {
	res := make([]RecordErrorResponse, 0, len(errs))
	for _, e := range errs {
		res = append(res, RecordErrorResponse{
			HackathonID: e.HackathonID,
			Slug:        e.Slug,
			Error:       e.Err.Error(),
		})
	}
	return res
}

func ToReconcileResponse(r *domain.ReconcileReport) ReconcileResponse {
	results := make([]ReconcileResultResponse, 0, len(r.Results))
	for _, res := range r.Results {
		results = append(results, ReconcileResultResponse{
			HackathonID: res.HackathonID,
			Slug:        res.Slug,
			From:        string(res.From),
			To:          string(res.To),
		})
	}

	return ReconcileResponse{
		Corrected: r.Corrected,
		Unchanged: r.Unchanged,
		Failed:    r.Failed,
		Results:   results,
		Errors:    ToRecordErrors(r.Errors),
	}
}

package domain

import (
	"fmt"
	"time"
)

type Phase string

const (
	PhaseUpcoming     Phase = "upcoming"
	PhaseApplications Phase = "applications"
	PhaseSubmissions  Phase = "submissions"
	PhaseJudging      Phase = "judging"
	PhaseCompleted    Phase = "completed"
)

// AllPhases is ordered by lifecycle progression.
var AllPhases = []Phase{PhaseUpcoming, PhaseApplications, PhaseSubmissions, PhaseJudging, PhaseCompleted}

func (p Phase) Valid() bool {
	for _, v := range AllPhases {
		if p == v {
			return true
		}
	}
	return false
}

func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhase, s)
	}
	return p, nil
}

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityUnlisted:
		return true
	}
	return false
}

// Window holds the six stage bounds of a hackathon. Every stage covers
// [opens, closes). Timezone is a display label only.
type Window struct {
	ApplicationOpensAt  time.Time `json:"application_opens_at"`
	ApplicationClosesAt time.Time `json:"application_closes_at"`
	SubmissionOpensAt   time.Time `json:"submission_opens_at"`
	SubmissionClosesAt  time.Time `json:"submission_closes_at"`
	JudgingOpensAt      time.Time `json:"judging_opens_at"`
	JudgingClosesAt     time.Time `json:"judging_closes_at"`
	Timezone            string    `json:"timezone"`
}

type Hackathon struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Visibility      Visibility `json:"visibility"`
	Window          Window     `json:"window"`
	Phase           Phase      `json:"phase"`
	Tags            []string   `json:"tags"`
	MaxParticipants *int       `json:"max_participants"`
	PrizesSummary   string     `json:"prizes_summary"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type Lifecycle struct {
	DerivedPhase            Phase     `json:"derived_phase"`
	IsApplicationWindowOpen bool      `json:"is_application_window_open"`
	IsSubmissionWindowOpen  bool      `json:"is_submission_window_open"`
	EvaluatedAt             time.Time `json:"evaluated_at"`
}

type HackathonView struct {
	Hackathon Hackathon `json:"hackathon"`
	Lifecycle Lifecycle `json:"lifecycle"`
}

// Selector narrows a batch lookup. Zero value matches every hackathon.
type Selector struct {
	IDs        []string
	Slugs      []string
	Phases     []Phase
	Tag        string
	Visibility Visibility
	// Search matches title or description case-insensitively, or a tag exactly.
	Search string
	// ActiveAt, when set, keeps only hackathons whose submissions are still
	// open or upcoming at that instant.
	ActiveAt time.Time
	Limit    int
}

type CreateHackathonInput struct {
	Slug            string
	Title           string
	Description     string
	Visibility      Visibility
	Window          Window
	InitialPhase    Phase
	Tags            []string
	MaxParticipants *int
	PrizesSummary   string
}

// ListFilter hides hackathons whose submissions have closed unless
// IncludePast is set or a Phase is requested.
type ListFilter struct {
	Phase       Phase
	Tag         string
	Visibility  Visibility
	Search      string
	IncludePast bool
	Limit       int
}

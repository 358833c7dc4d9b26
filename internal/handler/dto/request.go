package dto

type CreateHackathonRequest struct {
	Slug                string   `json:"slug" binding:"required"`
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	Visibility          string   `json:"visibility"`
	ApplicationOpensAt  string   `json:"application_opens_at" binding:"required"`
	ApplicationClosesAt string   `json:"application_closes_at" binding:"required"`
	SubmissionOpensAt   string   `json:"submission_opens_at" binding:"required"`
	SubmissionClosesAt  string   `json:"submission_closes_at" binding:"required"`
	JudgingOpensAt      string   `json:"judging_opens_at" binding:"required"`
	JudgingClosesAt     string   `json:"judging_closes_at" binding:"required"`
	Timezone            string   `json:"timezone"`
	Phase               string   `json:"phase"`
	Tags                []string `json:"tags"`
	MaxParticipants     *int     `json:"max_participants"`
	PrizesSummary       string   `json:"prizes_summary"`
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stpnv0/HackathonLifecycle/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type HackathonSvc interface {
	Create(ctx context.Context, input domain.CreateHackathonInput) (*domain.HackathonView, error)
	Get(ctx context.Context, idOrSlug string) (*domain.HackathonView, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.HackathonView, error)
	SeedDemo(ctx context.Context) *domain.SeedReport
}

type ReconcileSvc interface {
	ReconcileAll(ctx context.Context, sel domain.Selector) (*domain.ReconcileReport, error)
}

type Handler struct {
	hackathonService HackathonSvc
	reconcileService ReconcileSvc
}

func NewHandler(hackathonService HackathonSvc, reconcileService ReconcileSvc) *Handler {
	return &Handler{
		hackathonService: hackathonService,
		reconcileService: reconcileService,
	}
}

// Hackathons

func (h *Handler) CreateHackathon(c *ginext.Context) {
	var req dto.CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	window, err := parseWindow(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateHackathonInput{
		Slug:            req.Slug,
		Title:           req.Title,
		Description:     req.Description,
		Visibility:      domain.Visibility(req.Visibility),
		Window:          window,
		InitialPhase:    domain.Phase(req.Phase),
		Tags:            req.Tags,
		MaxParticipants: req.MaxParticipants,
		PrizesSummary:   req.PrizesSummary,
	}

	view, err := h.hackathonService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHackathonResponse(view))
}

// GetHackathon accepts either the hackathon id or its slug.
func (h *Handler) GetHackathon(c *ginext.Context) {
	view, err := h.hackathonService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHackathonResponse(view))
}

// ListHackathons hides hackathons whose submissions have closed unless
// include_past=true or a phase is requested.
func (h *Handler) ListHackathons(c *ginext.Context) {
	filter := domain.ListFilter{
		Phase:      domain.Phase(c.Query("phase")),
		Tag:        c.Query("tag"),
		Visibility: domain.Visibility(c.Query("visibility")),
		Search:     c.Query("search"),
	}

	if raw := c.Query("include_past"); raw != "" {
		includePast, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "include_past must be a boolean"})
			return
		}
		filter.IncludePast = includePast
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		filter.Limit = limit
	}

	views, err := h.hackathonService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := make([]dto.HackathonResponse, 0, len(views))
	for i := range views {
		items = append(items, dto.ToHackathonResponse(&views[i]))
	}

	c.JSON(http.StatusOK, dto.ListHackathonsResponse{Items: items, Count: len(items)})
}

// Admin

// ReconcileHackathons runs a reconciliation pass. Repeated phase and slug
// query parameters narrow the batch.
func (h *Handler) ReconcileHackathons(c *ginext.Context) {
	sel := domain.Selector{Slugs: c.QueryArray("slug")}
	for _, raw := range c.QueryArray("phase") {
		p, err := domain.ParsePhase(raw)
		if err != nil {
			h.handleError(c, err)
			return
		}
		sel.Phases = append(sel.Phases, p)
	}

	report, err := h.reconcileService.ReconcileAll(c.Request.Context(), sel)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReconcileResponse(report))
}

func (h *Handler) SeedHackathons(c *ginext.Context) {
	report := h.hackathonService.SeedDemo(c.Request.Context())

	resp := dto.SeedResponse{
		Success: len(report.Errors) == 0,
		Created: len(report.Created),
		Slugs:   report.Created,
		Message: fmt.Sprintf("created %d hackathons", len(report.Created)),
	}
	if resp.Slugs == nil {
		resp.Slugs = []string{}
	}
	if len(report.Errors) > 0 {
		resp.Errors = dto.ToRecordErrors(report.Errors)
		resp.Message = fmt.Sprintf("created %d hackathons, %d failed", len(report.Created), len(report.Errors))
	}

	c.JSON(http.StatusOK, resp)
}

func parseWindow(req dto.CreateHackathonRequest) (domain.Window, error) {
	var w domain.Window
	fields := []struct {
		name string
		raw  string
		dst  *time.Time
	}{
		{"application_opens_at", req.ApplicationOpensAt, &w.ApplicationOpensAt},
		{"application_closes_at", req.ApplicationClosesAt, &w.ApplicationClosesAt},
		{"submission_opens_at", req.SubmissionOpensAt, &w.SubmissionOpensAt},
		{"submission_closes_at", req.SubmissionClosesAt, &w.SubmissionClosesAt},
		{"judging_opens_at", req.JudgingOpensAt, &w.JudgingOpensAt},
		{"judging_closes_at", req.JudgingClosesAt, &w.JudgingClosesAt},
	}

	for _, f := range fields {
		t, err := time.Parse(time.RFC3339, f.raw)
		if err != nil {
			return domain.Window{}, fmt.Errorf("invalid %s format, expected RFC3339", f.name)
		}
		*f.dst = t.UTC()
	}
	w.Timezone = req.Timezone

	return w, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrHackathonNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlugTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPhase),
		errors.Is(err, domain.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

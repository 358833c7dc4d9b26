package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stpnv0/HackathonLifecycle/internal/lifecycle"
	"github.com/stpnv0/HackathonLifecycle/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	defaultTimezone  = "UTC"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

type lifecycleReader interface {
	Lifecycle(ctx context.Context, h *domain.Hackathon) (domain.Lifecycle, error)
}

type HackathonService struct {
	repo       ports.HackathonRepo
	reconciler phaseReconciler
	facade     lifecycleReader
	logger     logger.Logger
	now        func() time.Time
}

func NewHackathonService(
	repo ports.HackathonRepo,
	reconciler phaseReconciler,
	facade lifecycleReader,
	logger logger.Logger,
) *HackathonService {
	return &HackathonService{
		repo:       repo,
		reconciler: reconciler,
		facade:     facade,
		logger:     logger,
		now:        time.Now,
	}
}

// Create stores a new hackathon with the caller's initial phase and corrects
// that phase right away. A failed correction does not fail the call: the row
// exists and the scheduler will correct it.
func (s *HackathonService) Create(ctx context.Context, input domain.CreateHackathonInput) (*domain.HackathonView, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := lifecycle.Validate(input.Window); err != nil {
		return nil, err
	}

	phase := input.InitialPhase
	if phase == "" {
		phase = domain.PhaseUpcoming
	}
	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}
	window := input.Window
	if window.Timezone == "" {
		window.Timezone = defaultTimezone
	}

	tags := make([]string, 0, len(input.Tags))
	for _, t := range input.Tags {
		tags = append(tags, strings.ToLower(strings.TrimSpace(t)))
	}

	now := s.now().UTC()
	h := &domain.Hackathon{
		ID:              uuid.New().String(),
		Slug:            input.Slug,
		Title:           input.Title,
		Description:     input.Description,
		Visibility:      visibility,
		Window:          window,
		Phase:           phase,
		Tags:            tags,
		MaxParticipants: input.MaxParticipants,
		PrizesSummary:   input.PrizesSummary,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("create hackathon: %w", err)
	}

	evaluatedAt := now
	res, err := s.reconciler.Reconcile(ctx, h)
	if err != nil {
		s.logger.Warn("hackathon created with uncorrected phase",
			logger.String("hackathon_id", h.ID),
			logger.String("slug", h.Slug),
			logger.String("error", err.Error()),
		)
	} else {
		evaluatedAt = res.EvaluatedAt
	}

	s.logger.Info("hackathon created",
		logger.String("hackathon_id", h.ID),
		logger.String("slug", h.Slug),
		logger.String("phase", string(h.Phase)),
	)

	return &domain.HackathonView{
		Hackathon: *h,
		Lifecycle: lifecycle.Compute(evaluatedAt, h.Window),
	}, nil
}

// Get looks a hackathon up by id or slug.
func (s *HackathonService) Get(ctx context.Context, idOrSlug string) (*domain.HackathonView, error) {
	var (
		h   *domain.Hackathon
		err error
	)
	if _, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		h, err = s.repo.GetByID(ctx, idOrSlug)
	} else {
		h, err = s.repo.GetBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}

	lc, err := s.facade.Lifecycle(ctx, h)
	if err != nil {
		return nil, err
	}

	return &domain.HackathonView{Hackathon: *h, Lifecycle: lc}, nil
}

// List filters on the phase derived from each window, whatever the freshness
// policy reports. Hackathons whose lifecycle cannot be resolved are left out.
func (s *HackathonService) List(ctx context.Context, filter domain.ListFilter) ([]domain.HackathonView, error) {
	if filter.Phase != "" && !filter.Phase.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPhase, filter.Phase)
	}
	if filter.Visibility != "" && !filter.Visibility.Valid() {
		return nil, fmt.Errorf("%w: unknown visibility %q", domain.ErrValidation, filter.Visibility)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	sel := domain.Selector{
		Tag:        strings.ToLower(filter.Tag),
		Visibility: filter.Visibility,
		Search:     strings.TrimSpace(filter.Search),
		Limit:      limit,
	}
	if !filter.IncludePast && filter.Phase == "" {
		sel.ActiveAt = s.now().UTC()
	}

	hackathons, err := s.repo.Find(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("list hackathons: %w", err)
	}

	res := make([]domain.HackathonView, 0, len(hackathons))
	for _, h := range hackathons {
		lc, err := s.facade.Lifecycle(ctx, h)
		if err != nil {
			s.logger.Warn("skipping hackathon without lifecycle",
				logger.String("hackathon_id", h.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if filter.Phase != "" && lifecycle.Derive(lc.EvaluatedAt, h.Window) != filter.Phase {
			continue
		}
		res = append(res, domain.HackathonView{Hackathon: *h, Lifecycle: lc})
	}

	return res, nil
}

// Seed creates every input independently and collects per-record failures.
func (s *HackathonService) Seed(ctx context.Context, inputs []domain.CreateHackathonInput) *domain.SeedReport {
	report := &domain.SeedReport{}

	for _, in := range inputs {
		if ctx.Err() != nil {
			report.Errors = append(report.Errors, domain.RecordError{Slug: in.Slug, Err: ctx.Err()})
			continue
		}

		view, err := s.Create(ctx, in)
		if err != nil {
			report.Errors = append(report.Errors, domain.RecordError{Slug: in.Slug, Err: err})
			continue
		}
		report.Created = append(report.Created, view.Hackathon.Slug)
	}

	s.logger.Info("hackathon seed finished",
		logger.Int("created", len(report.Created)),
		logger.Int("errors", len(report.Errors)),
	)

	return report
}

// SeedDemo seeds the built-in demo set around the current time.
func (s *HackathonService) SeedDemo(ctx context.Context) *domain.SeedReport {
	return s.Seed(ctx, DemoHackathons(time.Now()))
}

func validateInput(in domain.CreateHackathonInput) error {
	if n := len(in.Slug); n < 3 || n > 100 || !slugPattern.MatchString(in.Slug) {
		return fmt.Errorf("%w: slug must be 3-100 lowercase letters, digits or dashes", domain.ErrValidation)
	}
	if n := utf8.RuneCountInString(in.Title); n < 5 || n > 150 {
		return fmt.Errorf("%w: title must be 5-150 characters", domain.ErrValidation)
	}
	if in.Visibility != "" && !in.Visibility.Valid() {
		return fmt.Errorf("%w: unknown visibility %q", domain.ErrValidation, in.Visibility)
	}
	if in.InitialPhase != "" && !in.InitialPhase.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPhase, in.InitialPhase)
	}
	if in.MaxParticipants != nil && *in.MaxParticipants <= 0 {
		return fmt.Errorf("%w: max_participants must be positive", domain.ErrValidation)
	}
	for _, t := range in.Tags {
		if n := utf8.RuneCountInString(strings.TrimSpace(t)); n == 0 || n > 40 {
			return fmt.Errorf("%w: tags must be 1-40 characters", domain.ErrValidation)
		}
	}
	return nil
}

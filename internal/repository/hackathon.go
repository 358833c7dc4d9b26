package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const hackathonColumns = `id, slug, title, description, visibility,
		application_opens_at, application_closes_at,
		submission_opens_at, submission_closes_at,
		judging_opens_at, judging_closes_at, timezone,
		phase, tags, max_participants, prizes_summary, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type HackathonRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHackathonRepo(db *dbpg.DB) *HackathonRepository {
	return &HackathonRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HackathonRepository) Create(ctx context.Context, h *domain.Hackathon) error {
	query := `INSERT INTO hackathons (` + hackathonColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	var maxParticipants sql.NullInt64
	if h.MaxParticipants != nil {
		maxParticipants = sql.NullInt64{Int64: int64(*h.MaxParticipants), Valid: true}
	}

	w := h.Window
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		h.ID, h.Slug, h.Title, h.Description, h.Visibility,
		w.ApplicationOpensAt, w.ApplicationClosesAt,
		w.SubmissionOpensAt, w.SubmissionClosesAt,
		w.JudgingOpensAt, w.JudgingClosesAt, w.Timezone,
		h.Phase, pq.Array(h.Tags), maxParticipants, h.PrizesSummary,
		h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert hackathon: %w", err)
	}

	return nil
}

func (r *HackathonRepository) GetByID(ctx context.Context, id string) (*domain.Hackathon, error) {
	return r.getOne(ctx, "id", id)
}

func (r *HackathonRepository) GetBySlug(ctx context.Context, slug string) (*domain.Hackathon, error) {
	return r.getOne(ctx, "slug", slug)
}

func (r *HackathonRepository) getOne(ctx context.Context, column, value string) (*domain.Hackathon, error) {
	query := `SELECT ` + hackathonColumns + `
			  FROM hackathons
			  WHERE ` + column + `=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, value)
	if err != nil {
		return nil, fmt.Errorf("get hackathon: %w", err)
	}

	h, err := scanHackathon(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("scan hackathon: %w", err)
	}

	return h, nil
}

// Find returns hackathons matching sel ordered by application opening.
func (r *HackathonRepository) Find(ctx context.Context, sel domain.Selector) ([]*domain.Hackathon, error) {
	query, args := buildFindQuery(sel)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find hackathons: %w", err)
	}
	defer rows.Close()

	var res []*domain.Hackathon
	for rows.Next() {
		h, err := scanHackathon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hackathon: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}

// UpdatePhase overwrites the stored phase. Writing the same value twice is a no-op
// for readers, so concurrent reconcilers need no locking here.
func (r *HackathonRepository) UpdatePhase(ctx context.Context, id string, phase domain.Phase) error {
	query := `UPDATE hackathons
			  SET phase = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, phase)
	if err != nil {
		return fmt.Errorf("update phase: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("phase rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrHackathonNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildFindQuery(sel domain.Selector) (string, []any) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(sel.IDs) > 0 {
		where = append(where, "id = ANY("+arg(pq.Array(sel.IDs))+")")
	}
	if len(sel.Slugs) > 0 {
		where = append(where, "slug = ANY("+arg(pq.Array(sel.Slugs))+")")
	}
	if len(sel.Phases) > 0 {
		phases := make([]string, 0, len(sel.Phases))
		for _, p := range sel.Phases {
			phases = append(phases, string(p))
		}
		where = append(where, "phase = ANY("+arg(pq.Array(phases))+")")
	}
	if sel.Tag != "" {
		where = append(where, arg(sel.Tag)+" = ANY(tags)")
	}
	if sel.Visibility != "" {
		where = append(where, "visibility = "+arg(string(sel.Visibility)))
	}
	if sel.Search != "" {
		pattern := arg("%" + likeEscaper.Replace(sel.Search) + "%")
		where = append(where, "(title ILIKE "+pattern+
			" OR description ILIKE "+pattern+
			" OR "+arg(strings.ToLower(sel.Search))+" = ANY(tags))")
	}
	if !sel.ActiveAt.IsZero() {
		where = append(where, "submission_closes_at >= "+arg(sel.ActiveAt))
	}

	var b strings.Builder
	b.WriteString("SELECT " + hackathonColumns + "\n\t\t\t  FROM hackathons")
	if len(where) > 0 {
		b.WriteString("\n\t\t\t  WHERE " + strings.Join(where, " AND "))
	}
	b.WriteString("\n\t\t\t  ORDER BY application_opens_at, id")
	if sel.Limit > 0 {
		b.WriteString("\n\t\t\t  LIMIT " + arg(sel.Limit))
	}

	return b.String(), args
}

func scanHackathon(row rowScanner) (*domain.Hackathon, error) {
	var (
		h               domain.Hackathon
		tags            pq.StringArray
		maxParticipants sql.NullInt64
	)
	err := row.Scan(
		&h.ID, &h.Slug, &h.Title, &h.Description, &h.Visibility,
		&h.Window.ApplicationOpensAt, &h.Window.ApplicationClosesAt,
		&h.Window.SubmissionOpensAt, &h.Window.SubmissionClosesAt,
		&h.Window.JudgingOpensAt, &h.Window.JudgingClosesAt, &h.Window.Timezone,
		&h.Phase, &tags, &maxParticipants, &h.PrizesSummary,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	h.Tags = []string(tags)
	if maxParticipants.Valid {
		n := int(maxParticipants.Int64)
		h.MaxParticipants = &n
	}

	return &h, nil
}

package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildFindQuery_NoFilters(t *testing.T) {
	query, args := buildFindQuery(domain.Selector{})

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
	assert.Contains(t, query, "ORDER BY application_opens_at, id")
	assert.Empty(t, args)
}

func TestBuildFindQuery_AllFilters(t *testing.T) {
	query, args := buildFindQuery(domain.Selector{
		IDs:        []string{"a", "b"},
		Slugs:      []string{"fintech"},
		Phases:     []domain.Phase{domain.PhaseUpcoming, domain.PhaseApplications},
		Tag:        "ai",
		Visibility: domain.VisibilityPublic,
		Limit:      20,
	})

	assert.Contains(t, query, "id = ANY($1)")
	assert.Contains(t, query, "slug = ANY($2)")
	assert.Contains(t, query, "phase = ANY($3)")
	assert.Contains(t, query, "$4 = ANY(tags)")
	assert.Contains(t, query, "visibility = $5")
	assert.True(t, strings.HasSuffix(query, "LIMIT $6"))
	assert.Equal(t, 4, strings.Count(query, " AND "))

	assert.Equal(t, []any{
		pq.Array([]string{"a", "b"}),
		pq.Array([]string{"fintech"}),
		pq.Array([]string{"upcoming", "applications"}),
		"ai",
		"public",
		20,
	}, args)
}

func TestBuildFindQuery_NumbersOnlyUsedFilters(t *testing.T) {
	query, args := buildFindQuery(domain.Selector{Tag: "web3", Limit: 5})

	assert.Contains(t, query, "WHERE $1 = ANY(tags)")
	assert.True(t, strings.HasSuffix(query, "LIMIT $2"))
	assert.Equal(t, []any{"web3", 5}, args)
}

func TestBuildFindQuery_SearchAndActive(t *testing.T) {
	activeAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	query, args := buildFindQuery(domain.Selector{
		Search:   "Block_Chain 100%",
		ActiveAt: activeAt,
	})

	assert.Contains(t, query, "(title ILIKE $1 OR description ILIKE $1 OR $2 = ANY(tags))")
	assert.Contains(t, query, "submission_closes_at >= $3")
	assert.Equal(t, []any{
		`%Block\_Chain 100\%%`,
		"block_chain 100%",
		activeAt,
	}, args)
}

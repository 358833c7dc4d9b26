package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestNewTelegramAlerter_DisabledWithoutCredentials(t *testing.T) {
	a, err := NewTelegramAlerter("", 42, newTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, a.bot)

	a, err = NewTelegramAlerter("token", 0, newTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, a.bot)

	// disabled alerter swallows alerts
	a.AlertInvalidWindows(context.Background(), []domain.RecordError{
		{Slug: "broken", Err: domain.ErrInvalidWindow},
	})
}

func TestInvalidWindowsText(t *testing.T) {
	text := invalidWindowsText([]domain.RecordError{
		{Slug: "broken", Err: fmt.Errorf("%w: judging_closes_at must be after judging_opens_at", domain.ErrInvalidWindow)},
		{Slug: "other", Err: errors.New("zero application_opens_at")},
	})

	assert.True(t, strings.HasPrefix(text, "*Hackathons with invalid windows: 2*"))
	assert.Contains(t, text, "`broken`: invalid hackathon window")
	assert.Contains(t, text, "`other`: zero application_opens_at")
}

func TestInvalidWindowsText_Truncates(t *testing.T) {
	records := make([]domain.RecordError, maxListed+5)
	for i := range records {
		records[i] = domain.RecordError{Slug: fmt.Sprintf("h-%d", i), Err: domain.ErrInvalidWindow}
	}

	text := invalidWindowsText(records)

	assert.Equal(t, maxListed, strings.Count(text, "\n- "))
	assert.Contains(t, text, "...and 5 more")
}

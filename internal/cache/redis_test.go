package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseCache_DisabledAlwaysMisses(t *testing.T) {
	c, err := NewPhaseCache(context.Background(), Options{})
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	require.NoError(t, c.Set(context.Background(), "h1", domain.PhaseJudging))

	phase, ok, err := c.Get(context.Background(), "h1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, phase)
	assert.NoError(t, c.Close())
}

func TestPhaseCache_Key(t *testing.T) {
	assert.Equal(t, "hackathon:phase:0b7c", key("0b7c"))
}

func TestPhaseCache_DisabledMarksAlertsInProcess(t *testing.T) {
	c, err := NewPhaseCache(context.Background(), Options{AlertTTL: time.Hour})
	require.NoError(t, err)

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return at }

	first, err := c.MarkAlerted(context.Background(), "h1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := c.MarkAlerted(context.Background(), "h1")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := c.MarkAlerted(context.Background(), "h2")
	require.NoError(t, err)
	assert.True(t, other)

	at = at.Add(time.Hour)
	expired, err := c.MarkAlerted(context.Background(), "h1")
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestPhaseCache_AlertKey(t *testing.T) {
	assert.Equal(t, "hackathon:alerted:0b7c", alertKey("0b7c"))
}

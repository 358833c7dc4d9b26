// Package cache keeps the last reconciled phase of each hackathon in Redis so
// eventual reads can skip the database row.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/HackathonLifecycle/internal/domain"
)

const (
	keyPrefix      = "hackathon:phase:"
	alertKeyPrefix = "hackathon:alerted:"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	// AlertTTL is how long an invalid-window alert suppresses repeats.
	AlertTTL time.Duration
}

// PhaseCache is safe to use when disabled: Get always misses, Set does
// nothing and alert marks are kept in process memory.
type PhaseCache struct {
	client   *redis.Client
	ttl      time.Duration
	alertTTL time.Duration

	mu      sync.Mutex
	alerted map[string]time.Time
	now     func() time.Time
}

// NewPhaseCache connects to Redis. An empty address returns a disabled cache.
func NewPhaseCache(ctx context.Context, opts Options) (*PhaseCache, error) {
	if opts.Addr == "" {
		return &PhaseCache{
			alertTTL: opts.AlertTTL,
			alerted:  make(map[string]time.Time),
			now:      time.Now,
		}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &PhaseCache{client: client, ttl: opts.TTL, alertTTL: opts.AlertTTL}, nil
}

func (c *PhaseCache) Enabled() bool {
	return c.client != nil
}

func (c *PhaseCache) Get(ctx context.Context, hackathonID string) (domain.Phase, bool, error) {
	if c.client == nil {
		return "", false, nil
	}

	val, err := c.client.Get(ctx, key(hackathonID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get cached phase: %w", err)
	}

	phase, err := domain.ParsePhase(val)
	if err != nil {
		// stale value from an older schema, treat as a miss
		return "", false, nil
	}

	return phase, true, nil
}

func (c *PhaseCache) Set(ctx context.Context, hackathonID string, phase domain.Phase) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Set(ctx, key(hackathonID), string(phase), c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached phase: %w", err)
	}
	return nil
}

// MarkAlerted records an admin alert for hackathonID and reports whether no
// alert was recorded within AlertTTL before it.
func (c *PhaseCache) MarkAlerted(ctx context.Context, hackathonID string) (bool, error) {
	if c.client == nil {
		return c.markLocal(hackathonID), nil
	}

	ok, err := c.client.SetNX(ctx, alertKey(hackathonID), 1, c.alertTTL).Result()
	if err != nil {
		return false, fmt.Errorf("mark alerted: %w", err)
	}
	return ok, nil
}

func (c *PhaseCache) markLocal(hackathonID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if at, ok := c.alerted[hackathonID]; ok && (c.alertTTL <= 0 || now.Sub(at) < c.alertTTL) {
		return false
	}
	c.alerted[hackathonID] = now
	return true
}

func (c *PhaseCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func key(hackathonID string) string {
	return keyPrefix + hackathonID
}

func alertKey(hackathonID string) string {
	return alertKeyPrefix + hackathonID
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestConfig_CacheTTL(t *testing.T) {
	cfg := &Config{Scheduler: SchedulerConfig{Interval: time.Minute}}
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL())

	cfg.Redis.PhaseTTL = 10 * time.Minute
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL())
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.WarnLevel, LoggerConfig{Level: "warn"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "anything"}.LogLevel())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := &PostgresConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Database: "hackathons", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=hackathons sslmode=disable", p.DSN())
}

// Package ratelimit throttles form submissions per client.
package ratelimit

import (
	"strings"
	"time"

	"github.com/rpupo63/nexusconsult-backend/config"
	"github.com/rs/zerolog/log"
)

// Limiter decides whether one more request from key fits in its quota.
type Limiter interface {
	Allow(key string) bool
}

// New returns a Redis-backed limiter when cfg names a Redis server and an
// in-memory one otherwise. A non-positive limit disables limiting.
func New(cfg config.Config) (Limiter, error) {
	limit := cfg.SubmitLimitPerMinute
	if limit <= 0 {
		return Unlimited{}, nil
	}
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		log.Info().Int("perMinute", limit).Msg("Using in-memory submit limiter")
		return NewMemoryLimiter(limit, time.Minute), nil
	}
	log.Info().Str("addr", cfg.RedisAddr).Int("perMinute", limit).Msg("Using Redis submit limiter")
	return NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, "", limit, time.Minute)
}

// Unlimited allows everything.
type Unlimited struct{}

func (Unlimited) Allow(string) bool { return true }

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "unknown"
	}
	return key
}

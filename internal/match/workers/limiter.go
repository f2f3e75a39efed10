package workers

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"smartjob-utils/internal/config"
	"smartjob-utils/internal/logging"
)

// userLimiter tracks rate limiting state for a single user.
type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	requests int64
	mu       sync.RWMutex
}

// RateLimiter enforces a per-user search rate limit. Limiters for idle users
// are dropped by a periodic cleanup routine so the map does not grow without
// bound.
type RateLimiter struct {
	config        *config.Config
	userLimiters  map[string]*userLimiter
	mu            sync.RWMutex
	logger        logging.Logger
	cleanupTicker *time.Ticker
	stopCleanup   chan bool
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := &RateLimiter{
		config:        cfg,
		userLimiters:  make(map[string]*userLimiter),
		logger:        logging.GetGlobalLogger().WithField("component", "rate_limiter"),
		cleanupTicker: time.NewTicker(5 * time.Minute),
		stopCleanup:   make(chan bool),
	}

	go rl.cleanupRoutine()

	return rl
}

// Allow checks whether the given user may run another search right now.
func (rl *RateLimiter) Allow(userID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	userID = strings.ToLower(userID)
	limiter := rl.getUserLimiter(userID)

	allowed := limiter.limiter.Allow()
	if allowed {
		limiter.mu.Lock()
		limiter.requests++
		limiter.lastSeen = time.Now()
		limiter.mu.Unlock()
	} else {
		rl.logger.Debug("Search rejected by rate limiter", map[string]interface{}{
			"user_id": userID,
		})
	}

	return allowed
}

// getUserLimiter gets or creates a rate limiter for a user. Caller holds rl.mu.
func (rl *RateLimiter) getUserLimiter(userID string) *userLimiter {
	if limiter, exists := rl.userLimiters[userID]; exists {
		return limiter
	}

	// Rate limit is configured per minute; the token bucket refills per second.
	rps := rate.Limit(float64(rl.config.Workers.RateLimit) / 60.0)
	burst := 5

	limiter := &userLimiter{
		limiter:  rate.NewLimiter(rps, burst),
		lastSeen: time.Now(),
	}

	rl.userLimiters[userID] = limiter
	return limiter
}

// GetUserStats returns rate limiting statistics for a specific user
func (rl *RateLimiter) GetUserStats(userID string) map[string]interface{} {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	stats := make(map[string]interface{})
	if limiter, exists := rl.userLimiters[strings.ToLower(userID)]; exists {
		limiter.mu.RLock()
		stats["requests"] = limiter.requests
		stats["last_seen"] = limiter.lastSeen
		stats["limit"] = limiter.limiter.Limit()
		stats["burst"] = limiter.limiter.Burst()
		limiter.mu.RUnlock()
	}

	return stats
}

func (rl *RateLimiter) cleanupRoutine() {
	for {
		select {
		case <-rl.cleanupTicker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			rl.cleanupTicker.Stop()
			return
		}
	}
}

// cleanup removes limiters for users idle longer than ten minutes.
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	removedCount := 0

	for userID, limiter := range rl.userLimiters {
		limiter.mu.RLock()
		lastSeen := limiter.lastSeen
		limiter.mu.RUnlock()

		if lastSeen.Before(cutoff) {
			delete(rl.userLimiters, userID)
			removedCount++
		}
	}

	if removedCount > 0 {
		rl.logger.Debug("Cleaned up idle rate limiters", map[string]interface{}{
			"removed_count": removedCount,
		})
	}
}

// Stop stops the rate limiter cleanup routine
func (rl *RateLimiter) Stop() {
	rl.stopCleanup <- true
}

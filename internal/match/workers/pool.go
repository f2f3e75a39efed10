package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smartjob-utils/internal/config"
	"smartjob-utils/internal/logging"
	"smartjob-utils/internal/match"
	"smartjob-utils/pkg/models"
	"smartjob-utils/pkg/utils"
)

// ErrRateLimited is returned when a user exceeds their search rate limit.
var ErrRateLimited = fmt.Errorf("rate limit exceeded")

// PoolStats tracks scoring pool statistics
type PoolStats struct {
	mu                    sync.RWMutex
	BatchesProcessed      int64
	PostingsScored        int64
	TotalProcessingTime   time.Duration
	AverageProcessingTime time.Duration
}

// StatsSnapshot is a copy of the pool counters safe to hand to callers.
type StatsSnapshot struct {
	Running               bool          `json:"running"`
	PoolSize              int           `json:"pool_size"`
	BatchesProcessed      int64         `json:"batches_processed"`
	PostingsScored        int64         `json:"postings_scored"`
	AverageProcessingTime time.Duration `json:"average_processing_time"`
}

// PoolManager fans posting batches out across a fixed set of scoring workers.
// Scoring is pure, so workers share nothing but the output slice, where each
// worker writes only its own indexes.
type PoolManager struct {
	config      *config.Config
	weights     match.Weights
	rateLimiter *RateLimiter
	logger      logging.Logger
	mu          sync.RWMutex
	running     bool
	stats       *PoolStats
}

// NewPoolManager creates a new scoring pool manager
func NewPoolManager(cfg *config.Config) *PoolManager {
	return &PoolManager{
		config:      cfg,
		weights:     match.WeightsFromConfig(cfg),
		rateLimiter: NewRateLimiter(cfg),
		logger:      logging.GetGlobalLogger().WithField("component", "scoring_pool"),
		stats:       &PoolStats{},
	}
}

// Start marks the pool as accepting batches.
func (pm *PoolManager) Start() error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.running {
		return fmt.Errorf("scoring pool is already running")
	}

	pm.running = true
	pm.logger.Info("Scoring pool started", map[string]interface{}{
		"pool_size": pm.config.Workers.PoolSize,
	})
	return nil
}

// Stop shuts the pool down. In-flight batches finish; new ones are rejected.
func (pm *PoolManager) Stop() error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if !pm.running {
		return nil
	}

	pm.rateLimiter.Stop()
	pm.running = false
	pm.logger.Info("Scoring pool stopped")
	return nil
}

// IsRunning returns true if the pool accepts batches
func (pm *PoolManager) IsRunning() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.running
}

// ScoreBatch scores every posting in the batch against the resume and returns
// the scored postings in input order. The batch is split across
// Workers.PoolSize goroutines; the sort downstream only runs after all
// workers finish. Returns ErrRateLimited when the user is over their search
// budget and the context error when ctx is cancelled mid-batch.
func (pm *PoolManager) ScoreBatch(ctx context.Context, userID, resumeText string, keywords []string, postings []models.JobPosting, filters models.SearchFilters) ([]models.ScoredJobPosting, error) {
	if !pm.IsRunning() {
		return nil, fmt.Errorf("scoring pool is not running")
	}

	if !pm.rateLimiter.Allow(userID) {
		return nil, fmt.Errorf("%w for user: %s", ErrRateLimited, userID)
	}

	startTime := time.Now()

	scored := make([]models.ScoredJobPosting, len(postings))
	if len(postings) > 0 {
		workerCount := pm.config.Workers.PoolSize
		if workerCount < 1 {
			workerCount = 1
		}
		if workerCount > len(postings) {
			workerCount = len(postings)
		}

		chunkSize := (len(postings) + workerCount - 1) / workerCount

		var wg sync.WaitGroup
		for w := 0; w < workerCount; w++ {
			start := w * chunkSize
			end := start + chunkSize
			if end > len(postings) {
				end = len(postings)
			}
			if start >= end {
				break
			}

			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					select {
					case <-ctx.Done():
						return
					default:
					}
					scored[i] = models.ScoredJobPosting{
						JobPosting: postings[i],
						MatchScore: match.Score(resumeText, keywords, postings[i], filters, pm.weights),
					}
				}
			}(start, end)
		}
		wg.Wait()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	duration := time.Since(startTime)
	pm.stats.mu.Lock()
	pm.stats.BatchesProcessed++
	pm.stats.PostingsScored += int64(len(postings))
	pm.stats.TotalProcessingTime += duration
	pm.stats.mu.Unlock()

	pm.logger.Debug("Batch scored", map[string]interface{}{
		"user_id":  userID,
		"postings": len(postings),
		"duration": utils.FormatDuration(duration),
	})

	return scored, nil
}

// GetStats returns a snapshot of the pool counters
func (pm *PoolManager) GetStats() StatsSnapshot {
	pm.stats.mu.RLock()
	defer pm.stats.mu.RUnlock()

	snapshot := StatsSnapshot{
		Running:          pm.IsRunning(),
		PoolSize:         pm.config.Workers.PoolSize,
		BatchesProcessed: pm.stats.BatchesProcessed,
		PostingsScored:   pm.stats.PostingsScored,
	}
	if pm.stats.BatchesProcessed > 0 {
		snapshot.AverageProcessingTime = pm.stats.TotalProcessingTime / time.Duration(pm.stats.BatchesProcessed)
	}

	return snapshot
}

// GetUserStats returns rate limiter statistics for a user
func (pm *PoolManager) GetUserStats(userID string) map[string]interface{} {
	return pm.rateLimiter.GetUserStats(userID)
}

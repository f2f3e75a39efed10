package workers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartjob-utils/internal/config"
	"smartjob-utils/internal/match"
	"smartjob-utils/pkg/models"
)

func testConfig() *config.Config {
	cfg, _ := config.LoadConfig("")
	cfg.Workers.PoolSize = 4
	cfg.Workers.RateLimit = 600
	return cfg
}

func postingFixture(n int) []models.JobPosting {
	postings := make([]models.JobPosting, n)
	for i := 0; i < n; i++ {
		postings[i] = models.JobPosting{
			ID:          fmt.Sprintf("job-%d", i),
			Title:       "Backend Engineer",
			Description: "Go and Kubernetes services",
		}
	}
	return postings
}

func TestScoreBatchMatchesSequentialScoring(t *testing.T) {
	cfg := testConfig()
	pm := NewPoolManager(cfg)
	require.NoError(t, pm.Start())
	defer pm.Stop()

	resume := "Backend engineer experienced with Go and Kubernetes"
	keywords := match.ExtractKeywords(resume, 15)
	postings := postingFixture(17)
	filters := models.SearchFilters{}

	scored, err := pm.ScoreBatch(context.Background(), "user-1", resume, keywords, postings, filters)
	require.NoError(t, err)
	require.Len(t, scored, len(postings))

	weights := match.WeightsFromConfig(cfg)
	for i, s := range scored {
		// Input order preserved, scores identical to direct calls.
		assert.Equal(t, postings[i].ID, s.ID)
		assert.Equal(t, match.Score(resume, keywords, postings[i], filters, weights), s.MatchScore)
	}
}

func TestScoreBatchEmptyPostings(t *testing.T) {
	pm := NewPoolManager(testConfig())
	require.NoError(t, pm.Start())
	defer pm.Stop()

	scored, err := pm.ScoreBatch(context.Background(), "user-1", "resume", nil, nil, models.SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, scored)
}

func TestScoreBatchRejectedWhenStopped(t *testing.T) {
	pm := NewPoolManager(testConfig())

	_, err := pm.ScoreBatch(context.Background(), "user-1", "resume", nil, postingFixture(1), models.SearchFilters{})
	assert.Error(t, err)
}

func TestScoreBatchCancelledContext(t *testing.T) {
	pm := NewPoolManager(testConfig())
	require.NoError(t, pm.Start())
	defer pm.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pm.ScoreBatch(ctx, "user-1", "resume", nil, postingFixture(50), models.SearchFilters{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreBatchRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Workers.RateLimit = 1 // one search per minute, burst of 5
	pm := NewPoolManager(cfg)
	require.NoError(t, pm.Start())
	defer pm.Stop()

	postings := postingFixture(1)
	var rateLimited bool
	for i := 0; i < 10; i++ {
		_, err := pm.ScoreBatch(context.Background(), "user-1", "resume", nil, postings, models.SearchFilters{})
		if err != nil {
			assert.ErrorIs(t, err, ErrRateLimited)
			rateLimited = true
			break
		}
	}

	assert.True(t, rateLimited)

	// A different user has an independent budget.
	_, err := pm.ScoreBatch(context.Background(), "user-2", "resume", nil, postings, models.SearchFilters{})
	assert.NoError(t, err)
}

func TestPoolStats(t *testing.T) {
	pm := NewPoolManager(testConfig())
	require.NoError(t, pm.Start())
	defer pm.Stop()

	_, err := pm.ScoreBatch(context.Background(), "user-1", "resume", nil, postingFixture(8), models.SearchFilters{})
	require.NoError(t, err)

	stats := pm.GetStats()
	assert.True(t, stats.Running)
	assert.Equal(t, int64(1), stats.BatchesProcessed)
	assert.Equal(t, int64(8), stats.PostingsScored)
}

func TestStartTwice(t *testing.T) {
	pm := NewPoolManager(testConfig())
	require.NoError(t, pm.Start())
	defer pm.Stop()

	assert.Error(t, pm.Start())
}

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartjob-utils/internal/config"
	"smartjob-utils/internal/extract"
	"smartjob-utils/internal/match/workers"
	"smartjob-utils/internal/storage"
	"smartjob-utils/pkg/models"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryRepository) {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Workers.PoolSize = 2
	cfg.Workers.RateLimit = 600
	cfg.Matcher.MinResultCount = 1

	repo := storage.NewMemoryRepository()
	pool := workers.NewPoolManager(cfg)
	require.NoError(t, pool.Start())
	t.Cleanup(func() { pool.Stop() })

	return NewService(cfg, repo, pool), repo
}

func TestUploadResume(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	result, err := svc.UploadResume(ctx, "user-1", []byte("Frontend developer skilled in React"), "plain-text")
	require.NoError(t, err)

	assert.Equal(t, models.FormatPlainText, result.Format)
	assert.Equal(t, len("Frontend developer skilled in React"), result.CharCount)
	assert.NotEmpty(t, result.Keywords)

	text, err := repo.GetResumeText(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Frontend developer skilled in React", text)
}

func TestUploadResumeExtractionFailureLeavesNoText(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.UploadResume(ctx, "user-1", []byte("data"), "rtf")
	assert.ErrorIs(t, err, extract.ErrUnsupportedFormat)

	_, err = repo.GetResumeText(ctx, "user-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSearchWithoutResume(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Search(context.Background(), models.JobSearchRequest{
		UserID:   "user-1",
		Postings: generatePostings(1, 5),
	})
	assert.ErrorIs(t, err, ErrNoResume)
}

func TestSearchEndToEnd(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UploadResume(ctx, "user-1",
		[]byte("Frontend developer skilled in JavaScript, React, and TypeScript, 5 years experience"),
		"plain-text")
	require.NoError(t, err)

	frontend := models.JobPosting{
		ID:          "a",
		Title:       "Frontend Developer",
		Description: "React and TypeScript required",
		Location:    "Remote",
	}
	warehouse := models.JobPosting{
		ID:          "b",
		Title:       "Warehouse Associate",
		Description: "forklift certification required",
		Location:    "Chicago, IL",
	}

	result, err := svc.Search(ctx, models.JobSearchRequest{
		UserID:   "user-1",
		Postings: []models.JobPosting{frontend, warehouse},
		Filters:  models.SearchFilters{WorkType: models.WorkTypeRemote},
	})
	require.NoError(t, err)

	require.Len(t, result.Results, 1)
	assert.Equal(t, "a", result.Results[0].ID)
	assert.Greater(t, result.Results[0].MatchScore, 50)
	assert.False(t, result.Relaxed)
	assert.Equal(t, 1, result.Pagination.TotalItems)
}

func TestSearchEmptyPostings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UploadResume(ctx, "user-1", []byte("developer"), "plain-text")
	require.NoError(t, err)

	result, err := svc.Search(ctx, models.JobSearchRequest{UserID: "user-1"})
	require.NoError(t, err)

	assert.Empty(t, result.Results)
	assert.Equal(t, 1, result.Pagination.TotalPages)
}

func TestSearchPersistsResults(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.UploadResume(ctx, "user-1",
		[]byte("Backend engineer with Go and Kubernetes experience"), "plain-text")
	require.NoError(t, err)

	_, err = svc.Search(ctx, models.JobSearchRequest{
		UserID:   "user-1",
		Postings: generatePostings(7, 40),
	})
	require.NoError(t, err)

	stored, err := repo.GetSearchResults(ctx, "user-1")
	require.NoError(t, err)

	retrieved, err := svc.GetResults(ctx, "user-1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, len(stored.Results), retrieved.Pagination.TotalItems)
}

func TestGetResultsWithoutSearch(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetResults(context.Background(), "user-1", 1, 10)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeduplicate(t *testing.T) {
	postings := []models.JobPosting{
		{ID: "1", Title: "Frontend Developer", Company: "Acme"},
		{ID: "2", Title: "frontend developer", Company: "ACME"},
		{ID: "3", Title: "Frontend Developer", Company: "Globex"},
		{ID: "4", Title: "Backend Engineer", Company: "Acme"},
	}

	deduped := Deduplicate(postings)

	require.Len(t, deduped, 3)
	assert.Equal(t, "1", deduped[0].ID)
	assert.Equal(t, "3", deduped[1].ID)
	assert.Equal(t, "4", deduped[2].ID)
}

func TestDeduplicateEmpty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
}

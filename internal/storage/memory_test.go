package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartjob-utils/pkg/models"
)

func TestMemoryRepositoryResumeText(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetResumeText(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.SaveResumeText(ctx, "user-1", "senior go developer"))

	text, err := repo.GetResumeText(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "senior go developer", text)

	// Re-upload replaces the stored text.
	require.NoError(t, repo.SaveResumeText(ctx, "user-1", "staff engineer"))
	text, err = repo.GetResumeText(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "staff engineer", text)
}

func TestMemoryRepositorySearchResults(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetSearchResults(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	stored := models.RankedResultSet{
		Results: []models.ScoredJobPosting{
			{JobPosting: models.JobPosting{ID: "job-1", Title: "Dev"}, MatchScore: 88},
		},
		Relaxed: true,
	}
	require.NoError(t, repo.SaveSearchResults(ctx, "user-1", stored))

	results, err := repo.GetSearchResults(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, results)

	// Results are stored per user.
	_, err = repo.GetSearchResults(ctx, "user-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryPingAndClose(t *testing.T) {
	repo := NewMemoryRepository()

	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, repo.Close())
}

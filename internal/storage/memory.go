package storage

import (
	"context"
	"sync"

	"smartjob-utils/pkg/models"
)

// MemoryRepository is an in-process Repository used when Redis is unavailable
// and in tests. Values never expire.
type MemoryRepository struct {
	mu      sync.RWMutex
	resumes map[string]string
	results map[string]models.RankedResultSet
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		resumes: make(map[string]string),
		results: make(map[string]models.RankedResultSet),
	}
}

// SaveResumeText stores the extracted resume text for a user
func (m *MemoryRepository) SaveResumeText(ctx context.Context, userID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumes[userID] = text
	return nil
}

// GetResumeText retrieves the stored resume text for a user
func (m *MemoryRepository) GetResumeText(ctx context.Context, userID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	text, exists := m.resumes[userID]
	if !exists {
		return "", ErrNotFound
	}
	return text, nil
}

// SaveSearchResults stores a ranked result set for a user
func (m *MemoryRepository) SaveSearchResults(ctx context.Context, userID string, results models.RankedResultSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[userID] = results
	return nil
}

// GetSearchResults retrieves the stored ranked result set for a user
func (m *MemoryRepository) GetSearchResults(ctx context.Context, userID string) (models.RankedResultSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results, exists := m.results[userID]
	if !exists {
		return models.RankedResultSet{}, ErrNotFound
	}
	return results, nil
}

// Ping always succeeds for the in-memory repository
func (m *MemoryRepository) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory repository
func (m *MemoryRepository) Close() error {
	return nil
}

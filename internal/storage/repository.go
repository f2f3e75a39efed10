package storage

import (
	"context"
	"errors"

	"smartjob-utils/pkg/models"
)

// ErrNotFound is returned when no stored value exists for the requested user.
var ErrNotFound = errors.New("not found")

// Repository stores resume text and search results per user. The matching
// engine itself is pure; this is the explicit collaborator it reads from and
// writes to instead of ambient state.
type Repository interface {
	SaveResumeText(ctx context.Context, userID, text string) error
	GetResumeText(ctx context.Context, userID string) (string, error)

	SaveSearchResults(ctx context.Context, userID string, results models.RankedResultSet) error
	GetSearchResults(ctx context.Context, userID string) (models.RankedResultSet, error)

	Ping(ctx context.Context) error
	Close() error
}

package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartjob-utils/internal/config"
	"smartjob-utils/internal/extract"
	"smartjob-utils/internal/logging"
	"smartjob-utils/internal/match"
	"smartjob-utils/internal/match/workers"
	"smartjob-utils/internal/storage"
	"smartjob-utils/pkg/models"
)

// ErrNoResume is returned when a search is attempted before any resume was
// uploaded for the user. A missing resume blocks the search flow entirely
// rather than silently scoring against empty text.
var ErrNoResume = errors.New("no resume uploaded for user")

// UploadResult carries what a resume upload produced.
type UploadResult struct {
	Format    models.DocumentFormat
	CharCount int
	Keywords  []string
}

// SearchResult is one page of a ranked, filtered matching pass.
type SearchResult struct {
	Results    []models.ScoredJobPosting
	Pagination models.Pagination
	Relaxed    bool
}

// Service orchestrates the matching pipeline: extraction, keyword ranking,
// batch scoring, filtering and pagination, with the repository as the only
// stateful collaborator.
type Service struct {
	config *config.Config
	repo   storage.Repository
	pool   *workers.PoolManager
	logger logging.Logger
}

// NewService creates a new search service
func NewService(cfg *config.Config, repo storage.Repository, pool *workers.PoolManager) *Service {
	return &Service{
		config: cfg,
		repo:   repo,
		pool:   pool,
		logger: logging.GetGlobalLogger().WithField("component", "search_service"),
	}
}

// UploadResume extracts text from the uploaded document, stores it for the
// user and returns the extracted keyword list. Extraction failures propagate
// to the caller; a failed extraction never leaves an empty resume behind.
func (s *Service) UploadResume(ctx context.Context, userID string, data []byte, format string) (*UploadResult, error) {
	doc, err := extract.ExtractDocument(models.ResumeDocument{
		Format: models.DocumentFormat(format),
		Data:   data,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveResumeText(ctx, userID, doc.ExtractedText); err != nil {
		return nil, fmt.Errorf("failed to store resume text: %w", err)
	}

	keywords := match.ExtractKeywords(doc.ExtractedText, s.config.Matcher.TopKeywords)

	s.logger.Info("Resume uploaded", map[string]interface{}{
		"user_id":    userID,
		"format":     string(doc.Format),
		"char_count": len(doc.ExtractedText),
		"keywords":   len(keywords),
	})

	return &UploadResult{
		Format:    doc.Format,
		CharCount: len(doc.ExtractedText),
		Keywords:  keywords,
	}, nil
}

// Search runs one matching pass for a user over a batch of postings: dedupe,
// score, filter, rank, persist, paginate. Returns ErrNoResume when the user
// has not uploaded a resume yet.
func (s *Service) Search(ctx context.Context, req models.JobSearchRequest) (*SearchResult, error) {
	resumeText, err := s.repo.GetResumeText(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoResume
		}
		return nil, fmt.Errorf("failed to load resume text: %w", err)
	}

	keywords := match.ExtractKeywords(resumeText, s.config.Matcher.TopKeywords)
	postings := Deduplicate(req.Postings)

	scored, err := s.pool.ScoreBatch(ctx, req.UserID, resumeText, keywords, postings, req.Filters)
	if err != nil {
		return nil, err
	}

	ranked := match.FilterAndRank(scored, req.Filters, match.RankOptions{
		MinScore:       s.config.Matcher.MinScore,
		MinResultCount: s.config.Matcher.MinResultCount,
		RelaxedShare:   s.config.Matcher.RelaxedShare,
	}, time.Now())

	if err := s.repo.SaveSearchResults(ctx, req.UserID, ranked); err != nil {
		// Persisting results is best effort; the user still gets this page.
		s.logger.Warn("Failed to persist search results", map[string]interface{}{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.config.Matcher.DefaultPageSize
	}
	items, pagination := match.Paginate(ranked.Results, req.Page, pageSize)

	s.logger.Info("Search completed", map[string]interface{}{
		"user_id":  req.UserID,
		"postings": len(postings),
		"matches":  len(ranked.Results),
		"relaxed":  ranked.Relaxed,
	})

	return &SearchResult{
		Results:    items,
		Pagination: pagination,
		Relaxed:    ranked.Relaxed,
	}, nil
}

// GetResults re-paginates the most recent stored result set for a user.
func (s *Service) GetResults(ctx context.Context, userID string, page, pageSize int) (*SearchResult, error) {
	ranked, err := s.repo.GetSearchResults(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load search results: %w", err)
	}

	if pageSize <= 0 {
		pageSize = s.config.Matcher.DefaultPageSize
	}
	items, pagination := match.Paginate(ranked.Results, page, pageSize)

	return &SearchResult{
		Results:    items,
		Pagination: pagination,
		Relaxed:    ranked.Relaxed,
	}, nil
}

// Deduplicate drops postings whose lowercased title and company match an
// earlier posting in the batch. The first occurrence wins so input order is
// preserved.
func Deduplicate(postings []models.JobPosting) []models.JobPosting {
	if len(postings) == 0 {
		return postings
	}

	seen := make(map[string]bool, len(postings))
	out := make([]models.JobPosting, 0, len(postings))

	for _, posting := range postings {
		key := strings.ToLower(strings.TrimSpace(posting.Title)) + "|" + strings.ToLower(strings.TrimSpace(posting.Company))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, posting)
	}

	return out
}

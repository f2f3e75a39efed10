package match

import (
	"math"
	"sort"
	"strings"
	"time"

	"smartjob-utils/pkg/models"
)

// RankOptions carries the thresholds governing filtering and relaxation.
type RankOptions struct {
	MinScore       int
	MinResultCount int
	RelaxedShare   float64
}

// DefaultRankOptions returns the canonical filtering thresholds.
func DefaultRankOptions() RankOptions {
	return RankOptions{
		MinScore:       50,
		MinResultCount: 30,
		RelaxedShare:   0.30,
	}
}

// FilterAndRank sorts scored postings by descending score, applies every
// specified hard filter plus the minimum-score threshold, and falls back to a
// relaxed minimum-score top-N subset when strict filtering leaves fewer than
// MinResultCount survivors. The fallback keeps the result page from going
// empty under overly strict filters; the Relaxed flag reports it. now anchors
// the date-posted window so results stay reproducible in tests.
func FilterAndRank(scored []models.ScoredJobPosting, filters models.SearchFilters, opts RankOptions, now time.Time) models.RankedResultSet {
	if len(scored) == 0 {
		return models.RankedResultSet{Results: []models.ScoredJobPosting{}}
	}

	filters = filters.Normalized()

	ranked := make([]models.ScoredJobPosting, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	strict := make([]models.ScoredJobPosting, 0, len(ranked))
	aboveMinScore := make([]models.ScoredJobPosting, 0, len(ranked))

	for _, posting := range ranked {
		if posting.MatchScore < opts.MinScore {
			continue
		}
		aboveMinScore = append(aboveMinScore, posting)
		if passesFilters(posting.JobPosting, filters, now) {
			strict = append(strict, posting)
		}
	}

	if len(strict) >= opts.MinResultCount {
		return models.RankedResultSet{Results: strict}
	}

	fallbackSize := opts.MinResultCount
	if share := int(math.Ceil(opts.RelaxedShare * float64(len(scored)))); share > fallbackSize {
		fallbackSize = share
	}
	if fallbackSize > len(aboveMinScore) {
		fallbackSize = len(aboveMinScore)
	}

	return models.RankedResultSet{
		Results: aboveMinScore[:fallbackSize],
		Relaxed: true,
	}
}

// passesFilters reports whether a posting satisfies every specified filter
// dimension. Unset or "any" dimensions impose no constraint.
func passesFilters(posting models.JobPosting, filters models.SearchFilters, now time.Time) bool {
	postingText := strings.ToLower(strings.Join([]string{
		posting.Title, posting.Description, posting.Location, posting.EmploymentType,
	}, " "))

	if filters.WorkType != models.WorkTypeAny {
		if !containsAnyPhrase(postingText, workTypeSynonyms[filters.WorkType]) {
			return false
		}
	}

	if filters.Location != "" {
		if !locationMatches(posting.Location, filters.Location) {
			return false
		}
	}

	if filters.EmploymentType != models.EmploymentAny {
		if !containsAnyPhrase(postingText, employmentTypeSynonyms[filters.EmploymentType]) {
			return false
		}
	}

	if filters.Salary != nil && !salaryInBounds(posting.Salary, filters.Salary) {
		return false
	}

	if filters.ExperienceLevel != models.ExperienceAny {
		if !containsAnyPhrase(postingText, experienceLevelSynonyms[filters.ExperienceLevel]) {
			return false
		}
	}

	if filters.DatePosted != models.DatePostedAny {
		if !postedWithinWindow(posting.PostedDate, filters.DatePosted, now) {
			return false
		}
	}

	if len(nonEmpty(filters.Skills)) > 0 && !containsAnyLowered(postingText, filters.Skills) {
		return false
	}

	if len(nonEmpty(filters.Industries)) > 0 && !containsAnyLowered(postingText, filters.Industries) {
		return false
	}

	return true
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func containsAnyLowered(haystack string, values []string) bool {
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if strings.Contains(haystack, v) {
			return true
		}
	}
	return false
}

// salaryInBounds checks a posting's free-text salary against the requested
// bounds. Postings whose salary text does not parse pass the filter rather
// than being dropped for missing data.
func salaryInBounds(salaryText string, bounds *models.SalaryBounds) bool {
	postingMin, postingMax, ok := parseSalaryText(salaryText)
	if !ok {
		return true
	}

	if bounds.Min > 0 && postingMax < bounds.Min {
		return false
	}
	if bounds.Max > 0 && postingMin > bounds.Max {
		return false
	}

	return true
}

// postedWithinWindow checks the posting date against the recency window. A
// zero posting date passes, matching the missing-data policy for salary.
func postedWithinWindow(postedDate time.Time, window models.DatePostedWindow, now time.Time) bool {
	if postedDate.IsZero() {
		return true
	}

	var cutoff time.Time
	switch window {
	case models.DatePostedPastDay:
		cutoff = now.Add(-24 * time.Hour)
	case models.DatePostedPastWeek:
		cutoff = now.AddDate(0, 0, -7)
	case models.DatePostedPastMonth:
		cutoff = now.AddDate(0, -1, 0)
	default:
		return true
	}

	return !postedDate.Before(cutoff)
}

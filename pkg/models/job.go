package models

import "time"

// JobPosting represents a job posting normalized from provider-specific records
// This matches the canonical shape consumed by the matching engine
type JobPosting struct {
	ID             string    `json:"id" validate:"required"`
	Title          string    `json:"title" validate:"required"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Salary         string    `json:"salary,omitempty"`
	Requirements   []string  `json:"requirements,omitempty"`
	EmploymentType string    `json:"employment_type,omitempty"`
	PostedDate     time.Time `json:"posted_date,omitempty"`
	URL            string    `json:"url,omitempty"`
}

// ScoredJobPosting is a JobPosting plus its computed match score in [0,100].
type ScoredJobPosting struct {
	JobPosting
	MatchScore int `json:"match_score"`
}

// RankedResultSet is an ordered result set sorted by descending match score.
// Relaxed is set when strict filtering left too few results and the engine
// fell back to a minimum-score top-N subset instead.
type RankedResultSet struct {
	Results []ScoredJobPosting `json:"results"`
	Relaxed bool               `json:"relaxed"`
}

package models

import "time"

// Pagination describes the slice of the ranked result set being returned
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	TotalItems int  `json:"total_items"`
	HasMore    bool `json:"has_more"`
	From       int  `json:"from"`
	To         int  `json:"to"`
}

// UploadResumeResponse represents the response from a resume upload
type UploadResumeResponse struct {
	Success        bool          `json:"success"`
	UserID         string        `json:"user_id"`
	Format         string        `json:"format"`
	CharCount      int           `json:"char_count"`
	Keywords       []string      `json:"keywords"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// JobSearchResponse represents one page of ranked search results
type JobSearchResponse struct {
	Success        bool               `json:"success"`
	Results        []ScoredJobPosting `json:"results"`
	Pagination     Pagination         `json:"pagination"`
	Relaxed        bool               `json:"relaxed"`
	ProcessingTime time.Duration      `json:"processing_time"`
	RequestID      string             `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

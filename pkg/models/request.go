package models

// UploadResumeRequest represents the request payload for uploading a resume
type UploadResumeRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Format string `json:"format" validate:"required"`
	Data   string `json:"data" validate:"required"` // base64-encoded document bytes
}

// JobSearchRequest represents the request payload for a matching pass over a
// batch of pre-normalized postings
type JobSearchRequest struct {
	UserID   string        `json:"user_id" validate:"required"`
	Postings []JobPosting  `json:"postings" validate:"dive"`
	Filters  SearchFilters `json:"filters"`
	Page     int           `json:"page,omitempty" validate:"min=0"`
	PageSize int           `json:"page_size,omitempty" validate:"min=0,max=100"`
}

package models

// WorkType is the work arrangement filter dimension
type WorkType string

const (
	WorkTypeAny      WorkType = "any"
	WorkTypeRemote   WorkType = "remote"
	WorkTypeHybrid   WorkType = "hybrid"
	WorkTypeInPerson WorkType = "in-person"
)

// EmploymentType is the employment arrangement filter dimension
type EmploymentType string

const (
	EmploymentAny        EmploymentType = "any"
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentInternship EmploymentType = "internship"
	EmploymentCoop       EmploymentType = "co-op"
	EmploymentContract   EmploymentType = "contract"
)

// ExperienceLevel is the seniority filter dimension
type ExperienceLevel string

const (
	ExperienceAny       ExperienceLevel = "any"
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// DatePostedWindow is the recency filter dimension
type DatePostedWindow string

const (
	DatePostedAny       DatePostedWindow = "any"
	DatePostedPastDay   DatePostedWindow = "past-24h"
	DatePostedPastWeek  DatePostedWindow = "past-week"
	DatePostedPastMonth DatePostedWindow = "past-month"
)

// SalaryBounds is an optional salary range constraint in whole currency units
type SalaryBounds struct {
	Min int `json:"min,omitempty" validate:"min=0"`
	Max int `json:"max,omitempty" validate:"min=0"`
}

// SearchFilters carries the active filter dimensions for one scoring and
// filtering pass. Absent or "any" values impose no constraint. The value is
// immutable input to the engine and never persists inside it.
type SearchFilters struct {
	WorkType        WorkType         `json:"work_type,omitempty"`
	EmploymentType  EmploymentType   `json:"employment_type,omitempty"`
	Location        string           `json:"location,omitempty"`
	Salary          *SalaryBounds    `json:"salary,omitempty"`
	ExperienceLevel ExperienceLevel  `json:"experience_level,omitempty"`
	DatePosted      DatePostedWindow `json:"date_posted,omitempty"`
	Skills          []string         `json:"skills,omitempty"`
	Industries      []string         `json:"industries,omitempty"`
}

// Normalized returns a copy with unrecognized enum values coerced to "any".
// The engine is forgiving by design: an invalid filter value behaves like an
// unset one rather than failing the request.
func (f SearchFilters) Normalized() SearchFilters {
	switch f.WorkType {
	case WorkTypeRemote, WorkTypeHybrid, WorkTypeInPerson:
	default:
		f.WorkType = WorkTypeAny
	}
	switch f.EmploymentType {
	case EmploymentFullTime, EmploymentPartTime, EmploymentInternship, EmploymentCoop, EmploymentContract:
	default:
		f.EmploymentType = EmploymentAny
	}
	switch f.ExperienceLevel {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
	default:
		f.ExperienceLevel = ExperienceAny
	}
	switch f.DatePosted {
	case DatePostedPastDay, DatePostedPastWeek, DatePostedPastMonth:
	default:
		f.DatePosted = DatePostedAny
	}
	return f
}

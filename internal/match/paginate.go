package match

import (
	"math"

	"smartjob-utils/pkg/models"
)

// Paginate slices ranked results into a fixed-size page and returns the page
// items with pagination metadata. Page numbers are 1-based; totalPages is at
// least 1 so a zero-result set still renders one empty page. Stateless and
// idempotent: identical arguments always yield identical output.
func Paginate(results []models.ScoredJobPosting, page, pageSize int) ([]models.ScoredJobPosting, models.Pagination) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}

	totalItems := len(results)
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
	}

	from := (page - 1) * pageSize
	to := from + pageSize
	if from > totalItems {
		from = totalItems
	}
	if to > totalItems {
		to = totalItems
	}

	items := results[from:to]

	pagination := models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
		HasMore:    page < totalPages,
	}
	if totalItems > 0 {
		pagination.From = from + 1
		pagination.To = to
	}

	return items, pagination
}

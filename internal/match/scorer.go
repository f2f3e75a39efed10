package match

import (
	"math"
	"strings"
	"unicode/utf8"

	"smartjob-utils/internal/config"
	"smartjob-utils/pkg/models"
)

// Weights is the tunable scoring-weight table. The four sub-score weights
// must sum to at most 100; the final score is clamped to [ScoreFloor, 100].
type Weights struct {
	Title                int
	Keywords             int
	Requirements         int
	FilterBonus          int
	NoRequirementsCredit int
	ScoreFloor           int
}

// DefaultWeights returns the canonical weight table.
func DefaultWeights() Weights {
	return Weights{
		Title:                30,
		Keywords:             25,
		Requirements:         20,
		FilterBonus:          25,
		NoRequirementsCredit: 12,
		ScoreFloor:           0,
	}
}

// WeightsFromConfig builds a weight table from application configuration.
func WeightsFromConfig(cfg *config.Config) Weights {
	return Weights{
		Title:                cfg.Matcher.TitleWeight,
		Keywords:             cfg.Matcher.KeywordWeight,
		Requirements:         cfg.Matcher.RequirementsWeight,
		FilterBonus:          cfg.Matcher.FilterBonusWeight,
		NoRequirementsCredit: cfg.Matcher.NoRequirementsCredit,
		ScoreFloor:           cfg.Matcher.ScoreFloor,
	}
}

// workTypeSynonyms maps each work-type filter value onto the phrases whose
// presence in a posting signals that arrangement.
var workTypeSynonyms = map[models.WorkType][]string{
	models.WorkTypeRemote:   {"remote", "work from home", "wfh", "virtual", "telecommute"},
	models.WorkTypeHybrid:   {"hybrid", "flexible", "partially remote"},
	models.WorkTypeInPerson: {"on-site", "onsite", "in office", "in-person", "in person"},
}

var employmentTypeSynonyms = map[models.EmploymentType][]string{
	models.EmploymentFullTime:   {"full-time", "full time", "fulltime", "permanent"},
	models.EmploymentPartTime:   {"part-time", "part time", "parttime"},
	models.EmploymentInternship: {"internship", "intern"},
	models.EmploymentCoop:       {"co-op", "coop", "cooperative education"},
	models.EmploymentContract:   {"contract", "contractor", "freelance", "temporary"},
}

var experienceLevelSynonyms = map[models.ExperienceLevel][]string{
	models.ExperienceEntry:     {"entry", "entry-level", "junior", "graduate", "associate"},
	models.ExperienceMid:       {"mid", "mid-level", "intermediate"},
	models.ExperienceSenior:    {"senior", "sr.", "lead", "staff", "principal"},
	models.ExperienceExecutive: {"executive", "director", "vp", "head of", "chief"},
}

// Score computes the match score between a resume and a single posting. The
// result is an additive composition of four bounded sub-scores clamped to
// [ScoreFloor, 100]. Pure and deterministic: identical inputs always produce
// the identical score.
func Score(resumeText string, keywords []string, posting models.JobPosting, filters models.SearchFilters, w Weights) int {
	resumeLower := strings.ToLower(resumeText)
	resumeTokens := tokenize(resumeText)
	filters = filters.Normalized()

	total := titleScore(resumeLower, resumeTokens, posting.Title, w.Title)
	total += keywordScore(keywords, posting, w.Keywords)
	total += requirementsScore(resumeLower, resumeTokens, posting.Requirements, w)
	total += filterBonus(posting, filters, w.FilterBonus)

	return clampScore(total, w.ScoreFloor)
}

func clampScore(score float64, floor int) int {
	rounded := int(math.Round(score))
	if rounded > 100 {
		rounded = 100
	}
	if rounded < floor {
		rounded = floor
	}
	return rounded
}

// titleScore awards the fraction of posting-title tokens found in the resume,
// via exact containment or fuzzy token match.
func titleScore(resumeLower string, resumeTokens []string, title string, weight int) float64 {
	titleTokens := tokenize(title)
	if len(titleTokens) == 0 {
		return 0
	}

	matched := 0
	for _, token := range titleTokens {
		if utf8.RuneCountInString(token) <= 2 {
			if strings.Contains(resumeLower, token) {
				matched++
			}
			continue
		}
		if containsToken(resumeTokens, token) {
			matched++
		}
	}

	return float64(weight) * float64(matched) / float64(len(titleTokens))
}

// keywordScore awards rank-decayed credit for each extracted keyword found in
// the posting title or description. A keyword at rank i carries weight
// (n-i)/n, so the top keyword counts most. Multi-word keywords match when the
// whole phrase is contained; single tokens also match fuzzily against the
// posting text for half credit.
func keywordScore(keywords []string, posting models.JobPosting, weight int) float64 {
	if len(keywords) == 0 {
		return 0
	}

	haystack := strings.ToLower(posting.Title + " " + posting.Description)
	haystackTokens := tokenize(haystack)

	n := float64(len(keywords))
	totalWeight := 0.0
	earned := 0.0

	for i, keyword := range keywords {
		rankWeight := (n - float64(i)) / n
		totalWeight += rankWeight

		kw := strings.ToLower(keyword)
		switch {
		case strings.Contains(haystack, kw):
			earned += rankWeight
		case !strings.Contains(kw, " ") && containsToken(haystackTokens, kw):
			earned += rankWeight / 2
		}
	}

	if totalWeight == 0 {
		return 0
	}

	return float64(weight) * earned / totalWeight
}

// requirementsScore awards the fraction of requirement strings whose tokens
// appear in the resume, plus a small bonus when a matched token is a
// recognized technical skill. Postings without requirements get a fixed
// partial credit instead of zero.
func requirementsScore(resumeLower string, resumeTokens []string, requirements []string, w Weights) float64 {
	if len(requirements) == 0 {
		return float64(w.NoRequirementsCredit)
	}

	matched := 0
	skillBonus := 0.0

	for _, req := range requirements {
		reqTokens := tokenize(req)
		if len(reqTokens) == 0 {
			continue
		}

		hit := false
		for _, token := range reqTokens {
			if utf8.RuneCountInString(token) <= 2 {
				continue
			}
			if containsToken(resumeTokens, token) {
				hit = true
				if skillTerms[token] {
					skillBonus += 2
				}
			}
		}

		if hit {
			matched++
		}
	}

	score := float64(w.Requirements)*float64(matched)/float64(len(requirements)) + skillBonus
	if score > float64(w.Requirements) {
		score = float64(w.Requirements)
	}

	return score
}

// filterBonus awards additive credit per filter dimension the posting agrees
// with. Only dimensions the caller actually constrained contribute. The total
// is capped at the configured weight.
func filterBonus(posting models.JobPosting, filters models.SearchFilters, weight int) float64 {
	postingText := strings.ToLower(strings.Join([]string{
		posting.Title, posting.Description, posting.Location, posting.EmploymentType,
	}, " "))

	bonus := 0.0

	if filters.Location != "" && locationMatches(posting.Location, filters.Location) {
		bonus += 8
	}

	if filters.WorkType != models.WorkTypeAny {
		if containsAnyPhrase(postingText, workTypeSynonyms[filters.WorkType]) {
			bonus += 7
		}
	}

	if filters.EmploymentType != models.EmploymentAny {
		if containsAnyPhrase(postingText, employmentTypeSynonyms[filters.EmploymentType]) {
			bonus += 5
		}
	}

	if filters.ExperienceLevel != models.ExperienceAny {
		if containsAnyPhrase(postingText, experienceLevelSynonyms[filters.ExperienceLevel]) {
			bonus += 5
		}
	}

	if bonus > float64(weight) {
		bonus = float64(weight)
	}

	return bonus
}

func containsAnyPhrase(haystack string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(haystack, phrase) {
			return true
		}
	}
	return false
}

// locationMatches compares a posting location against the location filter.
// Comma-separated parts match individually, via substring containment or
// edit distance of at most 2 for typo tolerance.
func locationMatches(postingLocation, filterLocation string) bool {
	postingLower := strings.ToLower(strings.TrimSpace(postingLocation))
	filterLower := strings.ToLower(strings.TrimSpace(filterLocation))

	if postingLower == "" || filterLower == "" {
		return false
	}

	if strings.Contains(postingLower, filterLower) || strings.Contains(filterLower, postingLower) {
		return true
	}

	for _, part := range strings.Split(filterLower, ",") {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) <= 2 {
			continue
		}
		if strings.Contains(postingLower, part) {
			return true
		}
		for _, postingPart := range strings.Split(postingLower, ",") {
			postingPart = strings.TrimSpace(postingPart)
			if utf8.RuneCountInString(postingPart) <= 2 {
				continue
			}
			if levenshtein(postingPart, part) <= 2 {
				return true
			}
		}
	}

	return false
}

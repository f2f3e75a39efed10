package match

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stopWords are excluded from keyword extraction regardless of frequency.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "his": true,
	"has": true, "had": true, "how": true, "its": true, "who": true,
	"will": true, "with": true, "this": true, "that": true, "have": true,
	"from": true, "they": true, "been": true, "were": true, "their": true,
}

// roleTerms receive triple weight during extraction. Every keyword list is
// guaranteed to contain at least one role-like term.
var roleTerms = map[string]bool{
	"developer": true, "engineer": true, "programmer": true, "architect": true,
	"analyst": true, "designer": true, "manager": true, "consultant": true,
	"administrator": true, "scientist": true, "devops": true, "sre": true,
	"frontend": true, "backend": true, "fullstack": true, "full-stack": true,
}

// skillTerms receive double weight during extraction.
var skillTerms = map[string]bool{
	"javascript": true, "typescript": true, "python": true, "java": true,
	"golang": true, "rust": true, "ruby": true, "php": true, "swift": true,
	"kotlin": true, "scala": true, "sql": true, "nosql": true, "html": true,
	"css": true, "react": true, "angular": true, "vue": true, "svelte": true,
	"node": true, "nodejs": true, "django": true, "flask": true, "spring": true,
	"rails": true, "kubernetes": true, "docker": true, "terraform": true,
	"ansible": true, "aws": true, "azure": true, "gcp": true, "linux": true,
	"git": true, "jenkins": true, "graphql": true, "redis": true,
	"postgresql": true, "mongodb": true, "mysql": true, "elasticsearch": true,
	"kafka": true, "grpc": true, "microservices": true,
}

// tokenize lowercases text, strips punctuation except internal hyphens, and
// splits on whitespace.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			token := strings.Trim(current.String(), "-")
			if token != "" {
				tokens = append(tokens, token)
			}
			current.Reset()
		}
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		case r == '-':
			current.WriteRune('-')
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// ExtractKeywords tokenizes resume text and returns the topN tokens ranked by
// frequency with domain-term boosts. Role terms count triple, technical skill
// terms double. Ties keep first-occurrence order, so repeated calls on the
// same text return the same list.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		topN = 15
	}

	weights := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, token := range tokenize(text) {
		if utf8.RuneCountInString(token) <= 2 || stopWords[token] {
			continue
		}

		boost := 1
		if roleTerms[token] {
			boost = 3
		} else if skillTerms[token] {
			boost = 2
		}

		weights[token] += boost
		if _, seen := firstSeen[token]; !seen {
			firstSeen[token] = i
		}
	}

	candidates := make([]string, 0, len(weights))
	for token := range weights {
		candidates = append(candidates, token)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if weights[candidates[i]] != weights[candidates[j]] {
			return weights[candidates[i]] > weights[candidates[j]]
		}
		return firstSeen[candidates[i]] < firstSeen[candidates[j]]
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	return ensureRoleTerm(candidates)
}

// ensureRoleTerm guarantees the keyword list contains a role-like anchor term.
// When none of the extracted tokens is a role term, a fallback is prepended:
// the first skill token suffixed with " developer", or "software developer"
// when no skill token matched either.
func ensureRoleTerm(keywords []string) []string {
	for _, kw := range keywords {
		if roleTerms[kw] {
			return keywords
		}
	}

	fallback := "software developer"
	for _, kw := range keywords {
		if skillTerms[kw] {
			fallback = kw + " developer"
			break
		}
	}

	return append([]string{fallback}, keywords...)
}

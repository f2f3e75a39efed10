package match

import (
	"regexp"
	"strconv"
	"strings"
)

var salaryAmountRe = regexp.MustCompile(`(?i)\$?\s*(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s*(k)?`)

// parseSalaryText pulls numeric amounts out of free-text salary strings like
// "$70,000 - $90,000", "$90K-$120K" or "up to 85k". Returns the lowest and
// highest amounts found and ok=false when no amount parses.
func parseSalaryText(salary string) (minAmount, maxAmount int, ok bool) {
	matches := salaryAmountRe.FindAllStringSubmatch(salary, -1)
	if len(matches) == 0 {
		return 0, 0, false
	}

	var amounts []int
	for _, m := range matches {
		raw := strings.ReplaceAll(m[1], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if strings.EqualFold(m[2], "k") {
			value *= 1000
		}
		amounts = append(amounts, int(value))
	}

	if len(amounts) == 0 {
		return 0, 0, false
	}

	minAmount, maxAmount = amounts[0], amounts[0]
	for _, a := range amounts[1:] {
		if a < minAmount {
			minAmount = a
		}
		if a > maxAmount {
			maxAmount = a
		}
	}

	return minAmount, maxAmount, true
}

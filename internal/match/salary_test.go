package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSalaryText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedMin int
		expectedMax int
		expectedOK  bool
	}{
		{"range with commas", "$70,000 - $90,000", 70000, 90000, true},
		{"k suffix range", "$90K - $120K", 90000, 120000, true},
		{"lowercase k", "80k-100k", 80000, 100000, true},
		{"single amount", "$85,000", 85000, 85000, true},
		{"single amount no commas", "85000", 85000, 85000, true},
		{"up to phrasing", "up to 95k per year", 95000, 95000, true},
		{"no digits", "competitive salary", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minAmount, maxAmount, ok := parseSalaryText(tt.input)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedMin, minAmount)
				assert.Equal(t, tt.expectedMax, maxAmount)
			}
		})
	}
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"iso hours and minutes", "PT1H30M", 90},
		{"iso minutes only", "PT45M", 45},
		{"iso hours only", "PT2H", 120},
		{"iso with days prefix", "P0DT1H0M", 60},
		{"lowercase iso", "pt1h15m", 75},
		{"number is already minutes", float64(25), 25},
		{"fractional number rounds", 24.6, 25},
		{"plain integer string", "35 minutes", 35},
		{"first integer wins", "about 40 to 50", 40},
		{"no digits", "a while", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDuration(tt.value))
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"iso form", "PT35M", 35},
		{"iso hours and minutes", "PT1H30M", 90},
		// Free text with hour units must not hit the bare-integer
		// fallback, which would read this as two minutes
		{"free text hours", "2 hours", 120},
		{"free text minutes", "about 25 minutes", 25},
		{"bare number", "40", 40},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, durationMinutes(tt.value))
		})
	}
}

func TestExtractTimeFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"minutes only", "30 minutes", 30},
		{"hours and minutes", "1 hour 15 minutes", 75},
		// The hour-only branch must not reuse the hour+minute capture
		// logic; 2 hours is exactly 120, not a mis-captured zero.
		{"hours only", "2 hours", 120},
		{"hours only abbreviated", "2 hrs", 120},
		{"minutes abbreviated", "45 mins", 45},
		{"single min", "90 min", 90},
		{"hour and minute with and", "1 hour and 20 minutes", 80},
		{"embedded in sentence", "Ready in about 25 minutes, serves four", 25},
		{"no time", "delicious cookies", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTimeFromText(tt.text))
		})
	}
}

func TestExtractServings(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"serves phrase", "Serves 4", 4},
		{"servings phrase", "6 servings", 6},
		{"makes phrase", "Makes 12", 12},
		{"plain number", float64(8), 8},
		{"fractional rounds", 3.5, 4},
		{"array takes first resolvable", []interface{}{"", "10 cookies", "4"}, 10},
		{"nested array", []interface{}{[]interface{}{"24"}}, 24},
		{"no digits", "a crowd", 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractServings(tt.value))
		})
	}
}

func TestPlausibleServings(t *testing.T) {
	assert.Equal(t, 4, plausibleServings(4))
	assert.Equal(t, 99, plausibleServings(99))
	assert.Equal(t, 0, plausibleServings(0))
	assert.Equal(t, 0, plausibleServings(-2))
	assert.Equal(t, 0, plausibleServings(100))
	assert.Equal(t, 0, plausibleServings(2500))
}

package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Duration and quantity patterns. The hour-only branch deliberately has its
// own expression: it must not share capture-group handling with the
// hour+minute form, which assumes a minutes group is present.
var (
	isoDurationRe = regexp.MustCompile(`(?i)^P(?:[\d.]+D)?T(?:(\d+)H)?(?:(\d+)M)?`)
	firstIntRe    = regexp.MustCompile(`\d+`)

	hoursMinutesRe = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\b\s*(?:and\s+)?(\d+)\s*(?:minutes?|mins?|m)\b`)
	minutesOnlyRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|m)\b`)
	hoursOnlyRe    = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\b`)
)

// parseDuration converts a schema.org duration value to whole minutes.
// Numbers are taken as minutes already; strings are tried against the
// ISO-8601 PT#H#M form first, then fall back to the first integer found.
// Returns 0 when no duration can be extracted.
func parseDuration(value interface{}) int {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return int(math.Round(v))
	case int:
		return v
	case string:
		if m := isoDurationRe.FindStringSubmatch(v); m != nil && (m[1] != "" || m[2] != "") {
			hours, _ := strconv.Atoi(m[1])
			minutes, _ := strconv.Atoi(m[2])
			return hours*60 + minutes
		}
		if n := firstIntRe.FindString(v); n != "" {
			minutes, _ := strconv.Atoi(n)
			return minutes
		}
	}
	return 0
}

// extractTimeFromText pulls a cooking time in minutes out of free text,
// e.g. "1 hour 15 minutes", "45 mins" or "2 hrs". Returns 0 on no match.
func extractTimeFromText(text string) int {
	if m := hoursMinutesRe.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}
	if m := minutesOnlyRe.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes
	}
	if m := hoursOnlyRe.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return hours * 60
	}
	return 0
}

// durationMinutes converts a microdata attribute or element value that may
// hold either an ISO-8601 duration or free text like "2 hours". Free text
// must be tried before the bare-integer fallback, which would read "2
// hours" as two minutes.
func durationMinutes(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if strings.HasPrefix(strings.ToUpper(value), "P") {
		return parseDuration(value)
	}
	if minutes := extractTimeFromText(value); minutes > 0 {
		return minutes
	}
	return parseDuration(value)
}

// extractServings converts a recipeYield value to a serving count.
// Numbers pass through rounded, strings yield their first integer, and
// arrays return the first element that resolves. Plausibility bounds are
// applied by callers, not here. Returns 0 when nothing resolves.
func extractServings(value interface{}) int {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return int(math.Round(v))
	case int:
		return v
	case string:
		if n := firstIntRe.FindString(v); n != "" {
			servings, _ := strconv.Atoi(n)
			return servings
		}
	case []interface{}:
		for _, item := range v {
			if servings := extractServings(item); servings != 0 {
				return servings
			}
		}
	}
	return 0
}

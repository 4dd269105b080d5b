package parser

import "regexp"

// Selector ladders for the heuristic strategy, one per field, ordered from
// site-specific conventions down to last-resort fallbacks. The first
// selector producing a plausible hit wins.
var (
	titleSelectors = []string{
		"h1.recipe-title",
		"h1.entry-title",
		`h1[class*="recipe"]`,
		".recipe-header h1",
		`[class*="recipe-name"]`,
		`[class*="recipe-title"]`,
		"h1",
		"title",
	}

	summarySelectors = []string{
		".recipe-summary",
		".recipe-description",
		`[class*="recipe-intro"]`,
		`[class*="description"]`,
		".entry-content > p:first-of-type",
	}

	ingredientSelectors = []string{
		".recipe-ingredients li",
		".ingredients li",
		"ul.ingredient-list li",
		`[class*="ingredients"] li`,
		`[class*="ingredient-list"] li`,
		".recipe-ingredients p",
	}

	ingredientLeafSelectors = []string{
		`li[class*="ingredient"]`,
		`p[class*="ingredient"]`,
		`span[class*="ingredient"]`,
	}

	instructionSelectors = []string{
		".recipe-instructions li",
		".instructions li",
		".directions li",
		".method li",
		`[class*="instructions"] li`,
		`[class*="directions"] li`,
		".recipe-instructions p",
		".instructions p",
	}

	instructionLeafSelectors = []string{
		`li[class*="step"]`,
		`div[class*="step"]`,
		`p[class*="step"]`,
		`li[class*="direction"]`,
	}

	timeSelectors = []string{
		".recipe-time",
		".total-time",
		".cook-time",
		".prep-time",
		`[class*="cook-time"]`,
		`[class*="total-time"]`,
		`[class*="recipe-time"]`,
	}

	servingSelectors = []string{
		".servings",
		".recipe-servings",
		".yield",
		".recipe-yield",
		`[class*="servings"]`,
		`[class*="yield"]`,
	}

	difficultySelectors = []string{
		".difficulty",
		".recipe-difficulty",
		`[class*="difficulty"]`,
		`[class*="skill-level"]`,
		`[class*="level"]`,
	}

	cuisineSelectors = []string{
		".cuisine",
		".recipe-cuisine",
		`[class*="cuisine"]`,
		`[class*="recipe-category"]`,
	}

	tagSelectors = []string{
		".recipe-tags a",
		".tags a",
		".recipe-categories a",
		`[class*="tag"] a`,
	}
)

// difficultyVocabulary is the closed set of accepted difficulty labels.
var difficultyVocabulary = []string{"easy", "medium", "hard", "beginner", "intermediate", "advanced"}

// Whole-body regex fallbacks, tried in order when no dedicated element
// matched. Labeled phrasing ("cook time: 25 minutes") is most specific and
// tried first.
var (
	bodyHoursMinutesRe = hoursMinutesRe
	bodyMinutesRe      = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?)\b`)
	bodyHoursRe        = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?)\b`)
	bodyLabeledTimeRe  = regexp.MustCompile(`(?i)(?:prep|cook|total)\s*time:?\s*(\d+)\s*(?:minutes?|mins?)\b`)

	bodyServingsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)serves:?\s*(\d+)`),
		regexp.MustCompile(`(?i)(\d+)\s*servings?\b`),
		regexp.MustCompile(`(?i)makes:?\s*(\d+)`),
		regexp.MustCompile(`(?i)yields?:?\s*(\d+)`),
	}
)

// Plausibility bounds for heuristic hits.
const (
	maxTitleLen       = 200
	minSummaryLen     = 20
	maxSummaryLen     = 500
	minIngredientLen  = 2
	minInstructionLen = 10
	maxCuisineLen     = 50
	maxTagLen         = 30
)

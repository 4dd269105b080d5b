package parser

import (
	"math"
	"sort"
	"strings"
)

// mergeRecipes synthesizes one best-effort recipe from the partial results
// earlier strategies produced. Per-field rules:
//   - strings: longest non-blank candidate, ties broken by attempt order
//   - arrays: candidate with the most elements, never merged element-wise
//   - numerics: exact median of all positive candidates, biasing toward a
//     consensus value over any one strategy's outlier
//   - tags: case-insensitive union, first-seen casing preserved
//
// Returns nil when there are no candidates at all.
func mergeRecipes(partials []*ParsedRecipe) *ParsedRecipe {
	candidates := make([]*ParsedRecipe, 0, len(partials))
	for _, partial := range partials {
		if partial != nil {
			candidates = append(candidates, partial)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	merged := &ParsedRecipe{Tags: []string{}}
	var times, servings []int
	var tags []string

	for _, candidate := range candidates {
		merged.Title = longerString(merged.Title, candidate.Title)
		merged.Summary = longerString(merged.Summary, candidate.Summary)
		merged.Difficulty = longerString(merged.Difficulty, candidate.Difficulty)
		merged.Cuisine = longerString(merged.Cuisine, candidate.Cuisine)

		merged.Instructions = longerSlice(merged.Instructions, candidate.Instructions)
		merged.Ingredients = longerSlice(merged.Ingredients, candidate.Ingredients)

		if candidate.CookingTime > 0 {
			times = append(times, candidate.CookingTime)
		}
		if candidate.Servings > 0 {
			servings = append(servings, candidate.Servings)
		}
		tags = append(tags, candidate.Tags...)
	}

	merged.CookingTime = median(times)
	merged.Servings = median(servings)
	merged.Tags = dedupeFold(tags)

	return merged
}

// longerString keeps the longer non-blank of two candidates; the earlier
// one wins ties.
func longerString(current, candidate string) string {
	if strings.TrimSpace(candidate) == "" {
		return current
	}
	if len(candidate) > len(current) {
		return candidate
	}
	return current
}

func longerSlice(current, candidate []string) []string {
	if len(candidate) > len(current) {
		return candidate
	}
	return current
}

// median returns the exact median of positive values, averaging the two
// middle values (rounded) for even-sized input.
func median(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return int(math.Round(float64(sorted[mid-1]+sorted[mid]) / 2))
}

package parser

import "strings"

// IsMeaningful reports whether a recipe clears the minimum completeness
// gate: a non-blank title plus at least one ingredient or instruction.
// The cascade uses it to decide whether to keep going, and callers use it
// to decide whether to fall back to another extractor entirely.
func IsMeaningful(recipe *ParsedRecipe) bool {
	if recipe == nil {
		return false
	}
	if strings.TrimSpace(recipe.Title) == "" {
		return false
	}
	return len(recipe.Ingredients) > 0 || len(recipe.Instructions) > 0
}

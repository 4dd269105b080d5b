package parser

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"
	"github.com/microcosm-cc/bluemonday"
)

// Cooking time and yield field names, in preference order. Shared with the
// microdata strategy.
var (
	timeFields  = []string{"totalTime", "cookTime", "cookingTime", "prepTime", "preparationTime"}
	yieldFields = []string{"recipeYield", "yield"}
)

// jsonLDStrategy extracts a recipe from application/ld+json script blocks.
type jsonLDStrategy struct {
	stripper *bluemonday.Policy
}

func newJSONLDStrategy() *jsonLDStrategy {
	return &jsonLDStrategy{stripper: bluemonday.StrictPolicy()}
}

func (s *jsonLDStrategy) Name() Method { return MethodJSONLD }

func (s *jsonLDStrategy) Extract(doc *goquery.Document) (*ParsedRecipe, interface{}, error) {
	blocks := doc.Find(`script[type='application/ld+json']`)
	if blocks.Length() == 0 {
		return nil, nil, errors.New("no structured data found")
	}

	var node map[string]interface{}
	blocks.EachWithBreak(func(i int, block *goquery.Selection) bool {
		content := strings.TrimSpace(block.Text())
		if content == "" {
			return true
		}

		var data interface{}
		// Malformed blocks are skipped, not fatal
		if err := sonic.Unmarshal([]byte(content), &data); err != nil {
			return true
		}

		if found := findRecipeNode(data); found != nil {
			node = found
			return false
		}
		return true
	})

	if node == nil {
		return nil, nil, errors.New("no Recipe schema found")
	}

	return s.mapRecipe(node), node, nil
}

// findRecipeNode recursively resolves arrays and @graph containers looking
// for the first object whose @type is or includes "Recipe".
func findRecipeNode(data interface{}) map[string]interface{} {
	switch v := data.(type) {
	case []interface{}:
		for _, item := range v {
			if found := findRecipeNode(item); found != nil {
				return found
			}
		}
	case map[string]interface{}:
		if typeMatches(v["@type"], "Recipe") {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findRecipeNode(graph)
		}
	}
	return nil
}

// typeMatches checks @type equality for both the string and array forms.
func typeMatches(typeValue interface{}, want string) bool {
	switch t := typeValue.(type) {
	case string:
		return strings.EqualFold(t, want)
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.EqualFold(s, want) {
				return true
			}
		}
	}
	return false
}

// mapRecipe maps schema.org Recipe fields onto a ParsedRecipe.
func (s *jsonLDStrategy) mapRecipe(node map[string]interface{}) *ParsedRecipe {
	recipe := &ParsedRecipe{Tags: []string{}}

	recipe.Title = s.asText(node["name"])
	recipe.Summary = s.asText(node["description"])
	recipe.Instructions = s.mapInstructions(node["recipeInstructions"])
	recipe.Ingredients = s.mapIngredients(node["recipeIngredient"])
	if recipe.Ingredients == nil {
		// Legacy field name used by older markup generators
		recipe.Ingredients = s.mapIngredients(node["ingredients"])
	}

	for _, field := range timeFields {
		if minutes := parseDuration(node[field]); minutes > 0 {
			recipe.CookingTime = minutes
			break
		}
	}
	for _, field := range yieldFields {
		if servings := plausibleServings(extractServings(node[field])); servings > 0 {
			recipe.Servings = servings
			break
		}
	}

	recipe.Difficulty = s.asText(node["difficulty"])
	recipe.Cuisine = s.asText(node["recipeCuisine"])
	recipe.Tags = s.mapTags(node)

	return recipe
}

// mapInstructions flattens recipeInstructions: plain strings, HowToStep
// objects (text, else name), CreativeWork objects (description), and
// HowToSection containers holding further steps.
func (s *jsonLDStrategy) mapInstructions(value interface{}) []string {
	var steps []string

	var walk func(interface{})
	walk = func(v interface{}) {
		switch item := v.(type) {
		case string:
			if text := s.stripText(item); text != "" {
				steps = append(steps, text)
			}
		case []interface{}:
			for _, child := range item {
				walk(child)
			}
		case map[string]interface{}:
			if list, ok := item["itemListElement"]; ok {
				walk(list)
				return
			}
			for _, key := range []string{"text", "name", "description"} {
				if text := s.stripText(asString(item[key])); text != "" {
					steps = append(steps, text)
					return
				}
			}
		}
	}
	walk(value)

	return steps
}

func (s *jsonLDStrategy) mapIngredients(value interface{}) []string {
	var lines []string
	switch v := value.(type) {
	case string:
		if line := s.stripText(v); line != "" {
			lines = append(lines, line)
		}
	case []interface{}:
		for _, item := range v {
			if line := s.stripText(asString(item)); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// mapTags unions recipeCategory, recipeCuisine, keywords and
// suitableForDiet into one case-insensitively deduplicated tag list.
func (s *jsonLDStrategy) mapTags(node map[string]interface{}) []string {
	var tags []string

	collect := func(value interface{}) {
		switch v := value.(type) {
		case string:
			tags = append(tags, v)
		case []interface{}:
			for _, item := range v {
				if text := asString(item); text != "" {
					tags = append(tags, text)
				}
			}
		}
	}

	collect(node["recipeCategory"])
	collect(node["recipeCuisine"])
	collect(node["suitableForDiet"])

	// A single keywords string is conventionally comma-separated
	if keywords, ok := node["keywords"].(string); ok {
		tags = append(tags, strings.Split(keywords, ",")...)
	} else {
		collect(node["keywords"])
	}

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		cleaned = append(cleaned, cleanText(tag))
	}
	return dedupeFold(cleaned)
}

// asText normalizes a string-or-array JSON value to one cleaned string.
func (s *jsonLDStrategy) asText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return s.stripText(v)
	case []interface{}:
		for _, item := range v {
			if text := s.stripText(asString(item)); text != "" {
				return text
			}
		}
	}
	return ""
}

// stripText removes embedded markup, then decodes entities and trims.
func (s *jsonLDStrategy) stripText(text string) string {
	if text == "" {
		return ""
	}
	if strings.ContainsRune(text, '<') {
		text = s.stripper.Sanitize(text)
	}
	return cleanText(text)
}

func asString(value interface{}) string {
	s, _ := value.(string)
	return s
}

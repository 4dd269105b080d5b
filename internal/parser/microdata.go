package parser

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
)

// microdataStrategy extracts a recipe from itemscope/itemtype/itemprop
// annotations (HTML5 microdata).
type microdataStrategy struct{}

func newMicrodataStrategy() *microdataStrategy { return &microdataStrategy{} }

func (s *microdataStrategy) Name() Method { return MethodMicrodata }

func (s *microdataStrategy) Extract(doc *goquery.Document) (*ParsedRecipe, interface{}, error) {
	scope := findRecipeScope(doc)
	if scope == nil {
		return nil, nil, errors.New("no Recipe microdata found")
	}

	recipe := &ParsedRecipe{Tags: []string{}}

	recipe.Title = propValue(scope, "name")
	recipe.Summary = propValue(scope, "description")

	recipe.Ingredients = propValues(scope, "recipeIngredient")
	if len(recipe.Ingredients) == 0 {
		// Legacy itemprop name
		recipe.Ingredients = propValues(scope, "ingredients")
	}

	recipe.Instructions = propValues(scope, "recipeInstructions")
	if len(recipe.Instructions) == 0 {
		recipe.Instructions = stepInstructions(scope)
	}

	for _, field := range timeFields {
		if minutes := durationMinutes(propValue(scope, field)); minutes > 0 {
			recipe.CookingTime = minutes
			break
		}
	}

	for _, field := range yieldFields {
		if servings := plausibleServings(extractServings(propValue(scope, field))); servings > 0 {
			recipe.Servings = servings
			break
		}
	}

	recipe.Cuisine = propValue(scope, "recipeCuisine")
	recipe.Tags = dedupeFold(append(propValues(scope, "recipeCategory"), propValues(scope, "keywords")...))

	raw := map[string]interface{}{
		"itemtype": scope.AttrOr("itemtype", ""),
	}
	return recipe, raw, nil
}

// findRecipeScope locates the first element typed as a schema.org Recipe,
// matching http, https and schemeless itemtype forms.
func findRecipeScope(doc *goquery.Document) *goquery.Selection {
	var scope *goquery.Selection
	doc.Find("[itemscope]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		itemType := strings.ToLower(sel.AttrOr("itemtype", ""))
		if strings.Contains(itemType, "schema.org/recipe") {
			scope = sel
			return false
		}
		return true
	})
	return scope
}

// elementValue applies the uniform microdata value preference: the content
// attribute (meta convention), then value (input convention), then the
// datetime attribute of time elements, then trimmed text content.
func elementValue(sel *goquery.Selection) string {
	for _, attr := range []string{"content", "value", "datetime"} {
		if v := strings.TrimSpace(sel.AttrOr(attr, "")); v != "" {
			return decodeEntities(v)
		}
	}
	return cleanText(sel.Text())
}

// propValue returns the first non-empty value of an itemprop under scope.
func propValue(scope *goquery.Selection, name string) string {
	var value string
	scope.Find("[itemprop='" + name + "']").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if v := elementValue(sel); v != "" {
			value = v
			return false
		}
		return true
	})
	return value
}

// propValues returns every non-empty value of an itemprop in document order.
func propValues(scope *goquery.Selection, name string) []string {
	var values []string
	scope.Find("[itemprop='" + name + "']").Each(func(i int, sel *goquery.Selection) {
		if v := elementValue(sel); v != "" {
			values = append(values, v)
		}
	})
	return values
}

// stepInstructions handles recipes whose instructions are nested HowToStep
// items instead of direct recipeInstructions properties. XPath keeps the
// lookup independent of how deeply the steps are nested.
func stepInstructions(scope *goquery.Selection) []string {
	if len(scope.Nodes) == 0 {
		return nil
	}

	steps := htmlquery.Find(scope.Nodes[0], `.//*[contains(@itemtype, "HowToStep")]`)
	var instructions []string
	for _, step := range steps {
		text := ""
		for _, prop := range []string{"text", "name"} {
			if node := htmlquery.FindOne(step, `.//*[@itemprop="`+prop+`"]`); node != nil {
				text = cleanText(htmlquery.InnerText(node))
				if text != "" {
					break
				}
			}
		}
		if text == "" {
			text = cleanText(htmlquery.InnerText(step))
		}
		if text != "" {
			instructions = append(instructions, text)
		}
	}
	return instructions
}

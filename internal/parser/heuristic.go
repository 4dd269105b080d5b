package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlStrategy is the universal fallback for pages with no structured
// markup at all. Each field walks its selector ladder and keeps the first
// plausible hit; cooking time and servings additionally fall back to
// regex scans over the whole body text.
type htmlStrategy struct{}

func newHTMLStrategy() *htmlStrategy { return &htmlStrategy{} }

func (s *htmlStrategy) Name() Method { return MethodHTML }

func (s *htmlStrategy) Extract(doc *goquery.Document) (*ParsedRecipe, interface{}, error) {
	recipe := &ParsedRecipe{Tags: []string{}}
	matched := map[string]string{}

	if title, sel := s.findTitle(doc); title != "" {
		recipe.Title = title
		matched["title"] = sel
	}
	if summary, sel := s.findSummary(doc); summary != "" {
		recipe.Summary = summary
		matched["summary"] = sel
	}

	recipe.Ingredients = s.findLines(doc, ingredientSelectors, ingredientLeafSelectors, minIngredientLen)
	recipe.Instructions = s.findLines(doc, instructionSelectors, instructionLeafSelectors, minInstructionLen)
	recipe.CookingTime = s.findCookingTime(doc)
	recipe.Servings = s.findServings(doc)
	recipe.Difficulty = s.findDifficulty(doc)
	recipe.Cuisine = s.findCuisine(doc)
	recipe.Tags = s.findTags(doc)

	if recipe.Title == "" && len(recipe.Ingredients) == 0 && len(recipe.Instructions) == 0 {
		return nil, nil, errors.New("no recipe data found using HTML parsing patterns")
	}

	return recipe, matched, nil
}

func (s *htmlStrategy) findTitle(doc *goquery.Document) (string, string) {
	for _, selector := range titleSelectors {
		text := cleanText(doc.Find(selector).First().Text())
		if text != "" && len(text) < maxTitleLen {
			return text, selector
		}
	}
	return "", ""
}

func (s *htmlStrategy) findSummary(doc *goquery.Document) (string, string) {
	for _, selector := range summarySelectors {
		text := cleanText(doc.Find(selector).First().Text())
		if len(text) >= minSummaryLen && len(text) <= maxSummaryLen {
			return text, selector
		}
	}
	// Meta description fallback
	for _, selector := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		content := cleanText(doc.Find(selector).AttrOr("content", ""))
		if len(content) >= minSummaryLen && len(content) <= maxSummaryLen {
			return content, selector
		}
	}
	return "", ""
}

// findLines collects list or paragraph lines under the primary selectors,
// then tries the leaf selectors when nothing qualified. Lines at or below
// minLen are decorative markup noise and dropped.
func (s *htmlStrategy) findLines(doc *goquery.Document, primary, leaf []string, minLen int) []string {
	for _, group := range [][]string{primary, leaf} {
		for _, selector := range group {
			var lines []string
			doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
				if text := cleanText(sel.Text()); len(text) > minLen {
					lines = append(lines, text)
				}
			})
			if len(lines) > 0 {
				return lines
			}
		}
	}
	return nil
}

func (s *htmlStrategy) findCookingTime(doc *goquery.Document) int {
	for _, selector := range timeSelectors {
		var minutes int
		doc.Find(selector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
			minutes = extractTimeFromText(sel.Text())
			return minutes == 0
		})
		if minutes > 0 {
			return minutes
		}
	}

	// Body-wide scan, most specific phrasing first
	body := doc.Find("body").Text()
	if m := bodyLabeledTimeRe.FindStringSubmatch(body); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes
	}
	if m := bodyHoursMinutesRe.FindStringSubmatch(body); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}
	if m := bodyMinutesRe.FindStringSubmatch(body); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes
	}
	if m := bodyHoursRe.FindStringSubmatch(body); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return hours * 60
	}
	return 0
}

func (s *htmlStrategy) findServings(doc *goquery.Document) int {
	for _, selector := range servingSelectors {
		var servings int
		doc.Find(selector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
			servings = plausibleServings(extractServings(sel.Text()))
			return servings == 0
		})
		if servings > 0 {
			return servings
		}
	}

	body := doc.Find("body").Text()
	for _, re := range bodyServingsPatterns {
		if m := re.FindStringSubmatch(body); m != nil {
			n, _ := strconv.Atoi(m[1])
			if servings := plausibleServings(n); servings > 0 {
				return servings
			}
		}
	}
	return 0
}

func (s *htmlStrategy) findDifficulty(doc *goquery.Document) string {
	for _, selector := range difficultySelectors {
		text := strings.ToLower(cleanText(doc.Find(selector).First().Text()))
		if text == "" {
			continue
		}
		for _, label := range difficultyVocabulary {
			if strings.Contains(text, label) {
				return label
			}
		}
	}
	return ""
}

func (s *htmlStrategy) findCuisine(doc *goquery.Document) string {
	for _, selector := range cuisineSelectors {
		text := cleanText(doc.Find(selector).First().Text())
		if text != "" && len(text) < maxCuisineLen {
			return text
		}
	}
	return ""
}

func (s *htmlStrategy) findTags(doc *goquery.Document) []string {
	var tags []string
	for _, selector := range tagSelectors {
		doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
			if text := cleanText(sel.Text()); text != "" && len(text) < maxTagLen {
				tags = append(tags, text)
			}
		})
		if len(tags) > 0 {
			break
		}
	}
	return dedupeFold(tags)
}

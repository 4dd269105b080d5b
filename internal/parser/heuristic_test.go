package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractHeuristic(t *testing.T, html string) (*ParsedRecipe, error) {
	t.Helper()
	doc, err := LoadHTML(html)
	require.NoError(t, err)
	recipe, _, err := newHTMLStrategy().Extract(doc)
	return recipe, err
}

func TestHeuristicNoRecipeContent(t *testing.T) {
	html := `<html><head><title></title></head><body><div>x</div></body></html>`

	_, err := extractHeuristic(t, html)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recipe data found")
}

func TestHeuristicFullPage(t *testing.T) {
	html := `<html><head>
	<title>Some Blog</title>
	<meta name="description" content="The best weeknight pasta you will ever make.">
	</head><body>
	<h1 class="recipe-title">Weeknight Pasta</h1>
	<span class="cook-time">Ready in 25 minutes</span>
	<span class="servings">Serves 4</span>
	<span class="difficulty">Difficulty: Easy</span>
	<span class="cuisine">Italian</span>
	<div class="recipe-ingredients">
		<ul>
			<li>400g spaghetti</li>
			<li>2 cloves garlic</li>
			<li>*</li>
		</ul>
	</div>
	<div class="recipe-instructions">
		<ol>
			<li>Boil the pasta in salted water.</li>
			<li>Toss with garlic and olive oil.</li>
		</ol>
	</div>
	<div class="recipe-tags">
		<a>pasta</a><a>quick</a><a>Pasta</a>
	</div>
	</body></html>`

	recipe, err := extractHeuristic(t, html)
	require.NoError(t, err)

	assert.Equal(t, "Weeknight Pasta", recipe.Title)
	assert.Equal(t, "The best weeknight pasta you will ever make.", recipe.Summary)
	// The lone "*" bullet is below the minimum ingredient length
	assert.Equal(t, []string{"400g spaghetti", "2 cloves garlic"}, recipe.Ingredients)
	assert.Equal(t, []string{"Boil the pasta in salted water.", "Toss with garlic and olive oil."}, recipe.Instructions)
	assert.Equal(t, 25, recipe.CookingTime)
	assert.Equal(t, 4, recipe.Servings)
	assert.Equal(t, "easy", recipe.Difficulty)
	assert.Equal(t, "Italian", recipe.Cuisine)
	assert.Equal(t, []string{"pasta", "quick"}, recipe.Tags)
}

func TestHeuristicTitleFallsBackToDocumentTitle(t *testing.T) {
	html := `<html><head><title>Irish Soda Bread</title></head><body>
	<ul class="ingredients"><li>450g flour</li></ul>
	</body></html>`

	recipe, err := extractHeuristic(t, html)
	require.NoError(t, err)
	assert.Equal(t, "Irish Soda Bread", recipe.Title)
}

func TestHeuristicShortInstructionLinesDropped(t *testing.T) {
	html := `<html><body>
	<h1>Boiled Egg</h1>
	<div class="instructions">
		<ol>
			<li>Boil.</li>
			<li>Simmer the egg for six minutes exactly.</li>
		</ol>
	</div>
	</body></html>`

	recipe, err := extractHeuristic(t, html)
	require.NoError(t, err)
	assert.Equal(t, []string{"Simmer the egg for six minutes exactly."}, recipe.Instructions)
}

func TestHeuristicLeafSelectorFallback(t *testing.T) {
	html := `<html><body>
	<h1>Granola</h1>
	<p class="ingredient-item">300g rolled oats</p>
	<p class="ingredient-item">100g honey</p>
	</body></html>`

	recipe, err := extractHeuristic(t, html)
	require.NoError(t, err)
	assert.Equal(t, []string{"300g rolled oats", "100g honey"}, recipe.Ingredients)
}

func TestHeuristicBodyTimeRegexes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"labeled", "Cook time: 25 minutes of hands-off baking", 25},
		{"hours and minutes", "The braise needs 1 hour 30 minutes in the oven", 90},
		{"minutes only", "give it about 45 minutes to rest", 45},
		{"hours only", "slow roast for 2 hours until tender", 120},
		{"nothing", "bake until golden", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<html><body><h1>Roast</h1><ul class="ingredients"><li>one chicken</li></ul><p>` + tt.body + `</p></body></html>`
			recipe, err := extractHeuristic(t, html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, recipe.CookingTime)
		})
	}
}

func TestHeuristicBodyServingsRegexes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"serves", "This dish serves 6 comfortably", 6},
		{"servings", "Recipe makes about 8 servings total", 8},
		{"implausible", "serves 500 guests at a banquet", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<html><body><h1>Paella</h1><ul class="ingredients"><li>rice</li></ul><p>` + tt.body + `</p></body></html>`
			recipe, err := extractHeuristic(t, html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, recipe.Servings)
		})
	}
}

func TestHeuristicDifficultyVocabulary(t *testing.T) {
	html := `<html><body>
	<h1>Croissants</h1>
	<ul class="ingredients"><li>butter</li></ul>
	<span class="skill-level-badge">Skill: Advanced bakers only</span>
	</body></html>`

	recipe, err := extractHeuristic(t, html)
	require.NoError(t, err)
	assert.Equal(t, "advanced", recipe.Difficulty)
}

func TestHeuristicUnknownDifficultyIgnored(t *testing.T) {
	html := `<html><body>
	<h1>Toast</h1>
	<ul class="ingredients"><li>bread</li></ul>
	<span class="difficulty">trivial</span>
	</body></html>`

	recipe, err := extractHeuristic(t, html)
	require.NoError(t, err)
	assert.Empty(t, recipe.Difficulty)
}

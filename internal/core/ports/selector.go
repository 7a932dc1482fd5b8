package ports

import "github.com/recipegen/recipe-roulette/internal/core/domain"

// SelectInput carries the filter parameters for one selection request.
type SelectInput struct {
	// Cuisine and Diet are exact-match, case-sensitive filters.
	// domain.FilterAny or the empty string match every recipe.
	Cuisine string
	Diet    string
	// MaxTimeMinutes is the inclusive cooking-time ceiling. Nil disables the
	// filter; any non-nil value is applied literally, so a ceiling of 0
	// excludes every recipe and a recipe with no recorded time is excluded
	// whenever the filter is active.
	MaxTimeMinutes *int
	// IngredientTerms are trimmed search terms. A recipe survives when any
	// term is a case-sensitive substring of its ingredients text. An empty
	// list disables the search.
	IngredientTerms []string
}

// Selector picks one recipe uniformly at random from the filtered candidate
// set. The boolean is false when no recipe matches; that is a normal
// outcome, not an error, and nothing is persisted.
type Selector interface {
	Select(recipes []domain.Recipe, in SelectInput) (*domain.Recipe, bool)
}

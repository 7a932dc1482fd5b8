package ports

import "github.com/recipegen/recipe-roulette/internal/core/domain"

// Catalog is the immutable in-memory recipe dataset, loaded once per process.
// Callers must treat the returned slices as read-only.
type Catalog interface {
	All() []domain.Recipe
	// Cuisines and Diets return the sorted distinct non-empty values present
	// in the dataset, for populating filter dropdowns.
	Cuisines() []string
	Diets() []string
}

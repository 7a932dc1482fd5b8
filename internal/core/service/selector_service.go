package service

import (
	"math/rand/v2"
	"strings"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
	"github.com/recipegen/recipe-roulette/internal/core/ports"
)

// recipePredicate narrows the candidate set by one field. Predicates are
// conjunctive, so the survivor set is the intersection of each predicate's
// survivor set and application order never changes the result.
type recipePredicate func(domain.Recipe) bool

// SelectorService filters the catalog and picks one survivor uniformly at
// random. It performs no I/O and no persistence; the only non-determinism is
// the injected random draw.
type SelectorService struct {
	randIntN func(n int) int
}

// NewSelectorService constructs a SelectorService drawing from math/rand.
func NewSelectorService() *SelectorService {
	return &SelectorService{randIntN: rand.IntN}
}

// NewSelectorServiceWithRand constructs a SelectorService with a custom
// random source. randIntN must return a value in [0, n).
func NewSelectorServiceWithRand(randIntN func(n int) int) *SelectorService {
	return &SelectorService{randIntN: randIntN}
}

// Select applies the filter pipeline to recipes and returns one survivor
// chosen uniformly at random. The boolean is false when nothing matches.
func (s *SelectorService) Select(recipes []domain.Recipe, in ports.SelectInput) (*domain.Recipe, bool) {
	preds := buildPredicates(in)

	var survivors []domain.Recipe
	for _, r := range recipes {
		if matchesAll(r, preds) {
			survivors = append(survivors, r)
		}
	}

	if len(survivors) == 0 {
		return nil, false
	}

	pick := survivors[s.randIntN(len(survivors))]
	return &pick, true
}

func matchesAll(r domain.Recipe, preds []recipePredicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

func buildPredicates(in ports.SelectInput) []recipePredicate {
	var preds []recipePredicate

	if cuisine := in.Cuisine; cuisine != "" && cuisine != domain.FilterAny {
		preds = append(preds, func(r domain.Recipe) bool { return r.Cuisine == cuisine })
	}

	if diet := in.Diet; diet != "" && diet != domain.FilterAny {
		preds = append(preds, func(r domain.Recipe) bool { return r.Diet == diet })
	}

	if in.MaxTimeMinutes != nil {
		// Applied literally whenever present, default ceiling included. A
		// recipe without a recorded time never satisfies an active ceiling,
		// and a ceiling of 0 excludes everything.
		max := *in.MaxTimeMinutes
		preds = append(preds, func(r domain.Recipe) bool {
			return r.TotalTimeMinutes != nil && *r.TotalTimeMinutes <= max
		})
	}

	if terms := trimTerms(in.IngredientTerms); len(terms) > 0 {
		preds = append(preds, func(r domain.Recipe) bool {
			for _, term := range terms {
				if strings.Contains(r.Ingredients, term) {
					return true
				}
			}
			return false
		})
	}

	return preds
}

// trimTerms trims whitespace from each search term and drops empties.
// Matching itself stays case-sensitive and unanchored.
func trimTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

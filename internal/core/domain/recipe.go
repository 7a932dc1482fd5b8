package domain

import "strings"

// FilterAny is the sentinel filter value that matches every recipe. The
// dataset-facing UI exposes it as the "All" dropdown entry; an empty filter
// is treated the same way.
const FilterAny = "All"

// Recipe is one immutable row of the catalog. Optional fields are empty
// strings, except TotalTimeMinutes where nil means the dataset had no value.
type Recipe struct {
	Name             string `json:"name"`
	Ingredients      string `json:"ingredients"`
	Instructions     string `json:"instructions"`
	ImageURL         string `json:"image_url,omitempty"`
	SourceURL        string `json:"source_url,omitempty"`
	Cuisine          string `json:"cuisine,omitempty"`
	Diet             string `json:"diet,omitempty"`
	TotalTimeMinutes *int   `json:"total_time_minutes,omitempty"`
}

// IngredientLines returns the ingredients text split on commas, trimmed,
// with empty fragments dropped. This is the canonical representation both
// the display layer and history snapshots rely on.
func (r Recipe) IngredientLines() []string {
	return splitTrimmed(r.Ingredients, ",")
}

// InstructionSteps returns the instructions text split on ".", trimmed, with
// empty clauses dropped. Step numbering is the caller's concern.
func (r Recipe) InstructionSteps() []string {
	return splitTrimmed(r.Instructions, ".")
}

func splitTrimmed(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

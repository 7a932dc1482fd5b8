package domain

import "time"

// HistoryEntry records one past recipe selection for one user. Entries are
// append-only and never mutated; the recipe fields are a flattened snapshot
// taken at selection time, so a later dataset change cannot rewrite history.
type HistoryEntry struct {
	Username     string    `json:"username"`
	RecipeName   string    `json:"recipe_name"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	ImageURL     string    `json:"image_url,omitempty"`
	RecipeURL    string    `json:"recipe_url,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

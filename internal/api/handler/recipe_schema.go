package handler

type generateRecipeRequest struct {
	// Cuisine and Diet are exact dataset values; "All" or empty matches any.
	Cuisine string `json:"cuisine"`
	Diet    string `json:"diet"`
	// MaxTimeMinutes is the inclusive cooking-time ceiling. Omitting it
	// disables the filter; 0 is a valid (all-excluding) ceiling.
	MaxTimeMinutes *int `json:"max_time_minutes" validate:"omitempty,gte=0"`
	// Search holds comma-separated ingredient terms.
	Search string `json:"search"`
}

type recipeResponse struct {
	Name             string   `json:"name"`
	Cuisine          string   `json:"cuisine,omitempty"`
	Diet             string   `json:"diet,omitempty"`
	TotalTimeMinutes *int     `json:"total_time_minutes,omitempty"`
	Ingredients      []string `json:"ingredients"`
	Instructions     []string `json:"instructions"`
	ImageURL         string   `json:"image_url,omitempty"`
	SourceURL        string   `json:"source_url,omitempty"`
}

type facetsResponse struct {
	Cuisines []string `json:"cuisines"`
	Diets    []string `json:"diets"`
}

package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/recipegen/recipe-roulette/internal/api/metrics"
	"github.com/recipegen/recipe-roulette/internal/core/domain"
	"github.com/recipegen/recipe-roulette/internal/core/ports"
)

// RecipeHandler serves recipe generation and catalog facets.
type RecipeHandler struct {
	catalog  ports.Catalog
	selector ports.Selector
	history  ports.HistoryService
}

func NewRecipeHandler(catalog ports.Catalog, selector ports.Selector, history ports.HistoryService) *RecipeHandler {
	return &RecipeHandler{catalog: catalog, selector: selector, history: history}
}

// Generate picks one recipe matching the request filters uniformly at random
// and records it in the acting user's history.
//
// @Summary      Generate a random matching recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body      generateRecipeRequest  true  "Filters"
// @Success      200   {object}  recipeResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /recipes/generate [post]
func (h *RecipeHandler) Generate(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req generateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	recipe, ok := h.selector.Select(h.catalog.All(), ports.SelectInput{
		Cuisine:         req.Cuisine,
		Diet:            req.Diet,
		MaxTimeMinutes:  req.MaxTimeMinutes,
		IngredientTerms: splitSearchTerms(req.Search),
	})
	if !ok {
		// No match is a normal outcome; nothing is persisted.
		metrics.SelectionNoMatchTotal.Inc()
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no recipes found matching your criteria"})
	}

	if err := h.history.Record(c.Request().Context(), username, *recipe); err != nil {
		return err
	}

	metrics.SelectionsTotal.WithLabelValues(facetLabel(req.Cuisine), facetLabel(req.Diet)).Inc()
	return c.JSON(http.StatusOK, renderRecipe(*recipe))
}

// Facets returns the sorted distinct cuisines and diets in the catalog.
//
// @Summary      Catalog filter values
// @Tags         recipes
// @Produce      json
// @Success      200  {object}  facetsResponse
// @Router       /recipes/facets [get]
func (h *RecipeHandler) Facets(c echo.Context) error {
	return c.JSON(http.StatusOK, facetsResponse{
		Cuisines: h.catalog.Cuisines(),
		Diets:    h.catalog.Diets(),
	})
}

// renderRecipe builds the display form: one line per comma-separated
// ingredient, one numbered step per "."-delimited instruction clause.
func renderRecipe(r domain.Recipe) recipeResponse {
	steps := r.InstructionSteps()
	numbered := make([]string, len(steps))
	for i, step := range steps {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, step)
	}

	return recipeResponse{
		Name:             r.Name,
		Cuisine:          r.Cuisine,
		Diet:             r.Diet,
		TotalTimeMinutes: r.TotalTimeMinutes,
		Ingredients:      r.IngredientLines(),
		Instructions:     numbered,
		ImageURL:         r.ImageURL,
		SourceURL:        r.SourceURL,
	}
}

func splitSearchTerms(search string) []string {
	if strings.TrimSpace(search) == "" {
		return nil
	}
	terms := strings.Split(search, ",")
	for i, t := range terms {
		terms[i] = strings.TrimSpace(t)
	}
	return terms
}

func facetLabel(v string) string {
	if v == "" {
		return domain.FilterAny
	}
	return v
}

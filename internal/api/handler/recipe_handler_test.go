package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
	"github.com/recipegen/recipe-roulette/internal/core/ports"
)

type stubCatalog struct {
	recipes  []domain.Recipe
	cuisines []string
	diets    []string
}

func (s *stubCatalog) All() []domain.Recipe { return s.recipes }
func (s *stubCatalog) Cuisines() []string   { return s.cuisines }
func (s *stubCatalog) Diets() []string      { return s.diets }

type stubSelector struct {
	gotInput ports.SelectInput
	result   *domain.Recipe
}

func (s *stubSelector) Select(_ []domain.Recipe, in ports.SelectInput) (*domain.Recipe, bool) {
	s.gotInput = in
	if s.result == nil {
		return nil, false
	}
	return s.result, true
}

type recordingHistory struct {
	recorded []string
}

func (s *recordingHistory) Record(_ context.Context, username string, recipe domain.Recipe) error {
	s.recorded = append(s.recorded, username+":"+recipe.Name)
	return nil
}

func (s *recordingHistory) ListForUser(context.Context, string) ([]domain.HistoryEntry, error) {
	return nil, nil
}

func newGenerateContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/recipes/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", "alice")
	return c, rec
}

func TestRecipeHandler_Generate_Success(t *testing.T) {
	recipe := &domain.Recipe{
		Name:         "Aloo Paratha",
		Cuisine:      "Indian",
		Diet:         "Vegetarian",
		Ingredients:  "potato, wheat flour, salt",
		Instructions: "Knead the dough. Stuff. Roast on a hot tawa.",
	}
	selector := &stubSelector{result: recipe}
	history := &recordingHistory{}
	h := NewRecipeHandler(&stubCatalog{}, selector, history)

	c, rec := newGenerateContext(t, `{"cuisine":"Indian","diet":"All","max_time_minutes":60,"search":"potato, rice"}`)
	if err := h.Generate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Filters reach the selector with the search string comma-split.
	if selector.gotInput.Cuisine != "Indian" || selector.gotInput.Diet != "All" {
		t.Fatalf("unexpected filters: %+v", selector.gotInput)
	}
	if selector.gotInput.MaxTimeMinutes == nil || *selector.gotInput.MaxTimeMinutes != 60 {
		t.Fatalf("unexpected ceiling: %v", selector.gotInput.MaxTimeMinutes)
	}
	if !reflect.DeepEqual(selector.gotInput.IngredientTerms, []string{"potato", "rice"}) {
		t.Fatalf("unexpected terms: %v", selector.gotInput.IngredientTerms)
	}

	// Exactly one history write, for the acting user.
	if !reflect.DeepEqual(history.recorded, []string{"alice:Aloo Paratha"}) {
		t.Fatalf("unexpected history writes: %v", history.recorded)
	}

	var resp recipeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !reflect.DeepEqual(resp.Ingredients, []string{"potato", "wheat flour", "salt"}) {
		t.Fatalf("unexpected ingredient lines: %v", resp.Ingredients)
	}
	want := []string{"1. Knead the dough", "2. Stuff", "3. Roast on a hot tawa"}
	if !reflect.DeepEqual(resp.Instructions, want) {
		t.Fatalf("unexpected instruction steps: %v", resp.Instructions)
	}
}

func TestRecipeHandler_Generate_NoMatch(t *testing.T) {
	history := &recordingHistory{}
	h := NewRecipeHandler(&stubCatalog{}, &stubSelector{}, history)

	c, rec := newGenerateContext(t, `{"cuisine":"Mexican"}`)
	if err := h.Generate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for no match, got %d", rec.Code)
	}
	if len(history.recorded) != 0 {
		t.Fatalf("no match must cause zero history writes, got %v", history.recorded)
	}
}

func TestRecipeHandler_Generate_NegativeCeilingRejected(t *testing.T) {
	h := NewRecipeHandler(&stubCatalog{}, &stubSelector{}, &recordingHistory{})

	c, rec := newGenerateContext(t, `{"max_time_minutes":-5}`)
	if err := h.Generate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a negative ceiling, got %d", rec.Code)
	}
}

func TestRecipeHandler_Generate_Unauthenticated(t *testing.T) {
	h := NewRecipeHandler(&stubCatalog{}, &stubSelector{}, &recordingHistory{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/recipes/generate", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Generate(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestRecipeHandler_Facets(t *testing.T) {
	catalog := &stubCatalog{cuisines: []string{"Indian", "Thai"}, diets: []string{"Vegetarian"}}
	h := NewRecipeHandler(catalog, &stubSelector{}, &recordingHistory{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recipes/facets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Facets(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp facetsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !reflect.DeepEqual(resp.Cuisines, []string{"Indian", "Thai"}) || !reflect.DeepEqual(resp.Diets, []string{"Vegetarian"}) {
		t.Fatalf("unexpected facets: %+v", resp)
	}
}

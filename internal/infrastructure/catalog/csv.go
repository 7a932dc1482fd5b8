// Package catalog loads the recipe dataset from a CSV file into an immutable
// in-memory catalog. The file is read once per process; nothing here mutates
// or re-reads it afterwards.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
)

// Dataset column names. The dataset defines them; absent optional columns
// degrade to empty recipe fields rather than a load fault.
const (
	colName         = "TranslatedRecipeName"
	colIngredients  = "TranslatedIngredients"
	colInstructions = "TranslatedInstructions"
	colImageURL     = "image-url"
	colSourceURL    = "URL"
	colCuisine      = "Cuisine"
	colDiet         = "Diet"
	colTotalTime    = "TotalTimeInMins"
)

// Catalog is the loaded dataset. Safe for concurrent readers without locking.
type Catalog struct {
	recipes  []domain.Recipe
	cuisines []string
	diets    []string
}

// Load reads the CSV file at path into a Catalog.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse reads CSV rows from r. The first row is the header; columns are
// mapped by name, so column order is irrelevant.
func Parse(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var recipes []domain.Recipe
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		recipes = append(recipes, domain.Recipe{
			Name:             field(row, cols, colName),
			Ingredients:      field(row, cols, colIngredients),
			Instructions:     field(row, cols, colInstructions),
			ImageURL:         field(row, cols, colImageURL),
			SourceURL:        field(row, cols, colSourceURL),
			Cuisine:          field(row, cols, colCuisine),
			Diet:             field(row, cols, colDiet),
			TotalTimeMinutes: timeField(row, cols),
		})
	}

	return &Catalog{
		recipes:  recipes,
		cuisines: distinct(recipes, func(r domain.Recipe) string { return r.Cuisine }),
		diets:    distinct(recipes, func(r domain.Recipe) string { return r.Diet }),
	}, nil
}

// All returns every recipe. Callers must treat the slice as read-only.
func (c *Catalog) All() []domain.Recipe { return c.recipes }

// Cuisines returns the sorted distinct non-empty cuisine values.
func (c *Catalog) Cuisines() []string { return c.cuisines }

// Diets returns the sorted distinct non-empty diet values.
func (c *Catalog) Diets() []string { return c.diets }

// Len returns the number of loaded recipes.
func (c *Catalog) Len() int { return len(c.recipes) }

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// timeField parses the total-time cell. The dataset stores it as a number,
// sometimes with a decimal point. Blank, unparseable, negative, or absurdly
// large values become nil, never a fault. The upper bound also keeps the
// float-to-int conversion from overflowing into a negative minute count.
func timeField(row []string, cols map[string]int) *int {
	raw := field(row, cols, colTotalTime)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > math.MaxInt32 {
		return nil
	}
	v := int(f)
	return &v
}

func distinct(recipes []domain.Recipe, get func(domain.Recipe) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range recipes {
		v := get(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

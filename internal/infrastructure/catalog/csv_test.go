package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `TranslatedRecipeName,TranslatedIngredients,TranslatedInstructions,image-url,URL,Cuisine,Diet,TotalTimeInMins
Aloo Paratha,"potato, wheat flour, salt",Knead. Stuff. Roast.,http://img/ap.jpg,http://r/ap,Indian,Vegetarian,40
Pad Thai,"noodles, peanut, egg",Soak. Fry.,http://img/pt.jpg,http://r/pt,Thai,Vegetarian,25.0
Mystery Stew,"onion, garlic",Simmer.,,,Indian,Vegetarian,
Bad Time,"rice",Boil.,,,Thai,Vegetarian,soon
`

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 recipes, got %d", c.Len())
	}

	r := c.All()[0]
	if r.Name != "Aloo Paratha" || r.Cuisine != "Indian" || r.Diet != "Vegetarian" {
		t.Fatalf("unexpected first recipe: %+v", r)
	}
	if r.TotalTimeMinutes == nil || *r.TotalTimeMinutes != 40 {
		t.Fatalf("expected 40 minutes, got %v", r.TotalTimeMinutes)
	}
	if r.Ingredients != "potato, wheat flour, salt" {
		t.Fatalf("ingredients text altered: %q", r.Ingredients)
	}
}

func TestParse_DecimalTime(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	r := c.All()[1]
	if r.TotalTimeMinutes == nil || *r.TotalTimeMinutes != 25 {
		t.Fatalf("expected decimal cell to parse as 25, got %v", r.TotalTimeMinutes)
	}
}

func TestParse_BadOrMissingTimeDegradesToNil(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c.All()[2].TotalTimeMinutes != nil {
		t.Fatalf("blank time cell must load as nil")
	}
	if c.All()[3].TotalTimeMinutes != nil {
		t.Fatalf("unparseable time cell must load as nil, not fault")
	}
}

func TestParse_TimeOutOfRangeDegradesToNil(t *testing.T) {
	src := "TranslatedRecipeName,TotalTimeInMins\n" +
		"Huge,1e300\n" +
		"Negative,-40\n" +
		"Infinite,Inf\n"
	c, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, r := range c.All() {
		if r.TotalTimeMinutes != nil {
			t.Fatalf("%s: out-of-range time cell must load as nil, got %d", r.Name, *r.TotalTimeMinutes)
		}
	}
}

func TestParse_TimeNeverNegativeAfterLoad(t *testing.T) {
	src := "TranslatedRecipeName,TotalTimeInMins\n" +
		"A,40\nB,1e300\nC,-1\nD,soon\nE,\n"
	c, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, r := range c.All() {
		if r.TotalTimeMinutes != nil && *r.TotalTimeMinutes < 0 {
			t.Fatalf("%s: loaded a negative time %d", r.Name, *r.TotalTimeMinutes)
		}
	}
}

func TestParse_MissingOptionalColumns(t *testing.T) {
	src := "TranslatedRecipeName,TranslatedIngredients\nDal,\"lentils, salt\"\n"
	c, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("dataset without optional columns must load: %v", err)
	}
	r := c.All()[0]
	if r.Name != "Dal" || r.Cuisine != "" || r.TotalTimeMinutes != nil {
		t.Fatalf("missing columns must degrade to empty fields: %+v", r)
	}
}

func TestParse_ColumnOrderIrrelevant(t *testing.T) {
	src := "Cuisine,TranslatedRecipeName\nThai,Tom Yum\n"
	c, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if r := c.All()[0]; r.Name != "Tom Yum" || r.Cuisine != "Thai" {
		t.Fatalf("header-driven mapping broken: %+v", r)
	}
}

func TestFacets_SortedDistinct(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got, want := c.Cuisines(), []string{"Indian", "Thai"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("cuisines: expected %v, got %v", want, got)
	}
	if got, want := c.Diets(), []string{"Vegetarian"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("diets: expected %v, got %v", want, got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 recipes, got %d", c.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatalf("expected an error for a missing dataset file")
	}
}

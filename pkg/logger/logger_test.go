package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_ServiceFieldOnEveryEvent(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf, Service: "recipe-roulette"})

	log.Info().Msg("first")
	log.Warn().Msg("second")

	out := buf.String()
	if n := strings.Count(out, `"service":"recipe-roulette"`); n != 2 {
		t.Fatalf("want service field on 2 events, got %d in %q", n, out)
	}
}

func TestInit_NoServiceFieldWhenUnset(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf})

	log.Info().Msg("hello")

	if strings.Contains(buf.String(), `"service"`) {
		t.Fatalf("unexpected service field in %q", buf.String())
	}
}

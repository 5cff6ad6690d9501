package provider

import (
	"context"
	"strings"
	"testing"
)

func TestSearchLink_EmbedsQuery(t *testing.T) {
	got := SearchLink("What is the capital of France?")

	if !strings.Contains(got, "Sorry, I couldn't find an answer.") {
		t.Errorf("expected apology, got %q", got)
	}
	if !strings.Contains(got, "https://www.google.com/search?q=What+is+the+capital+of+France%3F") {
		t.Errorf("expected escaped search link, got %q", got)
	}
}

func TestFallback_NeverFails(t *testing.T) {
	for _, q := range []string{"", "anything", "?!.", "ünïcødé"} {
		answer, ok, err := Fallback{}.Query(context.Background(), q)
		if err != nil {
			t.Fatalf("fallback must never error, got %v for %q", err, q)
		}
		if !ok || answer == "" {
			t.Errorf("fallback must always answer, got ok=%v answer=%q for %q", ok, answer, q)
		}
	}
}

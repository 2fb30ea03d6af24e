package model

import (
	"reflect"
	"testing"
)

func TestNormalizedTitle(t *testing.T) {
	article := Article{Title: "  Breaking NEWS Today "}
	if got := article.NormalizedTitle(); got != "breaking news today" {
		t.Errorf("NormalizedTitle() = %q", got)
	}
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	input := []Article{
		{Title: "Budget passed", URL: "https://a.example/1"},
		{Title: "Monsoon update", URL: "https://a.example/2"},
		{Title: " budget PASSED ", URL: "https://b.example/1"},
		{Title: "", URL: "https://a.example/3"},
		{Title: "Monsoon update", URL: "https://c.example/2"},
	}

	got := Dedupe(input)
	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}
	// First-seen wins: the URLs prove which duplicates survived.
	if got[0].URL != "https://a.example/1" || got[1].URL != "https://a.example/2" {
		t.Errorf("wrong survivors: %+v", got)
	}
}

func TestDedupeIsIdempotent(t *testing.T) {
	input := []Article{
		{Title: "one"}, {Title: "two"}, {Title: "ONE"}, {Title: "three"}, {Title: "two"},
	}

	once := Dedupe(input)
	twice := Dedupe(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Dedupe not idempotent: %v vs %v", once, twice)
	}
	if len(once) > len(input) {
		t.Errorf("Dedupe grew the slice: %d > %d", len(once), len(input))
	}

	seen := map[string]bool{}
	for _, article := range once {
		title := article.NormalizedTitle()
		if seen[title] {
			t.Errorf("duplicate title %q in output", title)
		}
		seen[title] = true
	}
}

func TestDedupeEmptyInput(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %v, want empty", got)
	}
}

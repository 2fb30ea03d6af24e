package classify

import (
	"testing"

	"anoa.com/newshub/internal/model"
)

func article(title, description string) model.Article {
	return model.Article{Title: title, Description: description}
}

func TestMatchCountsKeywordHits(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		article  model.Article
		category string
		want     int
	}{
		{
			name:     "multiple sports keywords",
			article:  article("India wins cricket match", "a famous victory for the team"),
			category: "sports",
			want:     5, // cricket, match, team, victory, and "win" inside "wins"
		},
		{
			name:     "no hits",
			article:  article("Monsoon arrives early", "rainfall across the coast"),
			category: "business",
			want:     0,
		},
		{
			name:     "unknown category",
			article:  article("Anything", "at all"),
			category: "gardening",
			want:     0,
		},
		{
			name:     "case insensitive",
			article:  article("SENSEX Rallies", "BANKING stocks lead"),
			category: "business",
			want:     3, // sensex, banking, stock
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Match(tt.article, tt.category); got != tt.want {
				t.Errorf("Match() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFilterRanksMatchesFirstAndBackfills(t *testing.T) {
	c := NewClassifier()

	batch := []model.Article{
		article("Monsoon update", "rainfall forecast"),
		article("Cricket world cup final", "the match every fan waited for"),
		article("Recipe of the day", "paneer butter masala"),
		article("IPL auction results", "every team spent big on players"),
		article("Weekend travel ideas", "hill stations nearby"),
		article("Book review", "a quiet novel"),
		article("Gallery opening", "new exhibition downtown"),
		article("Concert tonight", "doors at eight"),
		article("Crossword answers", "for yesterday's puzzle"),
		article("Local market hours", "festive schedule"),
	}

	got := c.Filter(batch, "sports", 5)
	if len(got) != 5 {
		t.Fatalf("got %d articles, want 5", len(got))
	}

	// The IPL article has more hit counts than the cup final, so it ranks
	// first; both matches precede backfill.
	if got[0].Title != "IPL auction results" {
		t.Errorf("first = %q, want the strongest match first", got[0].Title)
	}
	if got[1].Title != "Cricket world cup final" {
		t.Errorf("second = %q, want the other match second", got[1].Title)
	}
	if got[0].Category != "sports" {
		t.Errorf("matched article category = %q, want sports", got[0].Category)
	}
	// Backfill preserves input order.
	if got[2].Title != "Monsoon update" {
		t.Errorf("third = %q, want first non-match as backfill", got[2].Title)
	}
}

func TestFilterUnknownCategoryReturnsFirstN(t *testing.T) {
	c := NewClassifier()
	batch := []model.Article{
		article("one", ""), article("two", ""), article("three", ""),
	}
	got := c.Filter(batch, "gardening", 2)
	if len(got) != 2 || got[0].Title != "one" || got[1].Title != "two" {
		t.Errorf("got %v, want the first two articles unchanged", got)
	}
}

func TestFilterLimitLargerThanInput(t *testing.T) {
	c := NewClassifier()
	batch := []model.Article{article("cricket news", "match report")}
	got := c.Filter(batch, "sports", 8)
	if len(got) != 1 {
		t.Errorf("got %d articles, want 1", len(got))
	}
}

func TestValidate(t *testing.T) {
	if err := NewClassifier().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	broken := &Classifier{keywords: map[string][]string{"sports": {}}}
	if err := broken.Validate(); err == nil {
		t.Error("Validate() should reject an empty keyword set")
	}
}

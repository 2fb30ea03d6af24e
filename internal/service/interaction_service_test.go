package service

import (
	"context"
	"testing"

	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/internal/repository"
)

type fakeInteractionRepo struct {
	interactions []*model.UserInteraction
	preferences  map[string]*model.UserPreference
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{preferences: map[string]*model.UserPreference{}}
}

func (r *fakeInteractionRepo) Create(_ context.Context, interaction *model.UserInteraction) error {
	r.interactions = append(r.interactions, interaction)
	return nil
}

func (r *fakeInteractionRepo) AggregateByCategory(_ context.Context, userID string) ([]repository.CategoryAggregate, error) {
	type bucket struct {
		clicks    int64
		totalTime float64
	}
	buckets := map[string]*bucket{}
	for _, interaction := range r.interactions {
		if interaction.UserID != userID || interaction.Action != "click" {
			continue
		}
		b, ok := buckets[interaction.Category]
		if !ok {
			b = &bucket{}
			buckets[interaction.Category] = b
		}
		b.clicks++
		b.totalTime += interaction.ReadingTime
	}

	var rows []repository.CategoryAggregate
	for category, b := range buckets {
		rows = append(rows, repository.CategoryAggregate{
			Category:       category,
			Clicks:         b.clicks,
			AvgReadingTime: b.totalTime / float64(b.clicks),
		})
	}
	return rows, nil
}

func (r *fakeInteractionRepo) SavePreference(_ context.Context, preference *model.UserPreference) error {
	copied := *preference
	r.preferences[preference.UserID] = &copied
	return nil
}

func (r *fakeInteractionRepo) FindPreference(_ context.Context, userID string) (*model.UserPreference, error) {
	preference, ok := r.preferences[userID]
	if !ok {
		return nil, nil
	}
	copied := *preference
	return &copied, nil
}

func TestTrackComputesCategoryScores(t *testing.T) {
	ctx := context.Background()
	repo := newFakeInteractionRepo()
	svc := NewInteractionService(repo)

	clicks := []TrackInteractionInput{
		{ArticleTitle: "a", Category: "sports", Action: "click", ReadingTime: 30},
		{ArticleTitle: "b", Category: "sports", Action: "click", ReadingTime: 10},
		{ArticleTitle: "c", Category: "business", Action: "click", ReadingTime: 50},
		{ArticleTitle: "d", Category: "entertainment", Action: "view"},
	}
	for _, input := range clicks {
		if err := svc.Track(ctx, "alice", input); err != nil {
			t.Fatalf("Track: %v", err)
		}
	}

	scores, err := svc.CategoryScores(ctx, "alice")
	if err != nil {
		t.Fatalf("CategoryScores: %v", err)
	}
	// sports: 2 clicks + avg 20s * 0.1 = 4.0; business: 1 + 5.0 = 6.0.
	if scores["sports"] != 4.0 {
		t.Errorf("sports score = %v, want 4.0", scores["sports"])
	}
	if scores["business"] != 6.0 {
		t.Errorf("business score = %v, want 6.0", scores["business"])
	}
	// Views carry no signal.
	if _, ok := scores["entertainment"]; ok {
		t.Error("view-only category should have no score")
	}
}

func TestRecommendedCategoriesDefaultsForNewUsers(t *testing.T) {
	ctx := context.Background()
	svc := NewInteractionService(newFakeInteractionRepo())

	categories, err := svc.RecommendedCategories(ctx, "nobody", 3)
	if err != nil {
		t.Fatalf("RecommendedCategories: %v", err)
	}
	if len(categories) != 3 || categories[0] != "india" {
		t.Errorf("got %v, want the default category list", categories)
	}
}

func TestRecommendedCategoriesSortedByScore(t *testing.T) {
	ctx := context.Background()
	repo := newFakeInteractionRepo()
	svc := NewInteractionService(repo)

	inputs := []TrackInteractionInput{
		{ArticleTitle: "a", Category: "technology", Action: "click", ReadingTime: 120},
		{ArticleTitle: "b", Category: "sports", Action: "click", ReadingTime: 5},
		{ArticleTitle: "c", Category: "technology", Action: "click", ReadingTime: 60},
	}
	for _, input := range inputs {
		if err := svc.Track(ctx, "bob", input); err != nil {
			t.Fatalf("Track: %v", err)
		}
	}

	categories, err := svc.RecommendedCategories(ctx, "bob", 2)
	if err != nil {
		t.Fatalf("RecommendedCategories: %v", err)
	}
	if len(categories) != 2 || categories[0] != "technology" || categories[1] != "sports" {
		t.Errorf("got %v, want [technology sports]", categories)
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/internal/repository"
	"anoa.com/newshub/pkg/apperror"
)

// Scoring weights for the category preference rollup: every click counts
// fully, reading time contributes a tenth of its average in seconds.
const (
	clickWeight       = 1.0
	readingTimeWeight = 0.1
)

// defaultCategories are suggested to users with no interaction history yet.
var defaultCategories = []string{"india", "trending", "technology"}

type TrackInteractionInput struct {
	ArticleTitle string  `json:"article_title" binding:"required"`
	ArticleURL   string  `json:"article_url"`
	Category     string  `json:"category" binding:"required"`
	Action       string  `json:"action" binding:"required,oneof=click view dismiss"`
	ReadingTime  float64 `json:"reading_time" binding:"gte=0"`
}

type InteractionService interface {
	Track(ctx context.Context, userID string, input TrackInteractionInput) error
	CategoryScores(ctx context.Context, userID string) (map[string]float64, error)
	RecommendedCategories(ctx context.Context, userID string, limit int) ([]string, error)
}

type interactionService struct {
	repo repository.InteractionRepository
	now  func() time.Time
}

func NewInteractionService(repo repository.InteractionRepository) InteractionService {
	return &interactionService{repo: repo, now: time.Now}
}

// Track records the interaction and refreshes the stored per-category
// preference scores for the user.
func (s *interactionService) Track(ctx context.Context, userID string, input TrackInteractionInput) error {
	interaction := &model.UserInteraction{
		UserID:       userID,
		ArticleTitle: input.ArticleTitle,
		ArticleURL:   input.ArticleURL,
		Category:     input.Category,
		Action:       input.Action,
		ReadingTime:  input.ReadingTime,
	}
	if err := s.repo.Create(ctx, interaction); err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}

	scores, err := s.computeScores(ctx, userID)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	preference := &model.UserPreference{
		UserID:         userID,
		CategoryScores: string(encoded),
		LastUpdated:    s.now(),
	}
	if err := s.repo.SavePreference(ctx, preference); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// CategoryScores returns the stored rollup, recomputing when no snapshot
// exists yet.
func (s *interactionService) CategoryScores(ctx context.Context, userID string) (map[string]float64, error) {
	preference, err := s.repo.FindPreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	if preference == nil {
		return s.computeScores(ctx, userID)
	}

	scores := map[string]float64{}
	if preference.CategoryScores != "" {
		if err := json.Unmarshal([]byte(preference.CategoryScores), &scores); err != nil {
			return nil, fmt.Errorf("%w: corrupt preference snapshot for %s", apperror.ErrInternal, userID)
		}
	}
	return scores, nil
}

func (s *interactionService) RecommendedCategories(ctx context.Context, userID string, limit int) ([]string, error) {
	scores, err := s.CategoryScores(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		if limit > 0 && limit < len(defaultCategories) {
			return defaultCategories[:limit], nil
		}
		return defaultCategories, nil
	}

	type ranked struct {
		category string
		score    float64
	}
	order := make([]ranked, 0, len(scores))
	for category, score := range scores {
		order = append(order, ranked{category, score})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].score != order[j].score {
			return order[i].score > order[j].score
		}
		return order[i].category < order[j].category
	})

	categories := make([]string, 0, len(order))
	for _, item := range order {
		categories = append(categories, item.category)
		if limit > 0 && len(categories) == limit {
			break
		}
	}
	return categories, nil
}

func (s *interactionService) computeScores(ctx context.Context, userID string) (map[string]float64, error) {
	rows, err := s.repo.AggregateByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregate interactions: %w", err)
	}

	scores := make(map[string]float64, len(rows))
	for _, row := range rows {
		score := float64(row.Clicks)*clickWeight + row.AvgReadingTime*readingTimeWeight
		scores[row.Category] = math.Round(score*100) / 100
	}
	return scores, nil
}

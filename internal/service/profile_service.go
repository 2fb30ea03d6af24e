package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/internal/repository"
)

const (
	defaultTopicWeight = 1.0
	learningRate       = 0.5
	readHistoryCap     = 100
)

// relatedTopics expands a main interest into its neighboring vocabulary so
// the profile can learn from articles that never name the main topic.
var relatedTopics = map[string][]string{
	"ai":            {"artificial intelligence", "machine learning", "deep learning", "nlp", "neural networks"},
	"cricket":       {"sports", "football", "ipl", "match", "cricket", "batsman", "bowler"},
	"tech":          {"gadgets", "innovation", "startups", "technology", "software", "hardware"},
	"finance":       {"stocks", "economy", "investment", "market", "trading", "cryptocurrency"},
	"politics":      {"government", "elections", "policy", "parliament", "democracy"},
	"health":        {"medical", "healthcare", "medicine", "hospital", "doctor"},
	"science":       {"research", "discovery", "experiment", "scientific", "study"},
	"entertainment": {"movie", "music", "celebrity", "film", "actor", "actress"},
}

// Recommendation boosts mirror the article scorer's signals but weighted for
// the personal ranking, where interest weights dominate.
var (
	profileRegionalKeywords = []string{"india", "indian", "delhi", "mumbai", "bangalore", "modi", "rupee", "parliament"}
	profileTechKeywords     = []string{"technology", "ai", "startup", "innovation", "global", "international", "climate", "economy"}
	profileNoiseKeywords    = []string{"celebrity", "bollywood", "gossip", "viral", "scandal"}
	profileQualitySources   = []string{"times", "hindu", "economic", "mint", "wire", "scroll", "firstpost"}
)

// Profile is the decoded view of a stored user profile.
type Profile struct {
	UserID      string             `json:"user_id"`
	Interests   map[string]float64 `json:"interests"`
	ReadHistory []model.ReadEvent  `json:"read_history"`
	LastUpdated time.Time          `json:"last_updated"`
}

// TopInterest is one topic-weight pair of the profile summary.
type TopInterest struct {
	Topic  string  `json:"topic"`
	Weight float64 `json:"weight"`
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	SetInterests(ctx context.Context, userID string, topics []string) (*Profile, error)
	LearnFromArticle(ctx context.Context, userID string, article model.Article) (*Profile, error)
	Recommend(ctx context.Context, userID string, articles []model.Article, limit int) ([]model.Article, error)
	TopInterests(ctx context.Context, userID string, limit int) ([]TopInterest, error)
}

type profileService struct {
	repo repository.ProfileRepository
	now  func() time.Time
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo, now: time.Now}
}

// GetProfile loads a profile, creating a default one on first access. The
// default carries the full topic vocabulary at weight zero so learning has
// slots to fill.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	stored, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	profile := &Profile{UserID: userID, Interests: map[string]float64{}}
	if stored != nil {
		if stored.Interests != "" {
			if err := json.Unmarshal([]byte(stored.Interests), &profile.Interests); err != nil {
				return nil, fmt.Errorf("decode interests for %s: %w", userID, err)
			}
		}
		if stored.ReadHistory != "" {
			if err := json.Unmarshal([]byte(stored.ReadHistory), &profile.ReadHistory); err != nil {
				return nil, fmt.Errorf("decode read history for %s: %w", userID, err)
			}
		}
		profile.LastUpdated = stored.LastUpdated
	}

	ensureVocabulary(profile.Interests)
	if stored == nil {
		if err := s.save(ctx, profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// SetInterests fully replaces the weight map: every listed topic gets the
// default weight, everything else resets to zero. Calling it twice with the
// same topics yields the same map.
func (s *profileService) SetInterests(ctx context.Context, userID string, topics []string) (*Profile, error) {
	profile := &Profile{UserID: userID, Interests: map[string]float64{}}

	stored, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if stored != nil && stored.ReadHistory != "" {
		if err := json.Unmarshal([]byte(stored.ReadHistory), &profile.ReadHistory); err != nil {
			return nil, fmt.Errorf("decode read history for %s: %w", userID, err)
		}
	}

	for _, topic := range topics {
		topic = strings.ToLower(strings.TrimSpace(topic))
		if topic != "" {
			profile.Interests[topic] = defaultTopicWeight
		}
	}
	ensureVocabulary(profile.Interests)

	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// LearnFromArticle bumps the weight of every topic found in the article, and
// of every related topic that also appears, by the learning rate. Repeated
// reads of the same article keep raising the matched weights.
func (s *profileService) LearnFromArticle(ctx context.Context, userID string, article model.Article) (*Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	content := strings.ToLower(article.Title + " " + article.Description)

	expansions := map[string]bool{}
	for _, related := range relatedTopics {
		for _, topic := range related {
			expansions[topic] = true
		}
	}

	for topic, related := range relatedTopics {
		if !strings.Contains(content, topic) {
			continue
		}
		profile.Interests[topic] += learningRate
		for _, expansion := range related {
			if strings.Contains(content, expansion) {
				profile.Interests[expansion] += learningRate
			}
		}
	}

	// Custom interests the user set directly learn too; expansions were
	// already handled above.
	for topic := range profile.Interests {
		if _, isMain := relatedTopics[topic]; isMain || expansions[topic] {
			continue
		}
		if strings.Contains(content, topic) {
			profile.Interests[topic] += learningRate
		}
	}

	profile.ReadHistory = append(profile.ReadHistory, model.ReadEvent{
		Title:       article.Title,
		URL:         article.URL,
		PublishedAt: article.PublishedAt,
		ReadAt:      s.now().Format(time.RFC3339),
	})
	if len(profile.ReadHistory) > readHistoryCap {
		profile.ReadHistory = profile.ReadHistory[len(profile.ReadHistory)-readHistoryCap:]
	}

	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Recommend re-ranks a page of articles for one user. The score is the sum
// of matching interest weights plus contextual boosts; articles that score
// zero or below are dropped.
func (s *profileService) Recommend(ctx context.Context, userID string, articles []model.Article, limit int) ([]model.Article, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var recommended []model.Article
	for _, article := range articles {
		score := scoreForProfile(profile, article)
		if score <= 0 {
			continue
		}
		article.RelevanceScore = score
		recommended = append(recommended, article)
	}

	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].RelevanceScore > recommended[j].RelevanceScore
	})
	if limit > 0 && len(recommended) > limit {
		recommended = recommended[:limit]
	}
	return recommended, nil
}

func (s *profileService) TopInterests(ctx context.Context, userID string, limit int) ([]TopInterest, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	interests := make([]TopInterest, 0, len(profile.Interests))
	for topic, weight := range profile.Interests {
		interests = append(interests, TopInterest{Topic: topic, Weight: weight})
	}
	sort.Slice(interests, func(i, j int) bool {
		if interests[i].Weight != interests[j].Weight {
			return interests[i].Weight > interests[j].Weight
		}
		return interests[i].Topic < interests[j].Topic
	})
	if limit > 0 && len(interests) > limit {
		interests = interests[:limit]
	}
	return interests, nil
}

func (s *profileService) save(ctx context.Context, profile *Profile) error {
	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return err
	}
	history, err := json.Marshal(profile.ReadHistory)
	if err != nil {
		return err
	}

	profile.LastUpdated = s.now()
	stored := &model.UserProfile{
		UserID:      profile.UserID,
		Interests:   string(interests),
		ReadHistory: string(history),
		LastUpdated: profile.LastUpdated,
	}
	if err := s.repo.Save(ctx, stored); err != nil {
		return fmt.Errorf("save profile for %s: %w", profile.UserID, err)
	}
	return nil
}

func ensureVocabulary(interests map[string]float64) {
	for topic, expansions := range relatedTopics {
		if _, ok := interests[topic]; !ok {
			interests[topic] = 0
		}
		for _, expansion := range expansions {
			if _, ok := interests[expansion]; !ok {
				interests[expansion] = 0
			}
		}
	}
}

func scoreForProfile(profile *Profile, article model.Article) float64 {
	content := strings.ToLower(article.Title + " " + article.Description)
	source := strings.ToLower(article.Source.Name)

	score := 0.0
	for topic, weight := range profile.Interests {
		if strings.Contains(content, topic) {
			score += weight
		}
	}

	for _, keyword := range profileRegionalKeywords {
		if strings.Contains(content, keyword) {
			score += 0.5
		}
	}
	for _, keyword := range profileTechKeywords {
		if strings.Contains(content, keyword) {
			score += 0.4
		}
	}
	for _, keyword := range profileNoiseKeywords {
		if strings.Contains(content, keyword) {
			score -= 1.0
		}
	}
	for _, name := range profileQualitySources {
		if strings.Contains(source, name) {
			score += 1.0
			break
		}
	}
	return score
}

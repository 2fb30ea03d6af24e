// Package rank scores articles with content heuristics so higher-quality,
// more locally relevant reporting sorts ahead of clickbait.
package rank

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"anoa.com/newshub/internal/model"
)

const (
	baseScore        = 5.0
	clickbaitPenalty = 2.0
	qualityBonus     = 0.3
	authorityBonus   = 2.0

	entertainmentThreshold = 2
	entertainmentPenalty   = 1.5

	regionalBonus   = 0.5
	techGlobalBonus = 0.4

	trendingBonus = 2.0
	adjacentBonus = 1.0

	recencyDayBonus    = 1.0
	recencyTwoDayBonus = 0.5

	// QualityFloor is the minimum score an article needs to appear in a
	// prioritized result set.
	QualityFloor = 3.0
)

// Whole-word or phrase patterns; plain substring matching would penalize
// words like "winner" for containing "win".
var clickbaitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`!{2,}`),
	regexp.MustCompile(`(?i)\b(shocking|unbelievable|insane|amazing|mind-blowing|epic)\b`),
	regexp.MustCompile(`(?i)you won'?t believe`),
	regexp.MustCompile(`(?i)\bwhat happened next\b`),
	regexp.MustCompile(`(?i)\bnumber \d+ will\b`),
}

var qualityKeywords = []string{
	"analysis", "report", "study", "research", "investigation",
	"exclusive", "interview", "policy", "economy", "development",
}

var authoritySources = []string{
	"the hindu", "times of india", "hindustan times", "indian express",
	"economic times", "mint", "ndtv", "reuters", "bbc", "the wire",
	"scroll", "firstpost", "press trust of india",
}

var entertainmentKeywords = []string{
	"celebrity", "bollywood", "gossip", "viral", "scandal",
}

var regionalKeywords = []string{
	"india", "indian", "delhi", "mumbai", "bangalore", "modi", "rupee", "parliament",
}

var techGlobalKeywords = []string{
	"technology", "ai", "startup", "innovation", "global", "international", "climate", "economy",
}

// trendingTopics: cricket carries the full bonus. The adjacent sets get a
// smaller one.
var trendingTopics = []string{
	"cricket", "ipl", "world cup", "test match", "t20",
}

var adjacentTopics = [][]string{
	{"isro", "chandrayaan", "space mission"},
	{"election", "budget", "lok sabha"},
	{"sensex", "nifty", "stock market"},
}

// Scorer is stateless apart from the injectable clock.
type Scorer struct {
	now func() time.Time
}

func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// Score combines the heuristic signals into a non-negative score.
func (s *Scorer) Score(article model.Article) float64 {
	text := strings.ToLower(article.Title + " " + article.Description)
	score := baseScore

	for _, pattern := range clickbaitPatterns {
		if pattern.MatchString(article.Title) || pattern.MatchString(article.Description) {
			score -= clickbaitPenalty
		}
	}

	for _, keyword := range qualityKeywords {
		if strings.Contains(text, keyword) {
			score += qualityBonus
		}
	}

	source := strings.ToLower(article.Source.Name + " " + article.Source.ID)
	for _, name := range authoritySources {
		if strings.Contains(source, name) {
			score += authorityBonus
			break
		}
	}

	entertainmentHits := 0
	for _, keyword := range entertainmentKeywords {
		if strings.Contains(text, keyword) {
			entertainmentHits++
		}
	}
	if entertainmentHits > entertainmentThreshold {
		score -= entertainmentPenalty
	}

	for _, keyword := range regionalKeywords {
		if strings.Contains(text, keyword) {
			score += regionalBonus
		}
	}
	for _, keyword := range techGlobalKeywords {
		if strings.Contains(text, keyword) {
			score += techGlobalBonus
		}
	}

	for _, topic := range trendingTopics {
		if strings.Contains(text, topic) {
			score += trendingBonus
			break
		}
	}
	for _, set := range adjacentTopics {
		for _, topic := range set {
			if strings.Contains(text, topic) {
				score += adjacentBonus
				break
			}
		}
	}

	score += s.recencyBonus(article.PublishedAt)

	if score < 0 {
		return 0
	}
	return score
}

// recencyBonus treats a missing or unparsable timestamp as recent. Articles
// with bad metadata should not be buried for it.
func (s *Scorer) recencyBonus(publishedAt string) float64 {
	if publishedAt == "" {
		return recencyDayBonus
	}
	published, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return recencyDayBonus
	}
	age := s.now().Sub(published)
	switch {
	case age < 24*time.Hour:
		return recencyDayBonus
	case age < 48*time.Hour:
		return recencyTwoDayBonus
	default:
		return 0
	}
}

// Rank annotates every article with its score and sorts descending. Order is
// stable for equal scores.
func (s *Scorer) Rank(articles []model.Article) []model.Article {
	ranked := make([]model.Article, len(articles))
	copy(ranked, articles)
	for i := range ranked {
		ranked[i].RelevanceScore = s.Score(ranked[i])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})
	return ranked
}

// Prioritize ranks and then drops articles missing a title or description
// and articles under the quality floor. The unfiltered ranking is what gets
// cached; this view is for user-facing prioritized sets.
func (s *Scorer) Prioritize(articles []model.Article, limit int) []model.Article {
	var eligible []model.Article
	for _, article := range articles {
		if article.Title == "" || article.Description == "" {
			continue
		}
		eligible = append(eligible, article)
	}

	ranked := s.Rank(eligible)
	result := make([]model.Article, 0, limit)
	for _, article := range ranked {
		if article.RelevanceScore < QualityFloor {
			break
		}
		result = append(result, article)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

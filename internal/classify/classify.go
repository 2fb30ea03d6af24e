// Package classify buckets articles into news categories by keyword hit
// counts over the article text.
package classify

import (
	"fmt"
	"sort"
	"strings"

	"anoa.com/newshub/internal/model"
)

var categoryKeywords = map[string][]string{
	"home": {"india", "news", "latest", "breaking", "today"},
	"business": {
		"business", "economy", "market", "stock", "rupee", "gdp",
		"inflation", "startup", "company", "revenue", "profit",
		"investment", "finance", "banking", "rbi", "sensex", "nifty",
	},
	"politics": {
		"politics", "modi", "bjp", "congress", "parliament", "election",
		"government", "policy", "minister", "lok sabha", "rajya sabha",
		"democracy", "vote", "campaign",
	},
	"sports": {
		"cricket", "football", "hockey", "olympics", "match", "tournament",
		"player", "team", "score", "win", "championship", "ipl", "fifa",
		"sports", "game", "victory",
	},
	"technology": {
		"technology", "ai", "artificial intelligence", "software", "app",
		"digital", "internet", "mobile", "computer", "innovation",
		"tech", "startup", "coding", "programming",
	},
	"startups": {
		"startup", "entrepreneur", "funding", "venture capital", "unicorn",
		"ipo", "investment", "business", "innovation", "tech startup",
		"founder", "valuation",
	},
	"entertainment": {
		"bollywood", "movie", "film", "actor", "actress", "celebrity",
		"entertainment", "music", "concert", "show", "television",
		"web series", "netflix",
	},
	"mobile": {
		"mobile", "smartphone", "android", "iphone", "app", "5g",
		"telecom", "jio", "airtel", "vi", "phone", "device",
	},
	"international": {
		"international", "world", "global", "foreign", "usa", "china",
		"pakistan", "europe", "diplomacy", "trade", "war", "peace",
	},
	"automobile": {
		"car", "automobile", "vehicle", "auto", "bike", "motorcycle",
		"electric vehicle", "ev", "tata", "mahindra", "maruti", "honda",
	},
	"miscellaneous": {
		"health", "education", "environment", "weather", "science",
		"research", "culture", "society", "lifestyle",
	},
}

// Classifier scores articles against per-category keyword sets.
type Classifier struct {
	keywords map[string][]string
}

func NewClassifier() *Classifier {
	return &Classifier{keywords: categoryKeywords}
}

// Validate checks the keyword table for empty sets or blank keywords. A bad
// table is a startup error, not something to degrade around at request time.
func (c *Classifier) Validate() error {
	if len(c.keywords) == 0 {
		return fmt.Errorf("classify: empty keyword table")
	}
	for category, keywords := range c.keywords {
		if len(keywords) == 0 {
			return fmt.Errorf("classify: category %q has no keywords", category)
		}
		for _, keyword := range keywords {
			if strings.TrimSpace(keyword) == "" {
				return fmt.Errorf("classify: category %q has a blank keyword", category)
			}
		}
	}
	return nil
}

func (c *Classifier) Known(category string) bool {
	_, ok := c.keywords[strings.ToLower(category)]
	return ok
}

func (c *Classifier) Categories() []string {
	categories := make([]string, 0, len(c.keywords))
	for category := range c.keywords {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Match counts how many of the category's keywords occur in the article's
// lowercased title, description and content. Unknown categories match zero.
func (c *Classifier) Match(article model.Article, category string) int {
	keywords, ok := c.keywords[strings.ToLower(category)]
	if !ok {
		return 0
	}
	text := article.Text()
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			hits++
		}
	}
	return hits
}

// Filter returns up to limit articles for the category: keyword matches
// first, sorted by hit count descending, then non-matching articles in
// input order to backfill a sparse page. Unknown categories return the
// first limit articles unchanged.
func (c *Classifier) Filter(articles []model.Article, category string, limit int) []model.Article {
	category = strings.ToLower(category)
	if limit <= 0 || limit > len(articles) {
		limit = len(articles)
	}
	if !c.Known(category) {
		return articles[:limit]
	}

	type scored struct {
		article model.Article
		hits    int
		order   int
	}
	var matched, rest []scored
	for i, article := range articles {
		hits := c.Match(article, category)
		item := scored{article: article, hits: hits, order: i}
		if hits > 0 {
			item.article.Category = category
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}

	// Stable on input order so equal hit counts keep provider priority.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].hits > matched[j].hits
	})

	result := make([]model.Article, 0, limit)
	for _, item := range matched {
		if len(result) == limit {
			return result
		}
		result = append(result, item.article)
	}
	for _, item := range rest {
		if len(result) == limit {
			break
		}
		result = append(result, item.article)
	}
	return result
}

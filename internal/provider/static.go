package provider

import (
	"context"
	"strings"
	"time"

	"anoa.com/newshub/internal/model"
)

// StaticProvider serves an embedded dataset so the API never returns an empty
// page even when every upstream source is down. Articles are stamped with
// synthetic recent timestamps at request time and flagged Fallback.
type StaticProvider struct {
	now func() time.Time
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{now: time.Now}
}

func (p *StaticProvider) Name() string { return "static" }

func (p *StaticProvider) Configured() bool { return true }

type staticArticle struct {
	title       string
	description string
	url         string
	source      string
	author      string
	ageHours    float64
}

var generalFallback = []staticArticle{
	{
		title:       "Breaking: PM Modi Announces Major Digital India Initiative",
		description: "Prime Minister Narendra Modi unveiled a comprehensive digital transformation program aimed at making India a global technology leader.",
		url:         "https://timesofindia.indiatimes.com/india/digital-india",
		source:      "Times of India",
		author:      "Political Correspondent",
		ageHours:    1,
	},
	{
		title:       "Indian Cricket Team Wins Historic Series Against Australia",
		description: "Team India secured a remarkable victory in the Test series, marking their best performance on Australian soil in decades.",
		url:         "https://www.espncricinfo.com/series/india-tour-of-australia",
		source:      "ESPN Cricinfo",
		author:      "Cricket Correspondent",
		ageHours:    3,
	},
	{
		title:       "Sensex Hits All-Time High as Indian Economy Shows Strong Growth",
		description: "The BSE Sensex reached a historic milestone crossing 75,000 points driven by robust performance in banking and IT sectors.",
		url:         "https://economictimes.indiatimes.com/markets/stocks/news",
		source:      "Economic Times",
		author:      "Market Reporter",
		ageHours:    5,
	},
	{
		title:       "ISRO Successfully Launches Chandrayaan-4 Mission to Moon",
		description: "India's space agency achieved another milestone with the successful launch of its fourth lunar mission, showcasing indigenous technology.",
		url:         "https://www.ndtv.com/india-news/isro-chandrayaan-mission",
		source:      "NDTV",
		author:      "Science Reporter",
		ageHours:    7,
	},
	{
		title:       "Healthcare Innovation: New Treatment Shows Promise",
		description: "Medical researchers have developed a new treatment approach that shows significant promise in clinical trials.",
		url:         "https://www.medicalnewstoday.com/articles/healthcare-innovation-india",
		source:      "Medical Journal",
		author:      "Health Reporter",
		ageHours:    10,
	},
	{
		title:       "Space Exploration: Mission to Mars Gets Green Light",
		description: "Space agency announces approval for ambitious Mars exploration mission scheduled for next year.",
		url:         "https://www.space.com/india-mars-mission-announcement",
		source:      "Space Today",
		author:      "Space Correspondent",
		ageHours:    12,
	},
	{
		title:       "Entertainment: Blockbuster Movie Breaks Box Office Records",
		description: "The latest superhero movie has shattered previous box office records in its opening weekend.",
		url:         "https://www.hollywoodreporter.com/movies/movie-news/blockbuster-box-office-records",
		source:      "Entertainment Weekly",
		author:      "Film Critic",
		ageHours:    14,
	},
	{
		title:       "Education: Universities Embrace Digital Learning Revolution",
		description: "Higher education institutions are rapidly adopting new digital technologies to enhance student learning experiences.",
		url:         "https://www.educationtimes.com/universities-digital-learning-revolution",
		source:      "Education Today",
		author:      "Education Reporter",
		ageHours:    16,
	},
	{
		title:       "Technology: Quantum Computing Milestone Achieved",
		description: "Scientists have achieved a significant breakthrough in quantum computing that could revolutionize data processing.",
		url:         "https://www.sciencedaily.com/releases/quantum-computing-breakthrough.htm",
		source:      "Science Daily",
		author:      "Science Writer",
		ageHours:    18,
	},
	{
		title:       "Business: Startup Unicorn Valued at $10 Billion",
		description: "A rapidly growing startup has achieved unicorn status with a valuation exceeding $10 billion in latest funding round.",
		url:         "https://yourstory.com/startup-unicorn-billion-valuation-funding",
		source:      "YourStory",
		author:      "Business Reporter",
		ageHours:    20,
	},
}

var categoryFallback = map[string][]staticArticle{
	"business": {
		{
			title:       "Indian Stock Market Hits New High as Sensex Crosses 75,000",
			description: "The BSE Sensex reached a historic milestone today, crossing 75,000 points driven by strong performance in banking and IT sectors.",
			url:         "https://economictimes.indiatimes.com/markets/stocks/news/sensex-hits-new-high.cms",
			source:      "Economic Times",
			author:      "Market Reporter",
			ageHours:    2,
		},
		{
			title:       "RBI Announces New Digital Currency Pilot Program",
			description: "Reserve Bank of India launches expanded digital rupee trials across major cities, targeting retail transactions.",
			url:         "https://www.business-standard.com/economy/news/rbi-digital-currency-pilot-program.html",
			source:      "Business Standard",
			author:      "Banking Correspondent",
			ageHours:    5,
		},
		{
			title:       "Startup Funding in India Reaches $12 Billion This Year",
			description: "Indian startups raised record funding this year, with fintech and edtech leading the investment surge.",
			url:         "https://www.livemint.com/companies/start-ups/startup-funding-india.html",
			source:      "Mint",
			author:      "Startup Reporter",
			ageHours:    8,
		},
	},
	"sports": {
		{
			title:       "India Defeats Australia by 6 Wickets in Melbourne Test",
			description: "Virat Kohli's century leads India to a commanding victory in the Boxing Day Test at MCG.",
			url:         "https://www.cricbuzz.com/cricket-news/india-defeats-australia-melbourne-test",
			source:      "Cricbuzz",
			author:      "Cricket Reporter",
			ageHours:    2,
		},
		{
			title:       "IPL Auction: Mumbai Indians Acquire Star Players",
			description: "Mumbai Indians make strategic picks in the IPL mega auction, focusing on young Indian talent.",
			url:         "https://www.espncricinfo.com/story/ipl-auction-mumbai-indians",
			source:      "ESPN Cricinfo",
			author:      "IPL Correspondent",
			ageHours:    5,
		},
		{
			title:       "Indian Football Team Qualifies for Asian Cup Finals",
			description: "Blue Tigers secure their spot in the Asian Cup final after defeating South Korea 2-1.",
			url:         "https://www.goal.com/en-in/news/india-football-asian-cup-finals",
			source:      "Goal.com",
			author:      "Football Reporter",
			ageHours:    8,
		},
	},
	"entertainment": {
		{
			title:       "Shah Rukh Khan's New Film Breaks Box Office Records",
			description: "The Bollywood superstar's latest release earns ₹100 crores in its opening weekend.",
			url:         "https://www.bollywoodhungama.com/news/bollywood/shah-rukh-khan-film-box-office",
			source:      "Bollywood Hungama",
			author:      "Entertainment Reporter",
			ageHours:    2,
		},
		{
			title:       "Netflix Announces 10 New Indian Original Series",
			description: "Streaming giant reveals ambitious slate of regional content across multiple Indian languages.",
			url:         "https://variety.com/tv/news/netflix-indian-original-series",
			source:      "Variety India",
			author:      "Streaming Correspondent",
			ageHours:    5,
		},
		{
			title:       "Cannes Film Festival to Feature Indian Cinema Section",
			description: "Prestigious film festival announces dedicated showcase for contemporary Indian filmmakers.",
			url:         "https://www.filmcompanion.in/news/cannes-film-festival-indian-cinema",
			source:      "Film Companion",
			author:      "Film Critic",
			ageHours:    8,
		},
	},
	"technology": {
		{
			title:       "Indian AI Startup Raises $50 Million Series B Funding",
			description: "Bangalore-based artificial intelligence company secures major funding round from global investors.",
			url:         "https://techcrunch.com/indian-ai-startup-funding-series-b/",
			source:      "TechCrunch India",
			author:      "Tech Reporter",
			ageHours:    2,
		},
		{
			title:       "India Launches World's Largest 5G Network Rollout",
			description: "Government announces nationwide 5G deployment covering 1000+ cities by end of next year.",
			url:         "https://www.gadgets360.com/telecom/news/india-5g-network-rollout",
			source:      "Gadgets360",
			author:      "Telecom Correspondent",
			ageHours:    5,
		},
		{
			title:       "ISRO Lunar Mission Aims for Permanent Research Station",
			description: "Indian Space Research Organisation's lunar mission aims to establish permanent research station.",
			url:         "https://www.isro.gov.in/chandrayaan-mission-launch-success",
			source:      "Space India",
			author:      "Space Reporter",
			ageHours:    8,
		},
	},
	"politics": {
		{
			title:       "Parliament Passes Digital India Act",
			description: "New legislation aims to regulate digital platforms and protect user privacy rights.",
			url:         "https://www.thehindu.com/news/national/parliament-digital-india-act/article.ece",
			source:      "The Hindu",
			author:      "Political Correspondent",
			ageHours:    2,
		},
		{
			title:       "PM Modi Announces New Infrastructure Development Plan",
			description: "₹10 lakh crore investment approved for roads, rails, and digital infrastructure.",
			url:         "https://timesofindia.indiatimes.com/india/pm-modi-infrastructure-development-plan.cms",
			source:      "Times of India",
			author:      "Government Reporter",
			ageHours:    5,
		},
		{
			title:       "Election Commission Announces Assembly Poll Dates",
			description: "Five state assemblies to go to polls in March, EC announces detailed schedule.",
			url:         "https://indianexpress.com/article/india/election-commission-assembly-poll-dates/",
			source:      "Indian Express",
			author:      "Election Correspondent",
			ageHours:    8,
		},
	},
}

var trendingFallback = []staticArticle{
	{
		title:       "Breaking: India Wins Historic Cricket World Cup Final",
		description: "Team India defeats Australia in a thrilling final match, bringing the World Cup home after years of anticipation.",
		url:         "https://www.espncricinfo.com/series/cricket-world-cup",
		source:      "ESPN Cricinfo",
		author:      "Cricket Correspondent",
		ageHours:    0.5,
	},
	{
		title:       "ISRO Creates History with Successful Mars Mission Landing",
		description: "India becomes the fourth country to successfully land on Mars, showcasing indigenous space technology capabilities.",
		url:         "https://www.ndtv.com/india-news/isro-mars-mission",
		source:      "NDTV",
		author:      "Space Reporter",
		ageHours:    1,
	},
	{
		title:       "Indian Startup Becomes Unicorn with $1 Billion Valuation",
		description: "Bangalore-based fintech startup achieves unicorn status, marking another milestone for India's startup ecosystem.",
		url:         "https://economictimes.indiatimes.com/tech/startups",
		source:      "Economic Times",
		author:      "Startup Reporter",
		ageHours:    2,
	},
	{
		title:       "Parliament Passes Landmark Digital Privacy Bill",
		description: "Lok Sabha approves comprehensive data protection legislation, strengthening digital rights for Indian citizens.",
		url:         "https://timesofindia.indiatimes.com/india/parliament-news",
		source:      "Times of India",
		author:      "Political Correspondent",
		ageHours:    4,
	},
	{
		title:       "Bollywood Film Breaks Box Office Records Worldwide",
		description: "Latest Indian blockbuster achieves unprecedented global success, earning ₹500 crores in opening weekend.",
		url:         "https://www.indiatoday.in/movies/bollywood",
		source:      "India Today",
		author:      "Entertainment Reporter",
		ageHours:    6,
	},
}

func (p *StaticProvider) FetchHeadlines(_ context.Context, category string, pageSize int) ([]model.Article, error) {
	set, ok := categoryFallback[strings.ToLower(category)]
	if !ok {
		set = generalFallback
	}
	return p.build(set, category, pageSize), nil
}

func (p *StaticProvider) Search(_ context.Context, query string, pageSize int) ([]model.Article, error) {
	query = strings.ToLower(query)
	var matched []staticArticle
	for _, article := range generalFallback {
		if strings.Contains(strings.ToLower(article.title), query) ||
			strings.Contains(strings.ToLower(article.description), query) {
			matched = append(matched, article)
		}
	}
	if len(matched) == 0 {
		matched = generalFallback
	}
	return p.build(matched, "", pageSize), nil
}

// Trending returns the curated trending set; there is no upstream analogue in
// the Provider interface so the pipeline calls this directly.
func (p *StaticProvider) Trending(pageSize int) []model.Article {
	return p.build(trendingFallback, "trending", pageSize)
}

func (p *StaticProvider) build(set []staticArticle, category string, pageSize int) []model.Article {
	if pageSize > len(set) || pageSize <= 0 {
		pageSize = len(set)
	}
	now := p.now()
	articles := make([]model.Article, 0, pageSize)
	for _, item := range set[:pageSize] {
		age := time.Duration(item.ageHours * float64(time.Hour))
		articles = append(articles, model.Article{
			Title:       item.title,
			Description: item.description,
			URL:         item.url,
			PublishedAt: now.Add(-age).UTC().Format(time.RFC3339),
			Source:      model.Source{ID: "fallback", Name: item.source},
			Author:      item.author,
			Content:     item.description,
			Category:    category,
			Fallback:    true,
		})
	}
	return articles
}

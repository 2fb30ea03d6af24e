package server

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"anoa.com/newshub/internal/cache"
	"anoa.com/newshub/internal/classify"
	"anoa.com/newshub/internal/config"
	"anoa.com/newshub/internal/handler"
	"anoa.com/newshub/internal/middleware"
	"anoa.com/newshub/internal/provider"
	"anoa.com/newshub/internal/quota"
	"anoa.com/newshub/internal/rank"
	"anoa.com/newshub/internal/repository"
	"anoa.com/newshub/internal/service"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

// NewServer wires the whole pipeline. redisClient may be nil; the cache
// falls back to an in-process store.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	var store cache.Store
	if redisClient != nil {
		store = cache.NewRedisStore(redisClient)
	} else {
		log.Println("redis not configured, using in-memory article cache")
		store = cache.NewMemoryStore()
	}
	articleCache := cache.New(store)

	gnewsTracker := quota.NewTracker(cfg.GNewsDailyLimit)

	// Priority order: NewsAPI first for quality, GNews as the quota-gated
	// search-capable backup, then the NDTV regional API, then public RSS.
	providers := []provider.Provider{
		provider.NewNewsAPIProvider(cfg.NewsAPIKey, cfg.NewsAPIBaseURL, "in", cfg.ProviderTimeout),
		provider.NewGNewsProvider(cfg.GNewsAPIKey, cfg.GNewsBaseURL, "in", cfg.ProviderTimeout),
		provider.NewNDTVProvider(cfg.NDTVBaseURL, cfg.NDTVEnabled, cfg.ProviderTimeout),
		provider.NewRSSProvider(cfg.ProviderTimeout),
	}

	newsService, err := service.NewNewsService(
		providers,
		provider.NewStaticProvider(),
		map[string]*quota.Tracker{"gnews": gnewsTracker},
		articleCache,
		classify.NewClassifier(),
		rank.NewScorer(),
		cfg.MasterCacheTTL,
		cfg.CategoryCacheTTL,
		cfg.PipelineTimeout,
	)
	if err != nil {
		return nil, err
	}
	newsHandler := handler.NewNewsHandler(newsService, cfg.DefaultPageSize, cfg.MaxPageSize)

	profileRepo := repository.NewProfileRepository(db)
	profileService := service.NewProfileService(profileRepo)
	profileHandler := handler.NewProfileHandler(profileService, newsService)

	interactionRepo := repository.NewInteractionRepository(db)
	interactionService := service.NewInteractionService(interactionRepo)
	interactionHandler := handler.NewInteractionHandler(interactionService)

	// Keep the master pool warm so cold category requests rarely pay the
	// full provider-chain latency.
	go refreshWorker(newsService, cfg.MasterCacheTTL)

	router := gin.New()
	setupCORS(router, cfg.AllowedOrigins)
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.Identity())

	api := router.Group("/api")
	{
		news := api.Group("/news")
		{
			news.GET("/category/:category", newsHandler.GetCategory)
			news.GET("/trending", newsHandler.GetTrending)
			news.GET("/search", newsHandler.Search)
			news.POST("/refresh", newsHandler.ForceRefresh)
			news.GET("/cache/status", newsHandler.CacheStatus)
			news.GET("/content", newsHandler.GetContent)
		}

		profile := api.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.POST("", profileHandler.SetInterests)
			profile.POST("/learn", profileHandler.LearnFromArticle)
		}

		api.GET("/recommendations", profileHandler.GetRecommendations)

		interactions := api.Group("/interactions")
		{
			interactions.POST("", interactionHandler.Track)
			interactions.GET("/categories", interactionHandler.GetCategoryScores)
		}
	}

	return &Server{engine: router, cfg: cfg}, nil
}

func (s *Server) Run() error {
	return s.engine.Run(":" + s.cfg.Port)
}

// refreshWorker refreshes the master pool a little before it expires.
func refreshWorker(newsService service.NewsService, masterTTL time.Duration) {
	interval := masterTTL - time.Minute
	if interval <= 0 {
		interval = masterTTL
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := newsService.ForceRefresh(context.Background()); err != nil {
			log.Printf("background refresh failed: %v", err)
		}
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

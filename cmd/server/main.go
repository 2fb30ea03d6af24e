package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"anoa.com/newshub/internal/config"
	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/internal/server"
	"anoa.com/newshub/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	srv, err := server.NewServer(cfg, db, redisClient)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	log.Printf("newshub listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
	if err := srv.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserProfile{},
		&model.UserInteraction{},
		&model.UserPreference{},
	)
}

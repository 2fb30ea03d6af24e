package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile persists one interest model per user. Interests and ReadHistory
// are stored as JSON text columns; the service layer owns their shape.
type UserProfile struct {
	UserID      string    `gorm:"primaryKey" json:"user_id"`
	Interests   string    `gorm:"type:text" json:"-"`
	ReadHistory string    `gorm:"type:text" json:"-"`
	LastUpdated time.Time `json:"last_updated"`
}

// ReadEvent is one entry of a profile's bounded read history.
type ReadEvent struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at,omitempty"`
	ReadAt      string `json:"read_at"`
}

// UserInteraction is one logged click/read event.
type UserInteraction struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string    `gorm:"index" json:"user_id"`
	ArticleTitle string    `json:"article_title"`
	ArticleURL   string    `json:"article_url"`
	Category     string    `json:"category"`
	Action       string    `json:"action"`
	ReadingTime  float64   `json:"reading_time"`
	CreatedAt    time.Time `json:"created_at"`
}

func (i *UserInteraction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// UserPreference caches the per-category scores derived from interactions.
type UserPreference struct {
	UserID         string    `gorm:"primaryKey" json:"user_id"`
	CategoryScores string    `gorm:"type:text" json:"-"`
	LastUpdated    time.Time `json:"last_updated"`
}

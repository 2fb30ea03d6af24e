package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anoa.com/newshub/internal/model"
)

// CategoryAggregate is one row of the per-category click rollup.
type CategoryAggregate struct {
	Category       string
	Clicks         int64
	AvgReadingTime float64
}

type InteractionRepository interface {
	Create(ctx context.Context, interaction *model.UserInteraction) error
	AggregateByCategory(ctx context.Context, userID string) ([]CategoryAggregate, error)
	SavePreference(ctx context.Context, preference *model.UserPreference) error
	FindPreference(ctx context.Context, userID string) (*model.UserPreference, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *model.UserInteraction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

// AggregateByCategory rolls up click interactions per category. Only clicks
// count; views and dismissals carry no preference signal.
func (r *interactionRepository) AggregateByCategory(ctx context.Context, userID string) ([]CategoryAggregate, error) {
	var rows []CategoryAggregate
	err := r.db.WithContext(ctx).
		Model(&model.UserInteraction{}).
		Select("category, COUNT(*) AS clicks, COALESCE(AVG(reading_time), 0) AS avg_reading_time").
		Where("user_id = ? AND action = ?", userID, "click").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interactionRepository) SavePreference(ctx context.Context, preference *model.UserPreference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(preference).Error
}

func (r *interactionRepository) FindPreference(ctx context.Context, userID string) (*model.UserPreference, error) {
	var preference model.UserPreference
	if err := r.db.WithContext(ctx).First(&preference, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preference, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jlin/moodtrack-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultMonthlyGoal = 10

// GetSettings reads the user's settings, creating the defaults on first read.
// There is no separate provisioning step.
func (s *Store) GetSettings(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	settings = models.UserSettings{
		UserID:      userID,
		MonthlyGoal: defaultMonthlyGoal,
	}
	// Concurrent first reads may race; whichever row lands first wins.
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

// UpdateSettings upserts the monthly goal. The goal must be positive since
// the monthly-progress computation divides by it.
func (s *Store) UpdateSettings(ctx context.Context, userID uuid.UUID, req models.UpdateSettingsRequest) (*models.UserSettings, error) {
	if req.MonthlyGoal == nil || *req.MonthlyGoal < 1 {
		return nil, fmt.Errorf("%w: monthlyGoal must be a positive integer", ErrValidation)
	}

	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.MonthlyGoal = *req.MonthlyGoal
	if err := s.db.WithContext(ctx).Save(settings).Error; err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return settings, nil
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jlin/moodtrack-api/internal/analytics"
	"github.com/jlin/moodtrack-api/internal/models"
)

func validateMoodFields(mood *int, energy *int, sleep *float64) error {
	if mood == nil || *mood < 1 || *mood > 10 {
		return fmt.Errorf("%w: mood must be between 1 and 10", ErrValidation)
	}
	if energy == nil || *energy < 1 || *energy > 5 {
		return fmt.Errorf("%w: energy must be between 1 and 5", ErrValidation)
	}
	if sleep == nil || *sleep < 0 || *sleep > 24 {
		return fmt.Errorf("%w: sleep must be between 0 and 24 hours", ErrValidation)
	}
	return nil
}

// CreateMoodEntry persists a new entry for the calendar day of req.Date
// (defaulting to now). A second entry for the same day is rejected; the
// unique index on (user, day) serializes concurrent creates so the first
// writer wins.
func (s *Store) CreateMoodEntry(ctx context.Context, userID uuid.UUID, req models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	if err := validateMoodFields(req.Mood, req.Energy, req.Sleep); err != nil {
		return nil, err
	}
	if req.Emotions == nil || req.Activities == nil {
		return nil, fmt.Errorf("%w: emotions and activities are required", ErrValidation)
	}

	occurredAt := time.Now()
	if req.Date != nil {
		occurredAt = *req.Date
	}

	var existing int64
	err := s.db.WithContext(ctx).Model(&models.MoodEntry{}).
		Where("user_id = ? AND entry_date = ?", userID, analytics.DayKey(occurredAt)).
		Count(&existing).Error
	if err != nil {
		return nil, fmt.Errorf("check existing entry: %w", err)
	}
	if existing > 0 {
		return nil, ErrDuplicateEntry
	}

	entry := models.MoodEntry{
		UserID:     userID,
		OccurredAt: occurredAt,
		Mood:       *req.Mood,
		Emotions:   req.Emotions,
		Activities: req.Activities,
		Energy:     *req.Energy,
		Sleep:      *req.Sleep,
		Notes:      req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("create mood entry: %w", err)
	}
	return &entry, nil
}

// UpdateMoodEntry replaces the fields of the entry on the calendar day of
// day. The entry keeps its identity; no second row ever appears.
func (s *Store) UpdateMoodEntry(ctx context.Context, userID uuid.UUID, day time.Time, req models.UpdateMoodEntryRequest) (*models.MoodEntry, error) {
	if err := validateMoodFields(req.Mood, req.Energy, req.Sleep); err != nil {
		return nil, err
	}

	var entry models.MoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_date = ?", userID, analytics.DayKey(day)).
		First(&entry).Error
	if err != nil {
		return nil, ErrNotFound
	}

	entry.Mood = *req.Mood
	entry.Energy = *req.Energy
	entry.Sleep = *req.Sleep
	if req.Emotions != nil {
		entry.Emotions = req.Emotions
	}
	if req.Activities != nil {
		entry.Activities = req.Activities
	}
	entry.Notes = req.Notes

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("update mood entry: %w", err)
	}
	return &entry, nil
}

// ListMoodEntries returns the user's entries by creation recency, newest
// first. Entries can be back-dated, so a just-logged entry for last week
// still leads the recent view.
func (s *Store) ListMoodEntries(ctx context.Context, userID uuid.UUID, limit int) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	q := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	return entries, nil
}

// ListMoodEntriesBetween returns entries in [from, to], oldest first. The
// calendar view needs ascending order within its month window.
func (s *Store) ListMoodEntriesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, from, to).
		Order("occurred_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	return entries, nil
}

// SetMoodInsight patches the AI insight onto an existing entry. Used by the
// post-create enrichment goroutine; failures there never touch the entry.
func (s *Store) SetMoodInsight(ctx context.Context, entryID uuid.UUID, insight string) error {
	return s.db.WithContext(ctx).Model(&models.MoodEntry{}).
		Where("id = ?", entryID).
		Update("ai_insight", insight).Error
}

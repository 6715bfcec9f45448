package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoodEntry is a per-day mood record. EntryDate is the calendar day of
// OccurredAt; the composite unique index enforces one entry per user per day
// even under concurrent creates.
type MoodEntry struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_mood_user_day"`
	OccurredAt time.Time      `json:"date" gorm:"not null"`
	EntryDate  string         `json:"-" gorm:"size:10;not null;uniqueIndex:idx_mood_user_day"`
	Mood       int            `json:"mood" gorm:"not null"` // 1-10
	Emotions   []string       `json:"emotions" gorm:"serializer:json;type:text"`
	Activities []string       `json:"activities" gorm:"serializer:json;type:text"`
	Energy     int            `json:"energy"` // 1-5
	Sleep      float64        `json:"sleep"`  // hours
	Notes      *string        `json:"notes"`
	AIInsight  *string        `json:"aiInsights"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (e *MoodEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *MoodEntry) BeforeSave(tx *gorm.DB) error {
	e.EntryDate = e.OccurredAt.Format("2006-01-02")
	return nil
}

// Mood DTOs
type CreateMoodEntryRequest struct {
	Date       *time.Time `json:"date"`
	Mood       *int       `json:"mood"`
	Emotions   []string   `json:"emotions"`
	Activities []string   `json:"activities"`
	Energy     *int       `json:"energy"`
	Sleep      *float64   `json:"sleep"`
	Notes      *string    `json:"notes"`
}

type UpdateMoodEntryRequest struct {
	Date       *time.Time `json:"date"`
	Mood       *int       `json:"mood"`
	Emotions   []string   `json:"emotions"`
	Activities []string   `json:"activities"`
	Energy     *int       `json:"energy"`
	Sleep      *float64   `json:"sleep"`
	Notes      *string    `json:"notes"`
}

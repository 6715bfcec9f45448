package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalEntry is free-form writing. Unlike mood entries there is no
// per-day uniqueness; any number may exist for one day.
type JournalEntry struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Title      string         `json:"title" gorm:"not null"`
	Content    string         `json:"content" gorm:"not null"`
	Mood       *string        `json:"mood"` // five-point emoji scale
	Weather    *string        `json:"weather"`
	Tags       []string       `json:"tags" gorm:"serializer:json;type:text"`
	Category   string         `json:"category" gorm:"default:Personal"`
	IsFavorite bool           `json:"isFavorite" gorm:"default:false"`
	ImageURL   *string        `json:"imageUrl"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (e *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Journal DTOs
type CreateJournalEntryRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Mood       *string  `json:"mood"`
	Weather    *string  `json:"weather"`
	Tags       []string `json:"tags"`
	Category   string   `json:"category"`
	IsFavorite bool     `json:"isFavorite"`
}

type UpdateJournalEntryRequest struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Mood       *string  `json:"mood"`
	Tags       []string `json:"tags"`
	Category   *string  `json:"category"`
	IsFavorite *bool    `json:"isFavorite"`
	ImageURL   *string  `json:"imageUrl"`
}

// JournalListFilter mirrors the journal list query parameters.
type JournalListFilter struct {
	Category string
	Search   string
	Sort     string // newest, oldest, updated
}

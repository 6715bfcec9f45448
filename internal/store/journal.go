package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jlin/moodtrack-api/internal/models"
)

func (s *Store) CreateJournalEntry(ctx context.Context, userID uuid.UUID, req models.CreateJournalEntryRequest) (*models.JournalEntry, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = "Personal"
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	entry := models.JournalEntry{
		UserID:     userID,
		Title:      title,
		Content:    content,
		Mood:       req.Mood,
		Weather:    req.Weather,
		Tags:       tags,
		Category:   category,
		IsFavorite: req.IsFavorite,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create journal entry: %w", err)
	}
	return &entry, nil
}

// ListJournalEntries filters by category and free text. Search matches title,
// content, or a tag, case-insensitively. At most 50 entries are returned.
func (s *Store) ListJournalEntries(ctx context.Context, userID uuid.UUID, filter models.JournalListFilter) ([]models.JournalEntry, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern)
	}

	switch filter.Sort {
	case "oldest":
		q = q.Order("created_at ASC")
	case "updated":
		q = q.Order("updated_at DESC")
	default: // newest
		q = q.Order("created_at DESC")
	}

	var entries []models.JournalEntry
	if err := q.Limit(50).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

// getJournalEntry loads by id and checks ownership. A foreign owner gets
// ErrNotAuthorized, which handlers render exactly like ErrNotFound.
func (s *Store) getJournalEntry(ctx context.Context, userID, entryID uuid.UUID) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := s.db.WithContext(ctx).First(&entry, "id = ?", entryID).Error; err != nil {
		return nil, ErrNotFound
	}
	if entry.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return &entry, nil
}

func (s *Store) UpdateJournalEntry(ctx context.Context, userID, entryID uuid.UUID, req models.UpdateJournalEntryRequest) (*models.JournalEntry, error) {
	entry, err := s.getJournalEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		entry.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
		}
		entry.Content = strings.TrimSpace(*req.Content)
	}
	if req.Mood != nil {
		entry.Mood = req.Mood
	}
	if req.Tags != nil {
		entry.Tags = req.Tags
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.IsFavorite != nil {
		entry.IsFavorite = *req.IsFavorite
	}
	if req.ImageURL != nil {
		entry.ImageURL = req.ImageURL
	}

	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, fmt.Errorf("update journal entry: %w", err)
	}
	return entry, nil
}

func (s *Store) DeleteJournalEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := s.getJournalEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(entry).Error; err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}

package handlers

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/jlin/moodtrack-api/internal/middleware"
	"github.com/jlin/moodtrack-api/internal/models"
	"github.com/jlin/moodtrack-api/internal/services"
)

const insightTimeout = 25 * time.Second

func insightSummary(entry *models.MoodEntry) services.EntrySummary {
	notes := ""
	if entry.Notes != nil {
		notes = *entry.Notes
	}
	return services.EntrySummary{
		Mood:       entry.Mood,
		Emotions:   entry.Emotions,
		Activities: entry.Activities,
		Energy:     entry.Energy,
		Sleep:      entry.Sleep,
		Notes:      notes,
	}
}

// CreateMoodEntry persists the entry, then enriches it with an AI insight in
// the background. The response never waits on the insight provider.
func CreateMoodEntry(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateMoodEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := entryStore().CreateMoodEntry(c.UserContext(), userID, req)
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to process entry")
	}

	// Best-effort enrichment: the entry is already committed, a generation
	// failure just leaves aiInsights null.
	go func(entry models.MoodEntry) {
		ctx, cancel := context.WithTimeout(context.Background(), insightTimeout)
		defer cancel()

		text, err := services.Insight.Generate(ctx, insightSummary(&entry))
		if err != nil {
			log.Debug("insight generation skipped", "entry", entry.ID, "err", err)
			return
		}
		if err := entryStore().SetMoodInsight(ctx, entry.ID, text); err != nil {
			log.Warn("failed to attach insight", "entry", entry.ID, "err", err)
		}
	}(*entry)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    entry,
	})
}

// GetMoodEntries returns the last 30 entries, newest first.
func GetMoodEntries(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	entries, err := entryStore().ListMoodEntries(c.UserContext(), userID, 30)
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to fetch entries")
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	return c.JSON(entries)
}

// UpdateMoodEntry edits the entry for the given day and regenerates its
// insight inline, overwriting the previous one. An insight failure still
// returns the updated entry.
func UpdateMoodEntry(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateMoodEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Date == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date is required",
		})
	}

	entry, err := entryStore().UpdateMoodEntry(c.UserContext(), userID, *req.Date, req)
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to update entry")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), insightTimeout)
	defer cancel()
	if text, err := services.Insight.Generate(ctx, insightSummary(entry)); err == nil {
		if err := entryStore().SetMoodInsight(ctx, entry.ID, text); err == nil {
			entry.AIInsight = &text
		}
	} else {
		log.Debug("insight regeneration skipped", "entry", entry.ID, "err", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    entry,
	})
}

package handlers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jlin/moodtrack-api/internal/analytics"
	"github.com/jlin/moodtrack-api/internal/middleware"
	"github.com/jlin/moodtrack-api/internal/models"
)

// GetDashboard assembles the stats the dashboard shows: streak, monthly goal
// progress, average mood, top activities, and the most recent entries. All
// derived numbers come from one snapshot read with one fixed "now".
func GetDashboard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	now := time.Now()

	settings, err := entryStore().GetSettings(c.UserContext(), userID)
	if err != nil {
		return respondStoreError(c, err, "Settings not found", "Failed to fetch settings")
	}

	entries, err := entryStore().ListMoodEntries(c.UserContext(), userID, 0)
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to fetch entries")
	}
	journals, err := entryStore().ListJournalEntries(c.UserContext(), userID, models.JournalListFilter{})
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to fetch entries")
	}

	// Journal entries count toward streaks and goal progress too; their emoji
	// moods feed the average alongside the numeric check-ins.
	analyzable := make([]analytics.AnalyzableEntry, 0, len(entries)+len(journals))
	for _, e := range entries {
		analyzable = append(analyzable, analytics.FromMoodEntry(e))
	}
	for _, j := range journals {
		analyzable = append(analyzable, analytics.FromJournalEntry(j))
	}

	avg := analytics.AverageMood(analyzable)

	recent := entries
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if recent == nil {
		recent = []models.MoodEntry{}
	}

	return c.JSON(fiber.Map{
		"currentStreak":     analytics.Streak(analyzable, now),
		"monthlyProgress":   analytics.MonthlyProgress(analyzable, settings.MonthlyGoal, now),
		"averageMood":       math.Round(avg*10) / 10,
		"topActivities":     analytics.TopActivities(analyzable, 2),
		"hasSubmittedToday": analytics.HasEntryOn(analyzable, now),
		"monthlyGoal":       settings.MonthlyGoal,
		"totalEntries":      len(entries),
		"recentEntries":     recent,
	})
}

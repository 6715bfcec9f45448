package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jlin/moodtrack-api/internal/middleware"
)

type calendarEntry struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Mood       int      `json:"mood"`
	Emotions   []string `json:"emotions"`
	Activities []string `json:"activities"`
}

// GetCalendar returns the mood entries of one calendar month in ascending
// order. Month is 1-12; both parameters default to the current month.
func GetCalendar(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	now := time.Now()

	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year",
		})
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	entries, err := entryStore().ListMoodEntriesBetween(c.UserContext(), userID, start, end)
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to fetch calendar data")
	}

	result := make([]calendarEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, calendarEntry{
			ID:         e.ID.String(),
			Date:       e.OccurredAt.Format(time.RFC3339),
			Mood:       e.Mood,
			Emotions:   e.Emotions,
			Activities: e.Activities,
		})
	}
	return c.JSON(result)
}

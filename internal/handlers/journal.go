package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jlin/moodtrack-api/internal/middleware"
	"github.com/jlin/moodtrack-api/internal/models"
)

// GetJournalEntries lists the user's journal with optional category filter,
// free-text search, and sort mode (newest, oldest, updated).
func GetJournalEntries(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	filter := models.JournalListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort", "newest"),
	}

	entries, err := entryStore().ListJournalEntries(c.UserContext(), userID, filter)
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to fetch entries")
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return c.JSON(entries)
}

func CreateJournalEntry(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateJournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := entryStore().CreateJournalEntry(c.UserContext(), userID, req)
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to create entry")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    entry,
	})
}

func UpdateJournalEntry(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entry ID",
		})
	}

	var req models.UpdateJournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	entry, err := entryStore().UpdateJournalEntry(c.UserContext(), userID, entryID, req)
	if err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to update entry")
	}
	return c.JSON(entry)
}

func DeleteJournalEntry(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entry ID",
		})
	}

	if err := entryStore().DeleteJournalEntry(c.UserContext(), userID, entryID); err != nil {
		return respondStoreError(c, err, "Entry not found", "Failed to delete entry")
	}
	return c.JSON(fiber.Map{"success": true})
}

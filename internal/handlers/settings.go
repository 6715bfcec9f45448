package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jlin/moodtrack-api/internal/middleware"
	"github.com/jlin/moodtrack-api/internal/models"
)

// GetSettings returns the user's settings, creating defaults on first read.
func GetSettings(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	settings, err := entryStore().GetSettings(c.UserContext(), userID)
	if err != nil {
		return respondStoreError(c, err, "Settings not found", "Failed to fetch settings")
	}
	return c.JSON(settings)
}

func UpdateSettings(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings, err := entryStore().UpdateSettings(c.UserContext(), userID, req)
	if err != nil {
		return respondStoreError(c, err, "Settings not found", "Failed to update settings")
	}
	return c.JSON(settings)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jlin/moodtrack-api/internal/middleware"
	"github.com/jlin/moodtrack-api/internal/models"
)

// parseMilestonePath parses both path IDs. On failure the 400 response has
// already been written and ok is false.
func parseMilestonePath(c *fiber.Ctx) (goalID, milestoneID uuid.UUID, ok bool) {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
		return uuid.Nil, uuid.Nil, false
	}
	milestoneID, err = uuid.Parse(c.Params("milestoneId"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid milestone ID",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return goalID, milestoneID, true
}

func CreateMilestone(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req models.CreateMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	milestone, err := entryStore().AddMilestone(c.UserContext(), userID, goalID, req)
	if err != nil {
		return respondStoreError(c, err, "Goal not found", "Failed to create milestone")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": milestone})
}

func UpdateMilestone(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, milestoneID, ok := parseMilestonePath(c)
	if !ok {
		return nil
	}

	var req models.UpdateMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	milestone, err := entryStore().UpdateMilestone(c.UserContext(), userID, goalID, milestoneID, req)
	if err != nil {
		return respondStoreError(c, err, "Milestone not found", "Failed to update milestone")
	}
	return c.JSON(fiber.Map{"data": milestone})
}

// ToggleMilestone flips completion; the goal's progress and status follow the
// milestone completion ratio.
func ToggleMilestone(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, milestoneID, ok := parseMilestonePath(c)
	if !ok {
		return nil
	}

	milestone, err := entryStore().ToggleMilestone(c.UserContext(), userID, goalID, milestoneID)
	if err != nil {
		return respondStoreError(c, err, "Milestone not found", "Failed to toggle milestone")
	}

	goal, err := entryStore().GetGoal(c.UserContext(), userID, goalID)
	if err != nil {
		return respondStoreError(c, err, "Goal not found", "Failed to fetch goal")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"milestone": milestone,
		"goal":      goal,
	}})
}

func DeleteMilestone(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, milestoneID, ok := parseMilestonePath(c)
	if !ok {
		return nil
	}

	if err := entryStore().DeleteMilestone(c.UserContext(), userID, goalID, milestoneID); err != nil {
		return respondStoreError(c, err, "Milestone not found", "Failed to delete milestone")
	}
	return c.JSON(fiber.Map{"success": true})
}

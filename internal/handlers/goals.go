package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jlin/moodtrack-api/internal/middleware"
	"github.com/jlin/moodtrack-api/internal/models"
)

func GetGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	goals, err := entryStore().ListGoals(c.UserContext(), userID, c.Query("category"), c.Query("status"))
	if err != nil {
		return respondStoreError(c, err, "Goal not found", "Failed to fetch goals")
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return c.JSON(fiber.Map{"data": goals})
}

func CreateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := entryStore().CreateGoal(c.UserContext(), userID, req)
	if err != nil {
		return respondStoreError(c, err, "Goal not found", "Failed to create goal")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": goal})
}

func GetGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	goal, err := entryStore().GetGoal(c.UserContext(), userID, goalID)
	if err != nil {
		return respondStoreError(c, err, "Goal not found", "Failed to fetch goal")
	}
	return c.JSON(fiber.Map{"data": goal})
}

func UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := entryStore().UpdateGoal(c.UserContext(), userID, goalID, req)
	if err != nil {
		return respondStoreError(c, err, "Goal not found", "Failed to update goal")
	}
	return c.JSON(fiber.Map{"data": goal})
}

func DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if err := entryStore().DeleteGoal(c.UserContext(), userID, goalID); err != nil {
		return respondStoreError(c, err, "Goal not found", "Failed to delete goal")
	}
	return c.JSON(fiber.Map{"success": true})
}

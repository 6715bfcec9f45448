package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jlin/moodtrack-api/internal/handlers"
	"github.com/jlin/moodtrack-api/internal/middleware"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Post("/google", handlers.GoogleLogin)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/me", handlers.UpdateProfile)

	mood := protected.Group("/mood")
	mood.Get("/", handlers.GetMoodEntries)
	mood.Post("/", handlers.CreateMoodEntry)
	mood.Put("/", handlers.UpdateMoodEntry)

	journal := protected.Group("/journal")
	journal.Get("/", handlers.GetJournalEntries)
	journal.Post("/", handlers.CreateJournalEntry)
	journal.Put("/:id", handlers.UpdateJournalEntry)
	journal.Delete("/:id", handlers.DeleteJournalEntry)

	goals := protected.Group("/goals")
	goals.Get("/", handlers.GetGoals)
	goals.Post("/", handlers.CreateGoal)
	goals.Get("/:id", handlers.GetGoal)
	goals.Put("/:id", handlers.UpdateGoal)
	goals.Delete("/:id", handlers.DeleteGoal)

	goals.Post("/:id/milestones", handlers.CreateMilestone)
	goals.Put("/:id/milestones/:milestoneId", handlers.UpdateMilestone)
	goals.Post("/:id/milestones/:milestoneId/toggle", handlers.ToggleMilestone)
	goals.Delete("/:id/milestones/:milestoneId", handlers.DeleteMilestone)

	settings := protected.Group("/settings")
	settings.Get("/", handlers.GetSettings)
	settings.Put("/", handlers.UpdateSettings)

	protected.Get("/calendar", handlers.GetCalendar)
	protected.Get("/dashboard", handlers.GetDashboard)
}

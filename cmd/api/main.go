package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/jlin/moodtrack-api/internal/config"
	"github.com/jlin/moodtrack-api/internal/database"
	"github.com/jlin/moodtrack-api/internal/routes"
	"github.com/jlin/moodtrack-api/internal/services"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatal("failed to connect to database", "err", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("failed to run migrations", "err", err)
	}

	if err := services.InitInsight(cfg); err != nil {
		log.Fatal("failed to initialize insight service", "err", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "moodtrack-api",
	})
	routes.Setup(app)

	go func() {
		log.Info("listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server error", "err", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	log.Info("shutting down")
	_ = app.Shutdown()
}

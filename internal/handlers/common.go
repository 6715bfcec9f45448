package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jlin/moodtrack-api/internal/database"
	"github.com/jlin/moodtrack-api/internal/store"
)

func entryStore() *store.Store {
	return store.New(database.DB)
}

// respondStoreError maps store errors onto HTTP responses. ErrNotAuthorized
// and ErrNotFound produce identical bodies so a caller cannot distinguish
// another user's entity from a missing one.
func respondStoreError(c *fiber.Ctx, err error, notFoundMsg, fallbackMsg string) error {
	switch {
	case errors.Is(err, store.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	case errors.Is(err, store.ErrDuplicateEntry):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "An entry already exists for this date",
		})
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrNotAuthorized):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundMsg,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fallbackMsg,
		})
	}
}

func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

// handlers/prompt_routes.go
package handlers

import (
	"errors"

	"hot-takes-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPromptRoutes(app *fiber.App, promptService *services.PromptService) {
	// Today's prompt, lazily materialized on the first request of the day.
	// Placeholders are resolved server side so clients get final text.
	app.Get("/prompt/today", func(c *fiber.Ctx) error {
		prompt, err := promptService.TodayPrompt()
		if err != nil {
			if errors.Is(err, services.ErrNoPromptAvailable) {
				// Client renders an empty/retry state
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "no prompt available",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load today's prompt",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"id":          prompt.ID,
			"text":        services.ApplyDynamicTags(prompt.Text, prompt.DynamicTags),
			"category":    prompt.Category,
			"chaos_level": prompt.ChaosLevel,
		})
	})
}

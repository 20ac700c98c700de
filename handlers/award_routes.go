// handlers/award_routes.go
package handlers

import (
	"strconv"

	"hot-takes-system/middleware"
	"hot-takes-system/models"
	"hot-takes-system/services"
	"hot-takes-system/storage"

	"github.com/gofiber/fiber/v2"
)

func SetupAwardRoutes(app *fiber.App, awardsService *services.AwardsService, store *storage.Store) {
	// Awards board for a week (defaults to the current one). An empty list is
	// a normal quiet week, not an error.
	app.Get("/awards", func(c *fiber.Ctx) error {
		week := awardsService.CurrentWeekNumber()
		if raw := c.Query("week", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "week must be a positive integer",
				})
			}
			week = parsed
		}

		rows, err := store.WeeklyAwardsForWeek(week)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load awards",
				"cause": err.Error(),
			})
		}

		response := make([]fiber.Map, 0, len(rows))
		for _, row := range rows {
			info := models.Awards[row.Category]
			response = append(response, fiber.Map{
				"week_number":  row.WeekNumber,
				"category":     row.Category,
				"name":         info.Name,
				"description":  info.Description,
				"emoji":        info.Emoji,
				"permanent":    info.Permanent,
				"winner_uuid":  row.WinnerUUID,
				"winner_alias": row.WinnerAlias,
				"post": fiber.Map{
					"id":           row.PostID,
					"text":         row.PostText,
					"flames":       row.Flames,
					"super_flames": row.SuperFlames,
					"heat_level":   row.HeatLevel,
				},
			})
		}
		return c.JSON(response)
	})

	// Operational trigger for the weekly job, guarded by the admin token.
	// The gocron schedule is the normal path; this exists for backfills.
	adminGroup := app.Group("/s/admin", middleware.AdminAuthMiddleware())

	adminGroup.Post("/awards/recompute", func(c *fiber.Ctx) error {
		if err := awardsService.ComputeWeeklyAwards(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "awards computation failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"message":     "weekly awards recomputed",
			"week_number": awardsService.CurrentWeekNumber(),
		})
	})
}

// handlers/user_routes.go
package handlers

import (
	"strings"

	"hot-takes-system/middleware"
	"hot-takes-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	// Alias roll is stateless; the client re-rolls until the user confirms one
	app.Get("/users/alias-roll", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"alias": services.GenerateRandomAlias(),
		})
	})

	// Onboarding: the device sends its locally minted UUID plus the alias it
	// confirmed. Repeat calls for a known UUID return the existing user.
	app.Post("/users/onboard", func(c *fiber.Ctx) error {
		type Req struct {
			UUID  string `json:"uuid"`
			Alias string `json:"alias"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		if _, err := uuid.Parse(req.UUID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "uuid must be a valid UUID",
			})
		}
		if strings.TrimSpace(req.Alias) == "" {
			req.Alias = services.GenerateRandomAlias()
		}

		user, err := userService.CreateUser(req.UUID, req.Alias)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create user",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	// Profile + badges for the calling device
	app.Get("/users/me", middleware.DeviceContextMiddleware(), func(c *fiber.Ctx) error {
		deviceUUID := c.Locals("device_uuid").(string)
		user, err := userService.GetUser(deviceUUID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load user",
				"cause": err.Error(),
			})
		}
		if user == nil {
			// Device never completed onboarding
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "user not found",
			})
		}
		return c.JSON(user)
	})
}

// handlers/post_routes.go
package handlers

import (
	"errors"
	"strings"
	"unicode/utf8"

	"hot-takes-system/middleware"
	"hot-takes-system/models"
	"hot-takes-system/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPostRoutes(app *fiber.App, postService *services.PostService) {
	// Public feed, no identity required to read
	app.Get("/posts", func(c *fiber.Ctx) error {
		tab := c.Query("tab", "")
		posts, err := postService.Feed(tab)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load feed",
				"cause": err.Error(),
			})
		}
		return c.JSON(posts)
	})

	// Identity-scoped routes
	device := middleware.DeviceContextMiddleware()

	app.Get("/posts/mine", device, func(c *fiber.Ctx) error {
		deviceUUID := c.Locals("device_uuid").(string)
		posts, err := postService.UserPosts(deviceUUID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load your takes",
				"cause": err.Error(),
			})
		}
		return c.JSON(posts)
	})

	app.Post("/posts", device, func(c *fiber.Ctx) error {
		type Req struct {
			Text     string `json:"text"`
			Category string `json:"category"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		// Length is counted in code points, mirroring the client's limit
		length := utf8.RuneCountInString(req.Text)
		if strings.TrimSpace(req.Text) == "" || length > models.MaxPostLength {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "text must be 1-300 characters",
			})
		}
		if !models.IsValidCategory(req.Category) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown category",
			})
		}

		deviceUUID := c.Locals("device_uuid").(string)
		post, err := postService.CreatePost(deviceUUID, req.Text, req.Category)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create post",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	app.Post("/posts/:id/flame", device, func(c *fiber.Ctx) error {
		return react(c, postService.AddFlame)
	})

	app.Post("/posts/:id/super-flame", device, func(c *fiber.Ctx) error {
		return react(c, postService.AddSuperFlame)
	})
}

func react(c *fiber.Ctx, apply func(postID string) (*models.Post, error)) error {
	post, err := apply(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to record reaction",
			"cause": err.Error(),
		})
	}
	return c.JSON(post)
}

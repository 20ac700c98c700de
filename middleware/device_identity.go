// middleware/device_identity.go
package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// DeviceContextMiddleware extracts the anonymous device identity minted by
// the client at onboarding. Required on compose and reaction routes. There
// are no accounts; the device UUID is the whole identity.
func DeviceContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		deviceUUID := c.Get("X-Device-ID")
		if deviceUUID == "" {
			log.Printf("🚫 [DEVICE_CTX] Missing X-Device-ID on %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-Device-ID header",
			})
		}

		if _, err := uuid.Parse(deviceUUID); err != nil {
			log.Printf("❌ [DEVICE_CTX] Malformed X-Device-ID on %s: %v", c.Path(), err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "X-Device-ID must be a UUID",
			})
		}

		c.Locals("device_uuid", deviceUUID)
		return c.Next()
	}
}

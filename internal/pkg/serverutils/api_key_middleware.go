package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalsAPIKey is the fiber locals key holding the caller's credential for
// the duration of one request. It must never be logged or persisted.
const LocalsAPIKey = "api_key"

// APIKeyMiddleware extracts the caller-supplied model API key from the
// Authorization header. The key is opaque to this service; it is only passed
// through to the embedding and chat-completion calls.
func APIKeyMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing or invalid API key",
		})
	}

	apiKey := strings.TrimSpace(authHeader[7:])
	if apiKey == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing or invalid API key",
		})
	}

	ctx.Locals(LocalsAPIKey, apiKey)
	return ctx.Next()
}

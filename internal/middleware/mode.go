package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// ResponseMode values
const (
	ModeRedirect = "redirect"
	ModeJSON     = "json"
)

// ResponseModeMiddleware decides how a mutation reports success. JSON bodies get a JSON result,
// form posts get redirected to the list view.
func ResponseModeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := ModeRedirect
		if c.Is("json") {
			mode = ModeJSON
		}

		c.Locals("responseMode", mode)

		return c.Next()
	}
}

// WantsJSON reports whether the request asked for a JSON mutation result
func WantsJSON(c *fiber.Ctx) bool {
	if mode, ok := c.Locals("responseMode").(string); ok {
		return mode == ModeJSON
	}
	return c.Is("json")
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/types"
)

// DenyAll rejects every request. It guards the login placeholder until an account system exists.
func DenyAll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return types.Unauthorized("login is not available")
	}
}

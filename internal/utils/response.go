package utils

import "github.com/gofiber/fiber/v2"

// JSONError writes an error body. The "detail" key is part of the wire
// contract with existing clients.
func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

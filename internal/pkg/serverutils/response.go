package serverutils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the single error wire shape. Every failure, validation or
// otherwise, serializes as {"error": "..."}.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}

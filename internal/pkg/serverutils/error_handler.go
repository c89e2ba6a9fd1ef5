package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts anything a handler lets escape, returned
// errors and panics alike, into a plain 500 JSON body. Stack traces never
// reach the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal error"))
			}
		}()

		if err := ctx.Next(); err != nil {
			// Fiber errors carry their own status (404 for unknown routes etc.).
			if e, ok := err.(*fiber.Error); ok {
				return ctx.Status(e.Code).JSON(ErrorResponse(e.Message))
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal error"))
		}
		return nil
	}
}

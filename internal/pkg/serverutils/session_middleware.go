package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"ai-helper-be/internal/repository/contract"
	"ai-helper-be/internal/repository/memory"
	"ai-helper-be/internal/repository/specification"
)

// UnauthorizedMessage is deliberately uniform: a missing cookie, an unknown
// or expired session and a deleted user all look the same to the client.
const UnauthorizedMessage = "authentication required"

// NewSessionMiddleware resolves the session cookie to a user and stores the
// user id in ctx.Locals("user_id") for downstream handlers.
func NewSessionMiddleware(cookieName string, sessions *memory.SessionRepository, users contract.UserRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Cookies(cookieName)
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(UnauthorizedMessage))
		}

		session, found := sessions.Get(token)
		if !found {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(UnauthorizedMessage))
		}

		user, err := users.FindOne(ctx.Context(), specification.ByID{ID: session.UserId})
		if err != nil || user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(UnauthorizedMessage))
		}

		ctx.Locals("user_id", session.UserId.String())
		return ctx.Next()
	}
}

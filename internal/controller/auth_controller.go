package controller

import (
	"errors"
	"time"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/pkg/serverutils"
	"ai-helper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	cookieName  string
	ttlHours    int
}

func NewAuthController(authService service.IAuthService, cookieName string, ttlHours int) IAuthController {
	return &authController{
		authService: authService,
		cookieName:  cookieName,
		ttlHours:    ttlHours,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router, _ fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Post("/forgot-password", c.ForgotPassword)
	h.Post("/reset-password", c.ResetPassword)
	// /me is a session probe, not a protected route: it answers with a null
	// user instead of a 401.
	h.Get("/me", c.Me)
}

func (c *authController) setSessionCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   c.ttlHours * 3600,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c *authController) clearSessionCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	user, token, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	c.setSessionCookie(ctx, token)
	return ctx.Status(fiber.StatusCreated).JSON(dto.UserEnvelope{User: *user})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	user, token, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	c.setSessionCookie(ctx, token)
	return ctx.JSON(dto.UserEnvelope{User: *user})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.authService.Logout(ctx.Cookies(c.cookieName))
	c.clearSessionCookie(ctx)
	return ctx.JSON(dto.SuccessResponse{Success: true})
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	user, err := c.authService.UserFromSession(ctx.Context(), ctx.Cookies(c.cookieName))
	if err != nil {
		return err
	}

	return ctx.JSON(dto.SessionUserResponse{User: user})
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.authService.ForgotPassword(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	if err := c.authService.ResetPassword(ctx.Context(), &req); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
		}
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	return ctx.JSON(dto.SuccessResponse{Success: true})
}

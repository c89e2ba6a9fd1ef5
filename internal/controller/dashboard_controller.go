package controller

import (
	"ai-helper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Show(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{
		dashboardService: dashboardService,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/dashboard")
	h.Use(authMiddleware)
	h.Get("", c.Show)
}

func (c *dashboardController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.dashboardService.GetDashboard(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

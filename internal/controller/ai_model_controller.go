package controller

import (
	"errors"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/pkg/serverutils"
	"ai-helper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAIModelController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	List(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type aiModelController struct {
	aiModelService service.IAIModelService
}

func NewAIModelController(aiModelService service.IAIModelService) IAIModelController {
	return &aiModelController{
		aiModelService: aiModelService,
	}
}

func (c *aiModelController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/ai/models")
	h.Use(authMiddleware)
	h.Get("", c.List)
	h.Post("", c.Upsert)
	h.Delete(":id", c.Delete)
}

func (c *aiModelController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	models, err := c.aiModelService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.AIModelListResponse{Models: models})
}

func (c *aiModelController) Upsert(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UpsertAIModelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	model, err := c.aiModelService.Upsert(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.AIModelEnvelope{Model: *model})
}

func (c *aiModelController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(service.ErrModelNotFound.Error()))
	}

	if err := c.aiModelService.Delete(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrModelNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	return ctx.JSON(dto.SuccessResponse{Success: true})
}

package controller

import (
	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/pkg/serverutils"
	"ai-helper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAIController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	GenerateContent(ctx *fiber.Ctx) error
	AnalyzeText(ctx *fiber.Ctx) error
	ChatMessage(ctx *fiber.Ctx) error
	GenerateImage(ctx *fiber.Ctx) error
	MarketingIdeas(ctx *fiber.Ctx) error
	SynthesizeVoice(ctx *fiber.Ctx) error
	Transcribe(ctx *fiber.Ctx) error
}

type aiController struct {
	assistantService service.IAssistantService
}

func NewAIController(assistantService service.IAssistantService) IAIController {
	return &aiController{
		assistantService: assistantService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/ai")
	h.Use(authMiddleware)
	h.Post("/content/generate", c.GenerateContent)
	h.Post("/text/analyze", c.AnalyzeText)
	h.Post("/chat/message", c.ChatMessage)
	h.Post("/image/generate", c.GenerateImage)
	h.Post("/marketing/ideas", c.MarketingIdeas)
	h.Post("/voice/synthesize", c.SynthesizeVoice)
	h.Post("/voice/transcribe", c.Transcribe)
}

func (c *aiController) GenerateContent(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.GenerateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.assistantService.GenerateContent(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *aiController) AnalyzeText(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.AnalyzeTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.assistantService.AnalyzeText(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *aiController) ChatMessage(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.ChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.assistantService.SendChatMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *aiController) GenerateImage(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.GenerateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.assistantService.GenerateImages(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *aiController) MarketingIdeas(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.MarketingIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.assistantService.CreateMarketingIdea(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *aiController) SynthesizeVoice(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.SynthesizeVoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.assistantService.SynthesizeVoice(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *aiController) Transcribe(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.TranscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	res, err := c.assistantService.Transcribe(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

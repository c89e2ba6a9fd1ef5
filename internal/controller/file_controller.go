package controller

import (
	"errors"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/pkg/serverutils"
	"ai-helper-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService service.IFileService
}

func NewFileController(fileService service.IFileService) IFileController {
	return &fileController{
		fileService: fileService,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/files")
	h.Use(authMiddleware)
	h.Get("", c.List)
	h.Post("", c.Upload)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UploadFileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	file, err := c.fileService.Upload(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidContent) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.FileEnvelope{File: *file})
}

func (c *fileController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	files, err := c.fileService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.FileListResponse{Files: files})
}

func (c *fileController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(service.ErrFileNotFound.Error()))
	}

	file, err := c.fileService.Get(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	return ctx.JSON(dto.FileEnvelope{File: *file})
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(service.ErrFileNotFound.Error()))
	}

	if err := c.fileService.Delete(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	return ctx.JSON(dto.SuccessResponse{Success: true})
}

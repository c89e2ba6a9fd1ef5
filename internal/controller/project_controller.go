package controller

import (
	"errors"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/pkg/serverutils"
	"ai-helper-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type projectController struct {
	projectService service.IProjectService
}

func NewProjectController(projectService service.IProjectService) IProjectController {
	return &projectController{
		projectService: projectService,
	}
}

func (c *projectController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/projects")
	h.Use(authMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

// parseIdParam treats a malformed id like an unknown one: both produce the
// same not-found outcome downstream.
func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params("id"))
}

func (c *projectController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	project, err := c.projectService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.ProjectEnvelope{Project: *project})
}

func (c *projectController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	projects, err := c.projectService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ProjectListResponse{Projects: projects})
}

func (c *projectController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(service.ErrProjectNotFound.Error()))
	}

	project, err := c.projectService.Get(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	return ctx.JSON(dto.ProjectEnvelope{Project: *project})
}

func (c *projectController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(service.ErrProjectNotFound.Error()))
	}

	var req dto.UpdateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("invalid request body"))
	}

	project, err := c.projectService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	return ctx.JSON(dto.ProjectEnvelope{Project: *project})
}

func (c *projectController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(service.ErrProjectNotFound.Error()))
	}

	if err := c.projectService.Delete(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return err
	}

	return ctx.JSON(dto.SuccessResponse{Success: true})
}

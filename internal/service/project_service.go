package service

import (
	"context"
	"errors"
	"time"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
	"ai-helper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ErrProjectNotFound covers both an unknown id and a project owned by
// another user. The two cases must stay indistinguishable.
var ErrProjectNotFound = errors.New("project not found")

type IProjectService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.ProjectResponse, error)
	Get(ctx context.Context, userId, projectId uuid.UUID) (*dto.ProjectResponse, error)
	Update(ctx context.Context, userId, projectId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, userId, projectId uuid.UUID) error
}

type projectService struct {
	uowFactory  unitofwork.RepositoryFactory
	activityPub IPublisherService
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory, activityPub IPublisherService) IProjectService {
	return &projectService{
		uowFactory:  uowFactory,
		activityPub: activityPub,
	}
}

func toProjectResponse(project *entity.Project) *dto.ProjectResponse {
	settings := project.Settings
	if settings == nil {
		settings = map[string]interface{}{}
	}
	return &dto.ProjectResponse{
		Id:          project.Id,
		UserId:      project.UserId,
		Name:        project.Name,
		Description: project.Description,
		Type:        project.Type,
		Settings:    settings,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	project := &entity.Project{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Type:      req.Type,
		Settings:  req.Settings,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != "" {
		project.Description = &req.Description
	}
	if project.Settings == nil {
		project.Settings = map[string]interface{}{}
	}

	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.activityPub, userId, "PROJECT_CREATED", map[string]interface{}{
		"project_id": project.Id.String(),
	})

	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context, userId uuid.UUID) ([]dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		res = append(res, *toProjectResponse(project))
	}
	return res, nil
}

func (s *projectService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.Project, error) {
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *projectService) Get(ctx context.Context, userId, projectId uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwned(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Update(ctx context.Context, userId, projectId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwned(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Type != nil {
		project.Type = *req.Type
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Settings != nil {
		project.Settings = req.Settings
	}
	project.UpdatedAt = time.Now()

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, userId, projectId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwned(ctx, uow, userId, projectId)
	if err != nil {
		return err
	}

	if err := uow.ProjectRepository().Delete(ctx, project.Id); err != nil {
		return err
	}

	publishActivity(ctx, s.activityPub, userId, "PROJECT_DELETED", map[string]interface{}{
		"project_id": project.Id.String(),
	})
	return nil
}

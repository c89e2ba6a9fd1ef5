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

var ErrModelNotFound = errors.New("model not found")

type IAIModelService interface {
	Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertAIModelRequest) (*dto.AIModelResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.AIModelResponse, error)
	Delete(ctx context.Context, userId, modelId uuid.UUID) error
}

type aiModelService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAIModelService(uowFactory unitofwork.RepositoryFactory) IAIModelService {
	return &aiModelService{
		uowFactory: uowFactory,
	}
}

func toAIModelResponse(model *entity.AIModel) *dto.AIModelResponse {
	parameters := model.Parameters
	if parameters == nil {
		parameters = map[string]interface{}{}
	}
	return &dto.AIModelResponse{
		Id:          model.Id,
		UserId:      model.UserId,
		Provider:    model.Provider,
		ModelName:   model.ModelName,
		ApiKey:      model.ApiKey,
		EndpointURL: model.EndpointURL,
		Parameters:  parameters,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
	}
}

func (s *aiModelService) Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertAIModelRequest) (*dto.AIModelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	model := &entity.AIModel{
		Id:          uuid.New(),
		UserId:      userId,
		Provider:    req.Provider,
		ModelName:   req.ModelName,
		ApiKey:      req.ApiKey,
		EndpointURL: req.EndpointURL,
		Parameters:  req.Parameters,
		IsActive:    true,
		CreatedAt:   now,
	}
	if model.Parameters == nil {
		model.Parameters = map[string]interface{}{}
	}
	if req.IsActive != nil {
		model.IsActive = *req.IsActive
	}

	// An explicit id replaces the configuration while keeping its creation
	// time. Ownership is not checked against other users' ids because Save
	// would collide on the primary key; the existing record must be ours.
	if req.Id != nil {
		existing, err := uow.AIModelRepository().FindOne(ctx,
			specification.ByID{ID: *req.Id},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		model.Id = *req.Id
		if existing != nil {
			model.CreatedAt = existing.CreatedAt
		}
	}

	if err := uow.AIModelRepository().Save(ctx, model); err != nil {
		return nil, err
	}

	return toAIModelResponse(model), nil
}

func (s *aiModelService) List(ctx context.Context, userId uuid.UUID) ([]dto.AIModelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	models, err := uow.AIModelRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.AIModelResponse, 0, len(models))
	for _, model := range models {
		res = append(res, *toAIModelResponse(model))
	}
	return res, nil
}

func (s *aiModelService) Delete(ctx context.Context, userId, modelId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	model, err := uow.AIModelRepository().FindOne(ctx,
		specification.ByID{ID: modelId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if model == nil {
		return ErrModelNotFound
	}

	return uow.AIModelRepository().Delete(ctx, model.Id)
}

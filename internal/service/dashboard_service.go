package service

import (
	"context"
	"time"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
	"ai-helper-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDashboardService interface {
	GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	uowFactory   unitofwork.RepositoryFactory
	usageService IUsageService
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, usageService IUsageService) IDashboardService {
	return &dashboardService{
		uowFactory:   uowFactory,
		usageService: usageService,
	}
}

func toUsageResponse(usage *entity.UsageLimit) dto.UsageResponse {
	return dto.UsageResponse{
		Id:            usage.Id,
		UserId:        usage.UserId,
		PeriodStart:   usage.PeriodStart,
		PeriodEnd:     usage.PeriodEnd,
		RequestsUsed:  usage.RequestsUsed,
		RequestsLimit: usage.RequestsLimit,
		TokensUsed:    usage.TokensUsed,
		TokensLimit:   usage.TokensLimit,
	}
}

func toAIRequestResponse(request *entity.AIRequest) dto.AIRequestResponse {
	return dto.AIRequestResponse{
		Id:           request.Id,
		UserId:       request.UserId,
		ProjectId:    request.ProjectId,
		Type:         string(request.Type),
		InputData:    request.InputData,
		OutputData:   request.OutputData,
		ModelUsed:    request.ModelUsed,
		TokensUsed:   request.TokensUsed,
		Cost:         request.Cost,
		Status:       string(request.Status),
		ErrorMessage: request.ErrorMessage,
		CreatedAt:    request.CreatedAt,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owned := specification.OwnedBy{UserID: userId}

	projectCount, err := uow.ProjectRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	contentGenerated, err := uow.AIRequestRepository().Count(ctx, owned,
		specification.ByRequestType{Type: string(entity.AIRequestTypeContentGeneration)})
	if err != nil {
		return nil, err
	}

	textAnalyzed, err := uow.AIRequestRepository().Count(ctx, owned,
		specification.ByRequestType{Type: string(entity.AIRequestTypeTextAnalysis)})
	if err != nil {
		return nil, err
	}

	chatMessages, err := uow.ChatMessageRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	marketingIdeas, err := uow.MarketingIdeaRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	usage, err := s.usageService.GetForUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	projects, err := uow.ProjectRepository().FindAll(ctx, owned,
		specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	requests, err := uow.AIRequestRepository().FindAll(ctx, owned,
		specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	projectRes := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		projectRes = append(projectRes, *toProjectResponse(project))
	}

	requestRes := make([]dto.AIRequestResponse, 0, len(requests))
	for _, request := range requests {
		requestRes = append(requestRes, toAIRequestResponse(request))
	}

	return &dto.DashboardResponse{
		Snapshot: dto.DashboardSnapshot{
			Projects:         int(projectCount),
			ContentGenerated: int(contentGenerated),
			TextAnalyzed:     int(textAnalyzed),
			ChatMessages:     int(chatMessages),
			MarketingIdeas:   int(marketingIdeas),
			Usage:            toUsageResponse(usage),
			LastUpdated:      time.Now(),
		},
		Projects: projectRes,
		Requests: requestRes,
	}, nil
}

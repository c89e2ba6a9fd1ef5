package service

import (
	"context"
	"strconv"
	"time"

	"ai-helper-be/internal/config"
	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
	"ai-helper-be/internal/repository/unitofwork"
	"ai-helper-be/pkg/assistant"

	"github.com/google/uuid"
)

type IAssistantService interface {
	GenerateContent(ctx context.Context, userId uuid.UUID, req *dto.GenerateContentRequest) (*dto.ContentResponse, error)
	AnalyzeText(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeTextRequest) (*dto.AnalyzeTextResponse, error)
	SendChatMessage(ctx context.Context, userId uuid.UUID, req *dto.ChatMessageRequest) (*dto.ChatHistoryResponse, error)
	GenerateImages(ctx context.Context, userId uuid.UUID, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error)
	CreateMarketingIdea(ctx context.Context, userId uuid.UUID, req *dto.MarketingIdeaRequest) (*dto.MarketingIdeaEnvelope, error)
	SynthesizeVoice(ctx context.Context, userId uuid.UUID, req *dto.SynthesizeVoiceRequest) (*dto.SynthesizeVoiceResponse, error)
	Transcribe(ctx context.Context, userId uuid.UUID, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error)
}

type assistantService struct {
	uowFactory  unitofwork.RepositoryFactory
	activityPub IPublisherService
	usageCfg    config.UsageConfig
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	activityPub IPublisherService,
	usageCfg config.UsageConfig,
) IAssistantService {
	return &assistantService{
		uowFactory:  uowFactory,
		activityPub: activityPub,
		usageCfg:    usageCfg,
	}
}

// recordAndCharge writes the audit entry and bumps the usage counters in one
// transaction. Limits are advisory, so the charge never fails a request for
// being over quota.
func (s *assistantService) recordAndCharge(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	reqType entity.AIRequestType,
	inputData, outputData map[string]interface{},
	tokens int,
) error {
	request := &entity.AIRequest{
		Id:         uuid.New(),
		UserId:     userId,
		Type:       reqType,
		InputData:  inputData,
		OutputData: outputData,
		TokensUsed: tokens,
		Status:     entity.AIRequestStatusCompleted,
		CreatedAt:  time.Now(),
	}
	if err := uow.AIRequestRepository().Create(ctx, request); err != nil {
		return err
	}

	usage, err := uow.UsageRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if usage == nil {
		now := time.Now()
		usage = &entity.UsageLimit{
			Id:            uuid.New(),
			UserId:        userId,
			PeriodStart:   now,
			PeriodEnd:     now.Add(time.Duration(s.usageCfg.PeriodDays) * 24 * time.Hour),
			RequestsLimit: s.usageCfg.RequestsLimit,
			TokensLimit:   s.usageCfg.TokensLimit,
		}
		if err := uow.UsageRepository().Create(ctx, usage); err != nil {
			return err
		}
	}
	usage.RequestsUsed++
	usage.TokensUsed += tokens

	return uow.UsageRepository().Update(ctx, usage)
}

func (s *assistantService) complete(
	ctx context.Context,
	userId uuid.UUID,
	reqType entity.AIRequestType,
	inputData, outputData map[string]interface{},
	tokens int,
) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.recordAndCharge(ctx, uow, userId, reqType, inputData, outputData, tokens); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	publishActivity(ctx, s.activityPub, userId, "AI_REQUEST_COMPLETED", map[string]interface{}{
		"type":   string(reqType),
		"tokens": tokens,
	})
	return nil
}

func (s *assistantService) GenerateContent(ctx context.Context, userId uuid.UUID, req *dto.GenerateContentRequest) (*dto.ContentResponse, error) {
	content := assistant.BuildContent(assistant.ContentRequest{
		Topic:       req.Topic,
		ContentType: req.ContentType,
		Tone:        req.Tone,
		Length:      req.Length,
	})

	err := s.complete(ctx, userId, entity.AIRequestTypeContentGeneration,
		map[string]interface{}{
			"topic":       req.Topic,
			"contentType": req.ContentType,
			"tone":        req.Tone,
			"length":      req.Length,
		},
		map[string]interface{}{"content": content},
		assistant.TokensContentGeneration,
	)
	if err != nil {
		return nil, err
	}

	return &dto.ContentResponse{Content: content}, nil
}

func (s *assistantService) AnalyzeText(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeTextRequest) (*dto.AnalyzeTextResponse, error) {
	metrics := assistant.AnalyzeText(req.Text)
	suggestions := assistant.BuildSuggestions(metrics)

	// The audit entry keeps only a bounded preview of the input.
	preview := req.Text
	if runes := []rune(preview); len(runes) > 2000 {
		preview = string(runes[:2000])
	}

	err := s.complete(ctx, userId, entity.AIRequestTypeTextAnalysis,
		map[string]interface{}{"text": preview},
		map[string]interface{}{
			"wordCount":          metrics.WordCount,
			"sentenceCount":      metrics.SentenceCount,
			"readingTimeMinutes": metrics.ReadingTimeMinutes,
			"uniqueWords":        metrics.UniqueWords,
			"characterCount":     metrics.CharacterCount,
			"readability":        metrics.Readability,
		},
		assistant.TokensTextAnalysis,
	)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyzeTextResponse{Metrics: metrics, Suggestions: suggestions}, nil
}

func toChatMessageResponse(message *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:        message.Id,
		UserId:    message.UserId,
		Role:      string(message.Role),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

func (s *assistantService) SendChatMessage(ctx context.Context, userId uuid.UUID, req *dto.ChatMessageRequest) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	userMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      entity.ChatRoleUser,
		Content:   req.Message,
		CreatedAt: now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	historyLength, err := uow.ChatMessageRepository().Count(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	reply := assistant.BuildChatReply(req.Message, int(historyLength))

	// The assistant entry gets a strictly later timestamp so history ordering
	// by created_at is deterministic.
	assistantMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      entity.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: now.Add(time.Millisecond),
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	err = s.recordAndCharge(ctx, uow, userId, entity.AIRequestTypeChat,
		map[string]interface{}{"message": req.Message},
		map[string]interface{}{"reply": reply},
		assistant.TokensChat,
	)
	if err != nil {
		return nil, err
	}

	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.activityPub, userId, "AI_REQUEST_COMPLETED", map[string]interface{}{
		"type":   string(entity.AIRequestTypeChat),
		"tokens": assistant.TokensChat,
	})

	messages := make([]dto.ChatMessageResponse, 0, len(history))
	for _, message := range history {
		messages = append(messages, toChatMessageResponse(message))
	}
	return &dto.ChatHistoryResponse{Messages: messages}, nil
}

func (s *assistantService) GenerateImages(ctx context.Context, userId uuid.UUID, req *dto.GenerateImageRequest) (*dto.GenerateImageResponse, error) {
	count := assistant.ClampImageCount(req.Count)

	images := make([]dto.GeneratedImage, 0, count)
	imageData := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		image := dto.GeneratedImage{
			Id:  strconv.Itoa(i),
			URL: assistant.RenderPlaceholderImage(req.Prompt, req.Style),
		}
		images = append(images, image)
		imageData = append(imageData, map[string]interface{}{"id": image.Id, "url": image.URL})
	}

	err := s.complete(ctx, userId, entity.AIRequestTypeImageGeneration,
		map[string]interface{}{
			"prompt": req.Prompt,
			"style":  req.Style,
			"count":  req.Count,
		},
		map[string]interface{}{"images": imageData},
		assistant.TokensImageGeneration,
	)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateImageResponse{Images: images}, nil
}

func toMarketingIdeaResponse(idea *entity.MarketingIdea) dto.MarketingIdeaResponse {
	return dto.MarketingIdeaResponse{
		Id:        idea.Id,
		UserId:    idea.UserId,
		Topic:     idea.Topic,
		Channel:   idea.Channel,
		Idea:      idea.Idea,
		CreatedAt: idea.CreatedAt,
	}
}

func (s *assistantService) CreateMarketingIdea(ctx context.Context, userId uuid.UUID, req *dto.MarketingIdeaRequest) (*dto.MarketingIdeaEnvelope, error) {
	ideaText := assistant.BuildMarketingIdea(req.Topic, req.Channel, req.Audience)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	idea := &entity.MarketingIdea{
		Id:        uuid.New(),
		UserId:    userId,
		Topic:     req.Topic,
		Channel:   req.Channel,
		Idea:      ideaText,
		CreatedAt: time.Now(),
	}
	if err := uow.MarketingIdeaRepository().Create(ctx, idea); err != nil {
		return nil, err
	}

	err := s.recordAndCharge(ctx, uow, userId, entity.AIRequestTypeMarketingIdea,
		map[string]interface{}{
			"topic":    req.Topic,
			"channel":  req.Channel,
			"audience": req.Audience,
		},
		map[string]interface{}{"idea": ideaText},
		assistant.TokensMarketingIdea,
	)
	if err != nil {
		return nil, err
	}

	history, err := uow.MarketingIdeaRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.activityPub, userId, "AI_REQUEST_COMPLETED", map[string]interface{}{
		"type":   string(entity.AIRequestTypeMarketingIdea),
		"tokens": assistant.TokensMarketingIdea,
	})

	historyRes := make([]dto.MarketingIdeaResponse, 0, len(history))
	for _, item := range history {
		historyRes = append(historyRes, toMarketingIdeaResponse(item))
	}

	return &dto.MarketingIdeaEnvelope{
		Idea:    toMarketingIdeaResponse(idea),
		History: historyRes,
	}, nil
}

func (s *assistantService) SynthesizeVoice(ctx context.Context, userId uuid.UUID, req *dto.SynthesizeVoiceRequest) (*dto.SynthesizeVoiceResponse, error) {
	voice := assistant.NormalizeVoice(req.Voice)
	speed := assistant.NormalizeSpeed(req.Speed)
	tokens := assistant.SynthesisTokens(req.Text)

	preview := req.Text
	if runes := []rune(preview); len(runes) > 280 {
		preview = string(runes[:280])
	}

	err := s.complete(ctx, userId, entity.AIRequestTypeVoiceSynthesis,
		map[string]interface{}{
			"textPreview": preview,
			"voice":       voice,
			"speed":       speed,
		},
		map[string]interface{}{"audioBytes": len(assistant.DemoAudioBase64)},
		tokens,
	)
	if err != nil {
		return nil, err
	}

	return &dto.SynthesizeVoiceResponse{
		Audio: assistant.DemoAudioBase64,
		Voice: voice,
		Speed: speed,
	}, nil
}

func (s *assistantService) Transcribe(ctx context.Context, userId uuid.UUID, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error) {
	err := s.complete(ctx, userId, entity.AIRequestTypeVoiceTranscribe,
		map[string]interface{}{"audioLength": len(req.Audio)},
		map[string]interface{}{"transcript": assistant.DemoTranscript},
		assistant.TokensTranscription,
	)
	if err != nil {
		return nil, err
	}

	return &dto.TranscribeResponse{Transcript: assistant.DemoTranscript}, nil
}

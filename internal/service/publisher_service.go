package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-helper-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}

// publishActivity fires an activity event without blocking the caller's
// request path. Publish failures are logged and swallowed.
func publishActivity(ctx context.Context, publisher IPublisherService, userId uuid.UUID, action string, details map[string]interface{}) {
	if publisher == nil {
		return
	}

	payload, err := json.Marshal(dto.ActivityEventMessage{
		UserId:     userId,
		Action:     action,
		Details:    details,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return
	}

	if err := publisher.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish activity event %s: %v", action, err)
	}
}

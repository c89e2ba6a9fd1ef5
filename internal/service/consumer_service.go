package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-helper-be/internal/dto"
	"ai-helper-be/internal/pkg/logger"
	"ai-helper-be/pkg/events"
	pktNats "ai-helper-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains activity events off the in-process bus, writes them
// to the structured activity log and optionally mirrors them to NATS.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	sysLogger      logger.ILogger
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sysLogger logger.ILogger,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		sysLogger:      sysLogger,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ActivityEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.sysLogger.Info("activity", payload.Action, map[string]interface{}{
		"user_id": payload.UserId.String(),
		"details": payload.Details,
	})

	if cs.eventPublisher != nil {
		event := events.BaseEvent{
			Type: payload.Action,
			Data: map[string]interface{}{
				"user_id": payload.UserId.String(),
				"details": payload.Details,
			},
			OccurredAt: payload.OccurredAt,
		}
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to mirror event to NATS: %v", err)
		}
	}

	msg.Ack()
}

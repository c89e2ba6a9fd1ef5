package entity

import (
	"time"

	"github.com/google/uuid"
)

type MarketingIdea struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Topic     string
	Channel   string
	Idea      string
	CreatedAt time.Time
}

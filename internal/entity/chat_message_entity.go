package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}

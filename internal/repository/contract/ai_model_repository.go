package contract

import (
	"context"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AIModelRepository interface {
	// Save inserts or replaces a model configuration (upsert by id).
	Save(ctx context.Context, model *entity.AIModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AIModel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AIModel, error)
}

package contract

import (
	"context"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.FileRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FileRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FileRecord, error)
}

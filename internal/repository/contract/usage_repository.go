package contract

import (
	"context"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
)

type UsageRepository interface {
	Create(ctx context.Context, usage *entity.UsageLimit) error
	Update(ctx context.Context, usage *entity.UsageLimit) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UsageLimit, error)
}

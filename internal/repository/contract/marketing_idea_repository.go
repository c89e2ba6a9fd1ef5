package contract

import (
	"context"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
)

type MarketingIdeaRepository interface {
	Create(ctx context.Context, idea *entity.MarketingIdea) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MarketingIdea, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

package contract

import (
	"context"

	"ai-helper-be/internal/entity"
	"ai-helper-be/internal/repository/specification"
)

// AIRequestRepository stores the append-only audit trail. There is no
// update or delete: entries are immutable once written.
type AIRequestRepository interface {
	Create(ctx context.Context, request *entity.AIRequest) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AIRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

package contract

import (
	"context"

	"github.com/google/uuid"

	"hsms-be/internal/entity"
	"hsms-be/internal/repository/specification"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.ServiceCategory) error
	Update(ctx context.Context, category *entity.ServiceCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceCategory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceCategory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

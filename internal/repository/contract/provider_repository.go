package contract

import (
	"context"
	"time"

	"hsms-be/internal/entity"
	"hsms-be/internal/repository/specification"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.ServiceProvider) error
	Update(ctx context.Context, provider *entity.ServiceProvider) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceProvider, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceProvider, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	DeleteDeactivatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

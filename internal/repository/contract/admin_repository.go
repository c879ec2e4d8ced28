package contract

import (
	"context"

	"hsms-be/internal/entity"
	"hsms-be/internal/repository/specification"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	Update(ctx context.Context, admin *entity.Admin) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

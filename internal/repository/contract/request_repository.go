package contract

import (
	"context"

	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/entity"
	"hsms-be/internal/repository/specification"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	// Update persists the whole request document in one write; status and
	// history change together.
	Update(ctx context.Context, request *entity.ServiceRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CountByStatus returns the per-status breakdown for one customer.
	CountByStatus(ctx context.Context, customerID uuid.UUID) (map[constant.RequestStatus]int64, error)
}

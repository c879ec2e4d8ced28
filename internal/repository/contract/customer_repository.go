package contract

import (
	"context"
	"time"

	"hsms-be/internal/entity"
	"hsms-be/internal/repository/specification"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// DeleteDeactivatedBefore hard-deletes accounts whose grace period ended
	// before cutoff. Returns the number of rows removed.
	DeleteDeactivatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

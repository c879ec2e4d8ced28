package unitofwork

import (
	"context"

	"hsms-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CustomerRepository() contract.CustomerRepository
	ProviderRepository() contract.ProviderRepository
	AdminRepository() contract.AdminRepository
	CategoryRepository() contract.CategoryRepository
	RequestRepository() contract.RequestRepository
	NotificationRepository() contract.NotificationRepository
}

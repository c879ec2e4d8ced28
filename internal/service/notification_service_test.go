package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsms-be/internal/constant"
	"hsms-be/internal/entity"
	"hsms-be/internal/repository/contract"
	"hsms-be/internal/repository/specification"
	"hsms-be/internal/repository/unitofwork"
)

type fakeNotificationRepo struct {
	contract.NotificationRepository
	created []*entity.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Notification, error) {
	return nil, nil
}

type fakeUnitOfWork struct {
	unitofwork.UnitOfWork
	notifications *fakeNotificationRepo
	requests      *fakeRequestRepo
}

func (f *fakeUnitOfWork) NotificationRepository() contract.NotificationRepository {
	return f.notifications
}

func (f *fakeUnitOfWork) RequestRepository() contract.RequestRepository {
	return f.requests
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newNotificationFixture() (*fakeNotificationRepo, INotificationService) {
	repo := &fakeNotificationRepo{}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{notifications: repo}}
	return repo, NewNotificationService(factory, nopLogger{})
}

func TestEmitForRequestCustomerOnly(t *testing.T) {
	repo, svc := newNotificationFixture()

	request := &entity.ServiceRequest{
		Id:           uuid.New(),
		CustomerId:   uuid.New(),
		ServiceTitle: "Fix kitchen sink",
	}

	created, err := svc.EmitForRequest(context.Background(), request, constant.NotifRequestCreated,
		"Service request created", "Your request has been created.")
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, request.CustomerId, n.RecipientId)
	assert.Equal(t, constant.RoleCustomer, n.RecipientType)
	assert.Equal(t, constant.NotifRequestCreated, n.Type)
	require.NotNil(t, n.RequestId)
	assert.Equal(t, request.Id, *n.RequestId)
	assert.False(t, n.IsRead)
}

func TestEmitForRequestFansOutToProvider(t *testing.T) {
	repo, svc := newNotificationFixture()

	providerId := uuid.New()
	request := &entity.ServiceRequest{
		Id:                uuid.New(),
		CustomerId:        uuid.New(),
		ServiceProviderId: &providerId,
		ServiceTitle:      "Fix kitchen sink",
	}

	created, err := svc.EmitForRequest(context.Background(), request, constant.NotifRequestCancelled,
		"Service request cancelled", "The request has been cancelled.")
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	require.Len(t, repo.created, 2)
	assert.Equal(t, request.CustomerId, repo.created[0].RecipientId)
	assert.Equal(t, constant.RoleCustomer, repo.created[0].RecipientType)
	assert.Equal(t, providerId, repo.created[1].RecipientId)
	assert.Equal(t, constant.RoleProvider, repo.created[1].RecipientType)
}

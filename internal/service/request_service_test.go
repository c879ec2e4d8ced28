package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/entity"
	"hsms-be/internal/repository/contract"
	"hsms-be/internal/repository/specification"
	"hsms-be/pkg/events"
)

func plumbingCategory() *entity.ServiceCategory {
	return &entity.ServiceCategory{
		Name: "Plumbing",
		PriceRange: entity.PriceRange{
			Min:  200,
			Max:  2000,
			Unit: " per visit",
		},
		CommonServices: []entity.CommonService{
			{Name: "Tap Repair", TypicalPrice: 250, Duration: "30 min"},
			{Name: "Pipe Leakage Fix", TypicalPrice: 500, Duration: "1 hour"},
		},
	}
}

func TestEstimatePriceCommonServiceMatch(t *testing.T) {
	price, breakdown := estimatePrice(plumbingCategory(), "tap repair", 0)

	assert.Equal(t, 250.0, price)
	assert.Contains(t, breakdown, "Tap Repair")
	assert.Contains(t, breakdown, "30 min")
}

func TestEstimatePriceCommonServiceBeatsCallerEstimate(t *testing.T) {
	price, _ := estimatePrice(plumbingCategory(), "Pipe Leakage Fix", 9999)

	assert.Equal(t, 500.0, price)
}

func TestEstimatePriceCallerEstimate(t *testing.T) {
	price, breakdown := estimatePrice(plumbingCategory(), "", 750)

	assert.Equal(t, 750.0, price)
	assert.Contains(t, breakdown, "Plumbing")
}

func TestEstimatePriceRangeMidpointFallback(t *testing.T) {
	price, breakdown := estimatePrice(plumbingCategory(), "unknown service", 0)

	assert.Equal(t, 1100.0, price)
	assert.Contains(t, breakdown, "Plumbing")
	assert.Contains(t, breakdown, "200")
	assert.Contains(t, breakdown, "2000")
}

func TestParseScheduleDate(t *testing.T) {
	date, err := parseScheduleDate("2026-04-15")
	require.NoError(t, err)
	assert.Equal(t, time.April, date.Month())
	assert.Equal(t, 15, date.Day())

	date, err = parseScheduleDate("2026-04-15T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 9, date.Hour())

	_, err = parseScheduleDate("15/04/2026")
	assert.Error(t, err)
}

func TestStartOfToday(t *testing.T) {
	now := time.Date(2026, 4, 15, 18, 45, 12, 0, time.UTC)
	start := startOfToday(now)

	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), start)
	// A request for today is still valid in the evening.
	today := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, today.Before(start))
}

func TestRequestSortColumns(t *testing.T) {
	assert.Equal(t, "schedule_date", requestSortColumns["schedule.date"])
	assert.Equal(t, "estimated_price", requestSortColumns["estimatedPrice"])

	_, ok := requestSortColumns["status; DROP TABLE"]
	assert.False(t, ok)
}

type fakeRequestRepo struct {
	contract.RequestRepository
	stored  *entity.ServiceRequest
	updated bool
}

func (f *fakeRequestRepo) FindOne(context.Context, ...specification.Specification) (*entity.ServiceRequest, error) {
	return f.stored, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, r *entity.ServiceRequest) error {
	f.updated = true
	f.stored = r
	return nil
}

type stubNotifications struct {
	INotificationService
}

func (stubNotifications) EmitForRequest(_ context.Context, request *entity.ServiceRequest, _ constant.NotificationType, _, _ string) (int, error) {
	if request.ServiceProviderId != nil {
		return 2, nil
	}
	return 1, nil
}

type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, events.Event) error { return nil }

func newRequestFixture(stored *entity.ServiceRequest) (*fakeRequestRepo, IRequestService) {
	repo := &fakeRequestRepo{stored: stored}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{requests: repo}}
	return repo, NewRequestService(factory, stubNotifications{}, stubPublisher{}, nopLogger{})
}

func TestCancelRefusedFromCompletedEchoesStatus(t *testing.T) {
	repo, svc := newRequestFixture(&entity.ServiceRequest{
		Id:         uuid.New(),
		CustomerId: uuid.New(),
		Status:     constant.StatusCompleted,
	})

	_, _, err := svc.Cancel(context.Background(), repo.stored.CustomerId, repo.stored.Id,
		&dto.CancelRequestRequest{Reason: "changed my mind"})

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "completed")
	assert.False(t, repo.updated)
}

func TestRescheduleRejectsIdenticalSchedule(t *testing.T) {
	date := time.Now().UTC().AddDate(0, 0, 7)
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	repo, svc := newRequestFixture(&entity.ServiceRequest{
		Id:         uuid.New(),
		CustomerId: uuid.New(),
		Status:     constant.StatusRequested,
		Schedule: entity.Schedule{
			Date:     date,
			TimeSlot: constant.SlotMorning,
		},
	})

	_, _, err := svc.Reschedule(context.Background(), repo.stored.CustomerId, repo.stored.Id,
		&dto.RescheduleRequestRequest{
			Date:     date.Format("2006-01-02"),
			TimeSlot: string(constant.SlotMorning),
		})

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "must differ")
	assert.False(t, repo.updated)
}

func TestRescheduleRejectsPastDate(t *testing.T) {
	repo, svc := newRequestFixture(&entity.ServiceRequest{
		Id:         uuid.New(),
		CustomerId: uuid.New(),
		Status:     constant.StatusRequested,
	})

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	_, _, err := svc.Reschedule(context.Background(), repo.stored.CustomerId, repo.stored.Id,
		&dto.RescheduleRequestRequest{
			Date:     yesterday.Format("2006-01-02"),
			TimeSlot: string(constant.SlotAfternoon),
		})

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.False(t, repo.updated)
}

func TestRescheduleFromCancelledEchoesStatus(t *testing.T) {
	repo, svc := newRequestFixture(&entity.ServiceRequest{
		Id:         uuid.New(),
		CustomerId: uuid.New(),
		Status:     constant.StatusCancelled,
	})

	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	_, _, err := svc.Reschedule(context.Background(), repo.stored.CustomerId, repo.stored.Id,
		&dto.RescheduleRequestRequest{
			Date:     tomorrow.Format("2006-01-02"),
			TimeSlot: string(constant.SlotEvening),
		})

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "cancelled")
	assert.False(t, repo.updated)
}

func TestCancelWithAssignedProviderReportsTwoNotifications(t *testing.T) {
	providerId := uuid.New()
	repo, svc := newRequestFixture(&entity.ServiceRequest{
		Id:                uuid.New(),
		CustomerId:        uuid.New(),
		ServiceProviderId: &providerId,
		Status:            constant.StatusAssigned,
	})

	_, created, err := svc.Cancel(context.Background(), repo.stored.CustomerId, repo.stored.Id,
		&dto.CancelRequestRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, created)
	assert.True(t, repo.updated)
	assert.Equal(t, constant.StatusCancelled, repo.stored.Status)
}

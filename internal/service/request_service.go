package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hsms-be/internal/constant"
	"hsms-be/internal/dto"
	"hsms-be/internal/entity"
	"hsms-be/internal/pkg/logger"
	"hsms-be/internal/repository/specification"
	"hsms-be/internal/repository/unitofwork"
	"hsms-be/pkg/events"
)

var requestSortColumns = map[string]string{
	"createdAt":      "created_at",
	"schedule.date":  "schedule_date",
	"status":         "status",
	"estimatedPrice": "estimated_price",
	"updatedAt":      "updated_at",
}

type IRequestService interface {
	Create(ctx context.Context, customerId uuid.UUID, req *dto.CreateRequestRequest) (*dto.CreateRequestResponse, error)
	ListMine(ctx context.Context, customerId uuid.UUID, query *dto.ListRequestsQuery) ([]*dto.RequestResponse, map[string]interface{}, *dto.RequestStatistics, error)
	GetById(ctx context.Context, customerId, requestId uuid.UUID) (*dto.RequestDetailResponse, error)
	Cancel(ctx context.Context, customerId, requestId uuid.UUID, req *dto.CancelRequestRequest) (*dto.RequestResponse, int, error)
	Reschedule(ctx context.Context, customerId, requestId uuid.UUID, req *dto.RescheduleRequestRequest) (*dto.RequestResponse, int, error)

	ListOpen(ctx context.Context, query *dto.ListRequestsQuery) ([]*dto.RequestResponse, map[string]interface{}, error)
	ListAssigned(ctx context.Context, providerId uuid.UUID, query *dto.ListRequestsQuery) ([]*dto.RequestResponse, map[string]interface{}, error)
	Accept(ctx context.Context, providerId, requestId uuid.UUID) (*dto.RequestResponse, error)
	Start(ctx context.Context, providerId, requestId uuid.UUID) (*dto.RequestResponse, error)
	Complete(ctx context.Context, providerId, requestId uuid.UUID, req *dto.CompleteRequestRequest) (*dto.RequestResponse, error)
}

type requestService struct {
	uowFactory    unitofwork.RepositoryFactory
	notifications INotificationService
	publisher     IPublisherService
	log           logger.ILogger
}

func NewRequestService(
	uowFactory unitofwork.RepositoryFactory,
	notifications INotificationService,
	publisher IPublisherService,
	log logger.ILogger,
) IRequestService {
	return &requestService{
		uowFactory:    uowFactory,
		notifications: notifications,
		publisher:     publisher,
		log:           log,
	}
}

func parseScheduleDate(raw string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		date, err = time.Parse(time.RFC3339, raw)
	}
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid schedule date. Use YYYY-MM-DD")
	}
	return date, nil
}

func startOfToday(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *requestService) Create(ctx context.Context, customerId uuid.UUID, req *dto.CreateRequestRequest) (*dto.CreateRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Customer not found")
	}
	if !customer.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden,
			"Your account is deactivated. Please reactivate to create service requests.")
	}

	category, err := uow.CategoryRepository().FindOne(ctx,
		specification.ByID{ID: req.ServiceCategoryId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service category not found")
	}

	timeSlot, err := constant.ParseTimeSlot(req.Schedule.TimeSlot)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	scheduleDate, err := parseScheduleDate(req.Schedule.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if scheduleDate.Before(startOfToday(now)) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Schedule date must be today or in the future")
	}

	addr := req.ServiceAddress
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.Pincode == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Service address must include: street, city, state and pincode")
	}

	estimatedPrice, breakdown := estimatePrice(category, req.CommonServiceName, req.EstimatedPrice)

	city := strings.ToLower(strings.TrimSpace(addr.City))
	availableProviders, err := uow.ProviderRepository().Count(ctx,
		specification.ActiveOnly{},
		specification.NotSuspended{},
		specification.ByAvailability{Status: string(constant.AvailabilityAvailable)},
		specification.ServesCity{City: city},
		specification.HasAnySkill{Skills: category.RequiredSkills},
	)
	if err != nil {
		return nil, err
	}

	request := &entity.ServiceRequest{
		CustomerId:         customerId,
		ServiceType:        strings.ToLower(strings.TrimSpace(req.ServiceType)),
		ServiceCategoryId:  category.Id,
		ServiceTitle:       strings.TrimSpace(req.ServiceTitle),
		ServiceDescription: strings.TrimSpace(req.ServiceDescription),
		Schedule: entity.Schedule{
			Date:          scheduleDate,
			TimeSlot:      timeSlot,
			PreferredTime: req.Schedule.PreferredTime,
		},
		ServiceAddress: entity.Address{
			Street:    strings.TrimSpace(addr.Street),
			City:      city,
			State:     strings.ToLower(strings.TrimSpace(addr.State)),
			Pincode:   strings.TrimSpace(addr.Pincode),
			Landmarks: strings.TrimSpace(addr.Landmarks),
		},
		BeforeImages:   req.BeforeImages,
		EstimatedPrice: estimatedPrice,
		PricingDetails: entity.PricingDetails{
			BaseCharge: estimatedPrice,
			Breakdown:  breakdown,
		},
		PaymentStatus: "pending",
		Status:        constant.StatusRequested,
	}
	request.AppendHistory(constant.StatusRequested, constant.ActorCustomer, "Service request created", now)

	if err := uow.RequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	if _, err := s.notifications.EmitForRequest(ctx, request, constant.NotifRequestCreated,
		"Service request created",
		fmt.Sprintf("Your request %q has been created and is waiting for a provider.", request.ServiceTitle),
	); err != nil {
		s.log.Error("request", "Failed to write creation notification", map[string]interface{}{
			"request_id": request.Id,
			"error":      err.Error(),
		})
	}
	s.publishLifecycle(ctx, events.TypeRequestCreated, request)

	probe := dto.AvailabilityProbe{
		HasAvailableProviders:   availableProviders > 0,
		AvailableProvidersCount: availableProviders,
	}
	if probe.HasAvailableProviders {
		probe.Message = fmt.Sprintf("%d service provider(s) available in your area", availableProviders)
	} else {
		probe.Message = "No providers currently available in your area. We'll notify you when one becomes available"
	}

	return &dto.CreateRequestResponse{
		Request: *requestToResponse(request),
		Pricing: dto.RequestPricing{
			EstimatedPrice: estimatedPrice,
			PaymentStatus:  request.PaymentStatus,
			Breakdown:      breakdown,
		},
		Availability: probe,
	}, nil
}

// estimatePrice prefers a matching named common service; otherwise the
// category range midpoint. A caller-supplied estimate only survives when it
// is non-zero and no common service matches.
func estimatePrice(category *entity.ServiceCategory, commonServiceName string, callerEstimate float64) (float64, string) {
	if commonServiceName != "" {
		if cs := category.FindCommonService(commonServiceName); cs != nil {
			return cs.TypicalPrice, fmt.Sprintf("Standard %s service (%s)", cs.Name, cs.Duration)
		}
	}
	if callerEstimate > 0 {
		return callerEstimate, fmt.Sprintf("Customer estimate for %s", category.Name)
	}
	mid := category.PriceRange.Midpoint()
	return mid, fmt.Sprintf("Estimated from %s category range (%.0f - %.0f%s)",
		category.Name, category.PriceRange.Min, category.PriceRange.Max, category.PriceRange.Unit)
}

func (s *requestService) ListMine(ctx context.Context, customerId uuid.UUID, query *dto.ListRequestsQuery) ([]*dto.RequestResponse, map[string]interface{}, *dto.RequestStatistics, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.OwnedByCustomer{CustomerID: customerId},
	}
	if query.Status != "" {
		status, err := constant.ParseRequestStatus(query.Status)
		if err != nil {
			return nil, nil, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		filters = append(filters, specification.WithStatus{Status: status})
	}

	total, err := uow.RequestRepository().Count(ctx, filters...)
	if err != nil {
		return nil, nil, nil, err
	}

	column, ok := requestSortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	listSpecs := append(filters,
		specification.OrderBy{Field: column, Desc: query.Order == "desc"},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	requests, err := uow.RequestRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, nil, nil, err
	}

	byStatus, err := uow.RequestRepository().CountByStatus(ctx, customerId)
	if err != nil {
		return nil, nil, nil, err
	}
	stats := &dto.RequestStatistics{
		Total:      total,
		Requested:  byStatus[constant.StatusRequested],
		Assigned:   byStatus[constant.StatusAssigned],
		InProgress: byStatus[constant.StatusInProgress],
		Completed:  byStatus[constant.StatusCompleted],
		Cancelled:  byStatus[constant.StatusCancelled],
	}

	return requestsToResponses(requests), dto.Paginate(query.Page, query.Limit, total, "totalRequests"), stats, nil
}

func (s *requestService) GetById(ctx context.Context, customerId, requestId uuid.UUID) (*dto.RequestDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx,
		specification.ByID{ID: requestId},
		specification.OwnedByCustomer{CustomerID: customerId},
	)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service request not found")
	}

	now := time.Now()
	daysRemaining := int(request.Schedule.Date.Sub(now).Hours()/24) + 1
	if request.Schedule.Date.Before(now) {
		daysRemaining = 0
	}

	statusInfo := dto.StatusInfo{
		Current:       string(request.Status),
		CanCancel:     constant.CanCancel(request.Status),
		CanReschedule: constant.CanReschedule(request.Status),
		CanModify:     request.Status == constant.StatusRequested,
	}
	switch request.Status {
	case constant.StatusRequested:
		statusInfo.Message = "Your request is waiting for a service provider to accept."
	case constant.StatusAssigned:
		statusInfo.Message = "Assigned to a provider. Contact them to discuss details."
	case constant.StatusInProgress:
		statusInfo.Message = "Service is currently in progress."
	case constant.StatusCompleted:
		statusInfo.Message = "Service has been completed. Please rate your provider."
	case constant.StatusCancelled:
		reason := request.CancellationReason
		if reason == "" {
			reason = "Not specified"
		}
		statusInfo.Message = fmt.Sprintf("Request cancelled. Reason: %s", reason)
	}

	return &dto.RequestDetailResponse{
		Request: *requestToResponse(request),
		Timing: dto.RequestTiming{
			ScheduleDate:  request.Schedule.Date,
			TimeSlot:      string(request.Schedule.TimeSlot),
			PreferredTime: request.Schedule.PreferredTime,
			DaysRemaining: daysRemaining,
			IsUrgent:      daysRemaining > 0 && daysRemaining <= 2,
			IsOverdue:     daysRemaining <= 0 && !request.Status.Terminal(),
		},
		Status: statusInfo,
		Pricing: dto.RequestPricing{
			EstimatedPrice: request.EstimatedPrice,
			FinalPrice:     request.FinalPrice,
			PaymentStatus:  request.PaymentStatus,
			Breakdown:      request.PricingDetails.Breakdown,
		},
	}, nil
}

func (s *requestService) Cancel(ctx context.Context, customerId, requestId uuid.UUID, req *dto.CancelRequestRequest) (*dto.RequestResponse, int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx,
		specification.ByID{ID: requestId},
		specification.OwnedByCustomer{CustomerID: customerId},
	)
	if err != nil {
		return nil, 0, err
	}
	if request == nil {
		return nil, 0, fiber.NewError(fiber.StatusNotFound, "Service request not found")
	}
	if !constant.CanCancel(request.Status) {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Cannot cancel a request in %q state", request.Status))
	}

	now := time.Now()
	reason := strings.TrimSpace(req.Reason)
	note := "Request cancelled by customer"
	if reason != "" {
		note = fmt.Sprintf("Request cancelled by customer: %s", reason)
	}
	if err := request.Transition(constant.StatusCancelled, constant.ActorCustomer, note, now); err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	request.CancellationReason = reason
	request.CancelledBy = constant.ActorCustomer
	request.CancelledAt = &now

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return nil, 0, err
	}

	created, err := s.notifications.EmitForRequest(ctx, request, constant.NotifRequestCancelled,
		"Service request cancelled",
		fmt.Sprintf("Request %q has been cancelled.", request.ServiceTitle),
	)
	if err != nil {
		s.log.Error("request", "Failed to write cancellation notifications", map[string]interface{}{
			"request_id": request.Id,
			"error":      err.Error(),
		})
	}
	s.publishLifecycle(ctx, events.TypeRequestCancelled, request)

	return requestToResponse(request), created, nil
}

func (s *requestService) Reschedule(ctx context.Context, customerId, requestId uuid.UUID, req *dto.RescheduleRequestRequest) (*dto.RequestResponse, int, error) {
	timeSlot, err := constant.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	newDate, err := parseScheduleDate(req.Date)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now()
	if newDate.Before(startOfToday(now)) {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Schedule date must be today or in the future")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx,
		specification.ByID{ID: requestId},
		specification.OwnedByCustomer{CustomerID: customerId},
	)
	if err != nil {
		return nil, 0, err
	}
	if request == nil {
		return nil, 0, fiber.NewError(fiber.StatusNotFound, "Service request not found")
	}
	if !constant.CanReschedule(request.Status) {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Cannot reschedule a request in %q state", request.Status))
	}
	if request.Schedule.Date.Equal(newDate) && request.Schedule.TimeSlot == timeSlot {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest,
			"New schedule must differ from the current date and time slot")
	}

	oldDate := request.Schedule.Date
	request.Schedule.Date = newDate
	request.Schedule.TimeSlot = timeSlot
	request.Schedule.PreferredTime = req.PreferredTime
	request.AppendHistory(request.Status, constant.ActorCustomer,
		fmt.Sprintf("Rescheduled from %s to %s (%s)",
			oldDate.Format("2006-01-02"), newDate.Format("2006-01-02"), timeSlot),
		now)

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return nil, 0, err
	}

	created, err := s.notifications.EmitForRequest(ctx, request, constant.NotifRequestRescheduled,
		"Service request rescheduled",
		fmt.Sprintf("Request %q has been rescheduled to %s (%s).",
			request.ServiceTitle, newDate.Format("2006-01-02"), timeSlot),
	)
	if err != nil {
		s.log.Error("request", "Failed to write reschedule notifications", map[string]interface{}{
			"request_id": request.Id,
			"error":      err.Error(),
		})
	}
	s.publishLifecycle(ctx, events.TypeRequestRescheduled, request)

	return requestToResponse(request), created, nil
}

// ListOpen surfaces unassigned, still-requested work for providers to claim.
func (s *requestService) ListOpen(ctx context.Context, query *dto.ListRequestsQuery) ([]*dto.RequestResponse, map[string]interface{}, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.WithStatus{Status: constant.StatusRequested},
	}

	total, err := uow.RequestRepository().Count(ctx, filters...)
	if err != nil {
		return nil, nil, err
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "schedule_date", Desc: false},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	requests, err := uow.RequestRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, nil, err
	}
	return requestsToResponses(requests), dto.Paginate(query.Page, query.Limit, total, "totalRequests"), nil
}

func (s *requestService) ListAssigned(ctx context.Context, providerId uuid.UUID, query *dto.ListRequestsQuery) ([]*dto.RequestResponse, map[string]interface{}, error) {
	query.Normalize()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.AssignedToProvider{ProviderID: providerId},
	}
	if query.Status != "" {
		status, err := constant.ParseRequestStatus(query.Status)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		filters = append(filters, specification.WithStatus{Status: status})
	}

	total, err := uow.RequestRepository().Count(ctx, filters...)
	if err != nil {
		return nil, nil, err
	}

	column, ok := requestSortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	listSpecs := append(filters,
		specification.OrderBy{Field: column, Desc: query.Order == "desc"},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset()},
	)
	requests, err := uow.RequestRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, nil, err
	}
	return requestsToResponses(requests), dto.Paginate(query.Page, query.Limit, total, "totalRequests"), nil
}

func (s *requestService) Accept(ctx context.Context, providerId, requestId uuid.UUID) (*dto.RequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	provider, err := uow.ProviderRepository().FindOne(ctx,
		specification.ByID{ID: providerId},
		specification.ActiveOnly{},
		specification.NotSuspended{},
	)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account cannot accept requests")
	}

	request, err := uow.RequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service request not found")
	}
	if request.ServiceProviderId != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Request is already assigned")
	}

	now := time.Now()
	if err := request.Transition(constant.StatusAssigned, constant.ActorProvider,
		fmt.Sprintf("Accepted by %s", provider.Name), now); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	request.ServiceProviderId = &provider.Id

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if _, err := s.notifications.EmitForRequest(ctx, request, constant.NotifRequestAssigned,
		"Service request assigned",
		fmt.Sprintf("Request %q has been accepted by %s.", request.ServiceTitle, provider.Name),
	); err != nil {
		s.log.Error("request", "Failed to write assignment notifications", map[string]interface{}{
			"request_id": request.Id,
			"error":      err.Error(),
		})
	}
	s.publishLifecycle(ctx, events.TypeRequestAssigned, request)

	return requestToResponse(request), nil
}

func (s *requestService) Start(ctx context.Context, providerId, requestId uuid.UUID) (*dto.RequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx,
		specification.ByID{ID: requestId},
		specification.AssignedToProvider{ProviderID: providerId},
	)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service request not found")
	}

	now := time.Now()
	if err := request.Transition(constant.StatusInProgress, constant.ActorProvider, "Work started", now); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if _, err := s.notifications.EmitForRequest(ctx, request, constant.NotifRequestStarted,
		"Service started",
		fmt.Sprintf("Work on request %q has started.", request.ServiceTitle),
	); err != nil {
		s.log.Error("request", "Failed to write start notifications", map[string]interface{}{
			"request_id": request.Id,
			"error":      err.Error(),
		})
	}
	s.publishLifecycle(ctx, events.TypeRequestStarted, request)

	return requestToResponse(request), nil
}

func (s *requestService) Complete(ctx context.Context, providerId, requestId uuid.UUID, req *dto.CompleteRequestRequest) (*dto.RequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestRepository().FindOne(ctx,
		specification.ByID{ID: requestId},
		specification.AssignedToProvider{ProviderID: providerId},
	)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Service request not found")
	}

	now := time.Now()
	note := "Work completed"
	if req.Note != "" {
		note = fmt.Sprintf("Work completed: %s", req.Note)
	}
	if err := request.Transition(constant.StatusCompleted, constant.ActorProvider, note, now); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	finalPrice := req.FinalPrice
	if finalPrice <= 0 {
		finalPrice = request.EstimatedPrice + req.AdditionalCharge
	}
	request.FinalPrice = finalPrice
	request.PricingDetails.AdditionalCharge = req.AdditionalCharge
	request.AfterImages = req.AfterImages
	request.CompletedAt = &now

	if err := uow.RequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	// Completed jobs feed the provider's public counters.
	provider, err := uow.ProviderRepository().FindOne(ctx, specification.ByID{ID: providerId})
	if err == nil && provider != nil {
		provider.TotalJobsCompleted++
		if err := uow.ProviderRepository().Update(ctx, provider); err != nil {
			s.log.Error("request", "Failed to bump provider job counter", map[string]interface{}{
				"provider_id": providerId,
				"error":       err.Error(),
			})
		}
	}

	if _, err := s.notifications.EmitForRequest(ctx, request, constant.NotifRequestCompleted,
		"Service completed",
		fmt.Sprintf("Request %q has been completed. Final price: %.2f.", request.ServiceTitle, finalPrice),
	); err != nil {
		s.log.Error("request", "Failed to write completion notifications", map[string]interface{}{
			"request_id": request.Id,
			"error":      err.Error(),
		})
	}
	s.publishLifecycle(ctx, events.TypeRequestCompleted, request)

	return requestToResponse(request), nil
}

func (s *requestService) publishLifecycle(ctx context.Context, eventType string, request *entity.ServiceRequest) {
	evt := events.NewBaseEvent(eventType, map[string]interface{}{
		"request_id":  request.Id,
		"customer_id": request.CustomerId,
		"status":      string(request.Status),
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Error("request", "Failed to publish lifecycle event", map[string]interface{}{
			"request_id": request.Id,
			"event":      eventType,
			"error":      err.Error(),
		})
	}
}

func requestsToResponses(requests []*entity.ServiceRequest) []*dto.RequestResponse {
	responses := make([]*dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, requestToResponse(r))
	}
	return responses
}

func requestToResponse(r *entity.ServiceRequest) *dto.RequestResponse {
	resp := &dto.RequestResponse{
		Id:                 r.Id,
		CustomerId:         r.CustomerId,
		ServiceProviderId:  r.ServiceProviderId,
		ServiceType:        r.ServiceType,
		ServiceCategoryId:  r.ServiceCategoryId,
		ServiceTitle:       r.ServiceTitle,
		ServiceDescription: r.ServiceDescription,
		Schedule: dto.ScheduleResponse{
			Date:          r.Schedule.Date,
			TimeSlot:      string(r.Schedule.TimeSlot),
			PreferredTime: r.Schedule.PreferredTime,
		},
		ServiceAddress: dto.AddressInput{
			Street:    r.ServiceAddress.Street,
			City:      r.ServiceAddress.City,
			State:     r.ServiceAddress.State,
			Pincode:   r.ServiceAddress.Pincode,
			Landmarks: r.ServiceAddress.Landmarks,
		},
		BeforeImages:       r.BeforeImages,
		AfterImages:        r.AfterImages,
		EstimatedPrice:     r.EstimatedPrice,
		FinalPrice:         r.FinalPrice,
		PaymentStatus:      r.PaymentStatus,
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		IsRecurring:        r.IsRecurring,
		CompletedAt:        r.CompletedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	for _, h := range r.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, dto.StatusEntryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			Note:      h.Note,
			UpdatedBy: string(h.UpdatedBy),
		})
	}
	return resp
}

package mapper

import (
	"gorm.io/datatypes"

	"hsms-be/internal/constant"
	"hsms-be/internal/entity"
	"hsms-be/internal/model"
)

type RequestMapper struct{}

func NewRequestMapper() *RequestMapper {
	return &RequestMapper{}
}

func (m *RequestMapper) ToEntity(r *model.ServiceRequest) *entity.ServiceRequest {
	if r == nil {
		return nil
	}
	history := make([]entity.StatusEntry, len(r.StatusHistory))
	for i, h := range r.StatusHistory {
		history[i] = entity.StatusEntry{
			Status:    constant.RequestStatus(h.Status),
			Timestamp: h.Timestamp,
			Note:      h.Note,
			UpdatedBy: constant.Actor(h.UpdatedBy),
		}
	}
	var recurring *entity.RecurringPattern
	if r.RecurringPattern != nil {
		p := r.RecurringPattern.Data()
		recurring = &entity.RecurringPattern{
			Frequency:       p.Frequency,
			EndDate:         p.EndDate,
			NextServiceDate: p.NextServiceDate,
		}
	}
	return &entity.ServiceRequest{
		Id:                 r.Id,
		CustomerId:         r.CustomerId,
		ServiceProviderId:  r.ServiceProviderId,
		ServiceType:        r.ServiceType,
		ServiceCategoryId:  r.ServiceCategoryId,
		ServiceTitle:       r.ServiceTitle,
		ServiceDescription: r.ServiceDescription,
		Schedule: entity.Schedule{
			Date:          r.Schedule.Date,
			TimeSlot:      constant.TimeSlot(r.Schedule.TimeSlot),
			PreferredTime: r.Schedule.PreferredTime,
		},
		ServiceAddress: entity.Address{
			Street:    r.ServiceAddress.Street,
			City:      r.ServiceAddress.City,
			State:     r.ServiceAddress.State,
			Pincode:   r.ServiceAddress.Pincode,
			Landmarks: r.ServiceAddress.Landmarks,
		},
		BeforeImages:   r.BeforeImages,
		AfterImages:    r.AfterImages,
		EstimatedPrice: r.EstimatedPrice,
		FinalPrice:     r.FinalPrice,
		PricingDetails: entity.PricingDetails{
			BaseCharge:       r.PricingDetails.BaseCharge,
			AdditionalCharge: r.PricingDetails.AdditionalCharge,
			Breakdown:        r.PricingDetails.Breakdown,
		},
		PaymentStatus:      r.PaymentStatus,
		PaymentMethod:      r.PaymentMethod,
		Status:             constant.RequestStatus(r.Status),
		StatusHistory:      history,
		CancellationReason: r.CancellationReason,
		CancelledBy:        constant.Actor(r.CancelledBy),
		CancelledAt:        r.CancelledAt,
		IsRecurring:        r.IsRecurring,
		RecurringPattern:   recurring,
		ParentRequestId:    r.ParentRequestId,
		CompletedAt:        r.CompletedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (m *RequestMapper) ToModel(r *entity.ServiceRequest) *model.ServiceRequest {
	if r == nil {
		return nil
	}
	history := make([]model.StatusEntry, len(r.StatusHistory))
	for i, h := range r.StatusHistory {
		history[i] = model.StatusEntry{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			Note:      h.Note,
			UpdatedBy: string(h.UpdatedBy),
		}
	}
	var recurring *datatypes.JSONType[model.RecurringPattern]
	if r.RecurringPattern != nil {
		p := datatypes.NewJSONType(model.RecurringPattern{
			Frequency:       r.RecurringPattern.Frequency,
			EndDate:         r.RecurringPattern.EndDate,
			NextServiceDate: r.RecurringPattern.NextServiceDate,
		})
		recurring = &p
	}
	return &model.ServiceRequest{
		Id:                 r.Id,
		CustomerId:         r.CustomerId,
		ServiceProviderId:  r.ServiceProviderId,
		ServiceType:        r.ServiceType,
		ServiceCategoryId:  r.ServiceCategoryId,
		ServiceTitle:       r.ServiceTitle,
		ServiceDescription: r.ServiceDescription,
		Schedule: model.Schedule{
			Date:          r.Schedule.Date,
			TimeSlot:      string(r.Schedule.TimeSlot),
			PreferredTime: r.Schedule.PreferredTime,
		},
		ServiceAddress: model.Address{
			Street:    r.ServiceAddress.Street,
			City:      r.ServiceAddress.City,
			State:     r.ServiceAddress.State,
			Pincode:   r.ServiceAddress.Pincode,
			Landmarks: r.ServiceAddress.Landmarks,
		},
		BeforeImages:   datatypes.NewJSONSlice(r.BeforeImages),
		AfterImages:    datatypes.NewJSONSlice(r.AfterImages),
		EstimatedPrice: r.EstimatedPrice,
		FinalPrice:     r.FinalPrice,
		PricingDetails: model.PricingDetails{
			BaseCharge:       r.PricingDetails.BaseCharge,
			AdditionalCharge: r.PricingDetails.AdditionalCharge,
			Breakdown:        r.PricingDetails.Breakdown,
		},
		PaymentStatus:      r.PaymentStatus,
		PaymentMethod:      r.PaymentMethod,
		Status:             string(r.Status),
		StatusHistory:      datatypes.NewJSONSlice(history),
		CancellationReason: r.CancellationReason,
		CancelledBy:        string(r.CancelledBy),
		CancelledAt:        r.CancelledAt,
		IsRecurring:        r.IsRecurring,
		RecurringPattern:   recurring,
		ParentRequestId:    r.ParentRequestId,
		CompletedAt:        r.CompletedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (m *RequestMapper) ToEntities(requests []*model.ServiceRequest) []*entity.ServiceRequest {
	entities := make([]*entity.ServiceRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

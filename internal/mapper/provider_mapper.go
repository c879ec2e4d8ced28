package mapper

import (
	"gorm.io/datatypes"

	"hsms-be/internal/constant"
	"hsms-be/internal/entity"
	"hsms-be/internal/model"
)

type ProviderMapper struct{}

func NewProviderMapper() *ProviderMapper {
	return &ProviderMapper{}
}

func (m *ProviderMapper) ToEntity(p *model.ServiceProvider) *entity.ServiceProvider {
	if p == nil {
		return nil
	}
	certs := make([]entity.Certification, len(p.Certifications))
	for i, c := range p.Certifications {
		certs[i] = entity.Certification{
			Name:           c.Name,
			IssuedBy:       c.IssuedBy,
			Year:           c.Year,
			CertificateURL: c.CertificateURL,
		}
	}
	return &entity.ServiceProvider{
		Id:                 p.Id,
		Name:               p.Name,
		Email:              p.Email,
		Phone:              p.Phone,
		PasswordHash:       p.PasswordHash,
		ProfilePicture:     p.ProfilePicture,
		Bio:                p.Bio,
		Skills:             p.Skills,
		ExperienceYears:    p.ExperienceYears,
		Certifications:     certs,
		PricingType:        p.PricingType,
		AvailabilityStatus: constant.AvailabilityStatus(p.AvailabilityStatus),
		WorkingHours: entity.WorkingHours{
			From:    p.WorkingHours.From,
			To:      p.WorkingHours.To,
			DaysOff: p.WorkingHours.DaysOff,
		},
		ServiceArea: entity.ServiceArea{
			Cities: p.ServiceAreaCities,
			Areas:  p.ServiceAreaAreas,
		},
		AverageRating:       p.AverageRating,
		TotalReviews:        p.TotalReviews,
		TotalJobsCompleted:  p.TotalJobsCompleted,
		IsActive:            p.IsActive,
		IsSuspended:         p.IsSuspended,
		SuspensionReason:    p.SuspensionReason,
		LastLogin:           p.LastLogin,
		DeactivatedAt:       p.DeactivatedAt,
		ReactivationToken:   p.ReactivationToken,
		ReactivationExpires: p.ReactivationExpires,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (m *ProviderMapper) ToModel(p *entity.ServiceProvider) *model.ServiceProvider {
	if p == nil {
		return nil
	}
	certs := make([]model.Certification, len(p.Certifications))
	for i, c := range p.Certifications {
		certs[i] = model.Certification{
			Name:           c.Name,
			IssuedBy:       c.IssuedBy,
			Year:           c.Year,
			CertificateURL: c.CertificateURL,
		}
	}
	return &model.ServiceProvider{
		Id:                 p.Id,
		Name:               p.Name,
		Email:              p.Email,
		Phone:              p.Phone,
		PasswordHash:       p.PasswordHash,
		ProfilePicture:     p.ProfilePicture,
		Bio:                p.Bio,
		Skills:             datatypes.NewJSONSlice(p.Skills),
		ExperienceYears:    p.ExperienceYears,
		Certifications:     datatypes.NewJSONSlice(certs),
		PricingType:        p.PricingType,
		AvailabilityStatus: string(p.AvailabilityStatus),
		WorkingHours: model.WorkingHours{
			From:    p.WorkingHours.From,
			To:      p.WorkingHours.To,
			DaysOff: datatypes.NewJSONSlice(p.WorkingHours.DaysOff),
		},
		ServiceAreaCities:   datatypes.NewJSONSlice(p.ServiceArea.Cities),
		ServiceAreaAreas:    datatypes.NewJSONSlice(p.ServiceArea.Areas),
		AverageRating:       p.AverageRating,
		TotalReviews:        p.TotalReviews,
		TotalJobsCompleted:  p.TotalJobsCompleted,
		IsActive:            p.IsActive,
		IsSuspended:         p.IsSuspended,
		SuspensionReason:    p.SuspensionReason,
		LastLogin:           p.LastLogin,
		DeactivatedAt:       p.DeactivatedAt,
		ReactivationToken:   p.ReactivationToken,
		ReactivationExpires: p.ReactivationExpires,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (m *ProviderMapper) ToEntities(providers []*model.ServiceProvider) []*entity.ServiceProvider {
	entities := make([]*entity.ServiceProvider, len(providers))
	for i, p := range providers {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

package mapper

import (
	"hsms-be/internal/entity"
	"hsms-be/internal/model"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	return &entity.Customer{
		Id:           c.Id,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		PasswordHash: c.PasswordHash,
		Address: entity.Address{
			Street:    c.Address.Street,
			City:      c.Address.City,
			State:     c.Address.State,
			Pincode:   c.Address.Pincode,
			Landmarks: c.Address.Landmarks,
		},
		ProfilePicture:      c.ProfilePicture,
		IsActive:            c.IsActive,
		LastLogin:           c.LastLogin,
		DeactivatedAt:       c.DeactivatedAt,
		ReactivationToken:   c.ReactivationToken,
		ReactivationExpires: c.ReactivationExpires,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}
	return &model.Customer{
		Id:           c.Id,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		PasswordHash: c.PasswordHash,
		Address: model.Address{
			Street:    c.Address.Street,
			City:      c.Address.City,
			State:     c.Address.State,
			Pincode:   c.Address.Pincode,
			Landmarks: c.Address.Landmarks,
		},
		ProfilePicture:      c.ProfilePicture,
		IsActive:            c.IsActive,
		LastLogin:           c.LastLogin,
		DeactivatedAt:       c.DeactivatedAt,
		ReactivationToken:   c.ReactivationToken,
		ReactivationExpires: c.ReactivationExpires,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *CustomerMapper) ToEntities(customers []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(customers))
	for i, c := range customers {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

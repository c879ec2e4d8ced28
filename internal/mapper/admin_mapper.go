package mapper

import (
	"hsms-be/internal/entity"
	"hsms-be/internal/model"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) ToEntity(a *model.Admin) *entity.Admin {
	if a == nil {
		return nil
	}
	return &entity.Admin{
		Id:           a.Id,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		LastLogin:    a.LastLogin,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToModel(a *entity.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	return &model.Admin{
		Id:           a.Id,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		LastLogin:    a.LastLogin,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

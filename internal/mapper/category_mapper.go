package mapper

import (
	"gorm.io/datatypes"

	"hsms-be/internal/entity"
	"hsms-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.ServiceCategory) *entity.ServiceCategory {
	if c == nil {
		return nil
	}
	services := make([]entity.CommonService, len(c.CommonServices))
	for i, s := range c.CommonServices {
		services[i] = entity.CommonService{
			Name:         s.Name,
			TypicalPrice: s.TypicalPrice,
			Duration:     s.Duration,
		}
	}
	return &entity.ServiceCategory{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		PriceRange: entity.PriceRange{
			Min:  c.PriceRange.Min,
			Max:  c.PriceRange.Max,
			Unit: c.PriceRange.Unit,
		},
		CommonServices: services,
		RequiredSkills: c.RequiredSkills,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *CategoryMapper) ToModel(c *entity.ServiceCategory) *model.ServiceCategory {
	if c == nil {
		return nil
	}
	services := make([]model.CommonService, len(c.CommonServices))
	for i, s := range c.CommonServices {
		services[i] = model.CommonService{
			Name:         s.Name,
			TypicalPrice: s.TypicalPrice,
			Duration:     s.Duration,
		}
	}
	return &model.ServiceCategory{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		PriceRange: model.PriceRange{
			Min:  c.PriceRange.Min,
			Max:  c.PriceRange.Max,
			Unit: c.PriceRange.Unit,
		},
		CommonServices: datatypes.NewJSONSlice(services),
		RequiredSkills: datatypes.NewJSONSlice(c.RequiredSkills),
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.ServiceCategory) []*entity.ServiceCategory {
	entities := make([]*entity.ServiceCategory, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

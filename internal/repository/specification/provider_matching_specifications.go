package specification

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HasSkill matches providers whose JSONB skills array contains the skill.
type HasSkill struct {
	Skill string
}

func (s HasSkill) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(datatypes.JSONArrayQuery("skills").Contains(s.Skill))
}

// HasAnySkill matches providers carrying at least one of the given skills.
// Empty input matches everything, mirroring a category with no requirements.
type HasAnySkill struct {
	Skills []string
}

func (s HasAnySkill) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Skills) == 0 {
		return db
	}
	cond := db.Session(&gorm.Session{NewDB: true}).
		Where(datatypes.JSONArrayQuery("skills").Contains(s.Skills[0]))
	for _, skill := range s.Skills[1:] {
		cond = cond.Or(datatypes.JSONArrayQuery("skills").Contains(skill))
	}
	return db.Where(cond)
}

// ServesCity matches providers whose service area lists the city either as a
// city or as an area, matching the original lookup.
type ServesCity struct {
	City string
}

func (s ServesCity) Apply(db *gorm.DB) *gorm.DB {
	cond := db.Session(&gorm.Session{NewDB: true}).
		Where(datatypes.JSONArrayQuery("service_area_cities").Contains(s.City)).
		Or(datatypes.JSONArrayQuery("service_area_areas").Contains(s.City))
	return db.Where(cond)
}

// ServesArea matches against the areas list only.
type ServesArea struct {
	Area string
}

func (s ServesArea) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(datatypes.JSONArrayQuery("service_area_areas").Contains(s.Area))
}

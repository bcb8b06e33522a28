package models

import "gorm.io/gorm"

// SkillCategory is the stored code of a skill's category.
type SkillCategory string

const (
	SkillCategoryEngineering SkillCategory = "ENG"
	SkillCategoryProgramming SkillCategory = "PROG"
	SkillCategoryDesign      SkillCategory = "DESIGN"
	SkillCategorySoft        SkillCategory = "SOFT"
)

// SkillCategories lists the categories sorted by stored code, which is also
// the order skills are listed and grouped in.
var SkillCategories = []SkillCategory{
	SkillCategoryDesign,
	SkillCategoryEngineering,
	SkillCategoryProgramming,
	SkillCategorySoft,
}

// Label returns the human readable category name.
func (c SkillCategory) Label() string {
	switch c {
	case SkillCategoryEngineering:
		return "Engineering"
	case SkillCategoryProgramming:
		return "Programming"
	case SkillCategoryDesign:
		return "Design"
	case SkillCategorySoft:
		return "Soft Skills"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories {
		if c == known {
			return true
		}
	}
	return false
}

const (
	// MinSkillLevel and MaxSkillLevel bound Skill.Level.
	MinSkillLevel = 0
	MaxSkillLevel = 100
	// ResetSkillLevel is the value applied by the bulk reset action.
	ResetSkillLevel = 50
)

// Skill is a single entry of the skills matrix.
type Skill struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	Name     string        `gorm:"size:64;not null" json:"name"`
	Level    int           `gorm:"not null;check:level >= 0 AND level <= 100" json:"level"`
	Category SkillCategory `gorm:"size:10;not null;index" json:"category"`
	Order    int           `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// BeforeSave defaults an unset category to Engineering.
func (s *Skill) BeforeSave(_ *gorm.DB) error {
	if s.Category == "" {
		s.Category = SkillCategoryEngineering
	}
	return nil
}

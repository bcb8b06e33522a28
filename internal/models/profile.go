package models

import "time"

// Education is a degree or course of study, listed by Order descending.
type Education struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Degree      string `gorm:"size:200;not null" json:"degree"`
	Institution string `gorm:"size:200;not null" json:"institution"`
	Period      string `gorm:"size:100;not null" json:"period"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Current     bool   `gorm:"not null;default:false" json:"current"`
	Order       int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName keeps the uncountable noun as the table name.
func (Education) TableName() string {
	return "education"
}

// Certification is listed by IssueDate descending, undated entries last.
type Certification struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Issuer        string     `gorm:"size:200;not null" json:"issuer"`
	IssueDate     *time.Time `gorm:"type:date" json:"issue_date,omitempty"`
	CredentialURL string     `gorm:"size:255" json:"credential_url,omitempty"`
	InProgress    bool       `gorm:"not null;default:false" json:"in_progress"`
}

// Extracurricular is an activity or role outside study, listed by Order descending.
type Extracurricular struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"size:200;not null" json:"title"`
	Organization string `gorm:"size:200;not null" json:"organization"`
	Role         string `gorm:"size:100" json:"role,omitempty"`
	Period       string `gorm:"size:100;not null" json:"period"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	Current      bool   `gorm:"not null;default:false" json:"current"`
	Order        int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

package models

import "time"

// Field bounds of the contact form.
const (
	ContactNameMaxLength    = 80
	ContactSubjectMaxLength = 140
	ContactMessageMinLength = 10
)

// ContactMessage is a visitor submission from the contact form.
// CreatedAt is written once on insert; Read is the only field the operator
// can change afterwards.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:80;not null" json:"name"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	Subject   string    `gorm:"size:140" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"<-:create;autoCreateTime;index" json:"created_at"`
	Read      bool      `gorm:"not null;default:false;index" json:"read"`
}

package validation

import (
	"strings"

	"portfolio/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ContactForm is a visitor submission as received.
type ContactForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (f ContactForm) Normalize() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate applies the contact form rules. Call it on a normalized form so the
// message length is measured without surrounding whitespace.
func (f ContactForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("Please enter your name"),
			validation.RuneLength(0, models.ContactNameMaxLength).Error("Name must be at most 80 characters"),
		),
		validation.Field(&f.Email,
			validation.Required.Error("Please enter your email address"),
			validation.RuneLength(0, 254).Error("Email address is too long"),
			is.EmailFormat.Error("Please enter a valid email address"),
		),
		validation.Field(&f.Subject,
			validation.RuneLength(0, models.ContactSubjectMaxLength).Error("Subject must be at most 140 characters"),
		),
		validation.Field(&f.Message,
			validation.Required.Error("Please enter a message"),
			validation.RuneLength(models.ContactMessageMinLength, 0).Error("Message must be at least 10 characters"),
		),
	)
}

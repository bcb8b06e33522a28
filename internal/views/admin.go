package views

import (
	"fmt"
	"net/url"
	"strings"

	"portfolio/internal/derive"
	"portfolio/internal/models"
)

// SubjectPreviewLength is how many characters of a subject the message list shows.
const SubjectPreviewLength = 50

// AdminProject adds the computed columns of the project listing.
type AdminProject struct {
	models.Project
	TechnologyCount int `json:"technology_count"`
}

// NewAdminProjects maps projects to admin rows.
func NewAdminProjects(projects []models.Project) []AdminProject {
	out := make([]AdminProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, AdminProject{Project: p, TechnologyCount: len(p.TechnologiesList())})
	}
	return out
}

// AdminSkill adds the computed columns of the skill listing.
type AdminSkill struct {
	models.Skill
	CategoryLabel string `json:"category_label"`
	LevelBar      string `json:"level_bar"`
}

// NewAdminSkills maps skills to admin rows.
func NewAdminSkills(skills []models.Skill) []AdminSkill {
	out := make([]AdminSkill, 0, len(skills))
	for _, s := range skills {
		out = append(out, AdminSkill{
			Skill:         s,
			CategoryLabel: s.Category.Label(),
			LevelBar:      fmt.Sprintf("%d%%", s.Level),
		})
	}
	return out
}

// AdminMessage adds the computed columns of the contact message listing.
type AdminMessage struct {
	models.ContactMessage
	SubjectPreview string `json:"subject_preview"`
	ReplyURL       string `json:"reply_url"`
}

// NewAdminMessage builds the admin row for m.
func NewAdminMessage(m models.ContactMessage) AdminMessage {
	return AdminMessage{
		ContactMessage: m,
		SubjectPreview: derive.Preview(m.Subject, SubjectPreviewLength),
		ReplyURL:       replyURL(m),
	}
}

// NewAdminMessages maps messages to admin rows.
func NewAdminMessages(messages []models.ContactMessage) []AdminMessage {
	out := make([]AdminMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewAdminMessage(m))
	}
	return out
}

// replyURL is a mailto link answering m. Spaces are percent-encoded since
// mail clients do not treat "+" as a space.
func replyURL(m models.ContactMessage) string {
	subject := strings.ReplaceAll(url.QueryEscape("Re: "+m.Subject), "+", "%20")
	return "mailto:" + m.Email + "?subject=" + subject
}

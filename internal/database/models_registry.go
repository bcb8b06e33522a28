package database

import "portfolio/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.SiteSettings{},
		&models.About{},
		&models.Skill{},
		&models.Project{},
		&models.ProjectImage{},
		&models.ContactMessage{},
		&models.Education{},
		&models.Certification{},
		&models.Extracurricular{},
		&models.Tag{},
		&models.Post{},
	}
}

package daemon

import (
	"gorm.io/gorm"

	"github.com/lumina-bi/lumina-bi/internal/config"
	"github.com/lumina-bi/lumina-bi/internal/db/models"
)

// seed creates the default organization, the default role and an initial
// admin account when the database is empty. Directory provisioning depends on
// the default organization and role existing, so they are seeded eagerly.
func seed(cfg *config.Config, db *gorm.DB) error {
	var org models.Organization

	err := db.Where("name = ?", cfg.Defaults.Organization).
		FirstOrCreate(&org, models.Organization{Name: cfg.Defaults.Organization}).Error
	if err != nil {
		return err
	}

	var role models.Role

	err = db.Where("name = ? AND org_id = ?", cfg.Defaults.Role, org.ID).
		FirstOrCreate(&role, models.Role{Name: cfg.Defaults.Role, OrgID: org.ID}).Error
	if err != nil {
		return err
	}

	var count int64
	db.Model(&models.User{}).Count(&count)

	if count == 0 {
		// Create default admin user
		admin := models.User{
			Username:   "admin",
			Password:   models.HashPassword("changeme"),
			Active:     true,
			AuthSource: models.AuthSourceLocal,
		}

		if err = db.Create(&admin).Error; err != nil {
			return err
		}

		err = db.Create(&models.RelUserOrganization{
			OrgID:    org.ID,
			UserID:   admin.ID,
			Role:     models.OrgRoleOwner,
			CreateBy: admin.ID,
		}).Error
		if err != nil {
			return err
		}
	}

	return nil
}

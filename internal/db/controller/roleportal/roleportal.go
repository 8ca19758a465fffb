// Package roleportal provides CRUD and visibility queries for the
// rel_role_portal junction table binding roles to dashboard portals.
package roleportal

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lumina-bi/lumina-bi/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Insert creates a single visibility override row.
// Returns the number of rows inserted.
func Insert(db *gorm.DB, rel *models.RelRolePortal) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Create(rel)

	return result.RowsAffected, result.Error
}

// InsertBatch creates visibility override rows in bulk.
// Returns the number of rows inserted.
func InsertBatch(db *gorm.DB, rels []models.RelRolePortal) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}
	if len(rels) == 0 {
		return 0, nil
	}

	result := db.Create(&rels)

	return result.RowsAffected, result.Error
}

// Delete removes the override row for a (portal, role) pair.
// Returns the number of rows removed; zero is not an error.
func Delete(db *gorm.DB, portalID, roleID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("portal_id = ? AND role_id = ?", portalID, roleID).
		Delete(&models.RelRolePortal{})

	return result.RowsAffected, result.Error
}

// DeleteByRole removes every override row carried by a role.
func DeleteByRole(db *gorm.DB, roleID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("role_id = ?", roleID).Delete(&models.RelRolePortal{})

	return result.RowsAffected, result.Error
}

// DeleteByPortal removes every override row for a portal.
func DeleteByPortal(db *gorm.DB, portalID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("portal_id = ?", portalID).Delete(&models.RelRolePortal{})

	return result.RowsAffected, result.Error
}

// DeleteByProject removes override rows for every portal in a project.
func DeleteByProject(db *gorm.DB, projectID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Exec(
		`DELETE FROM rel_role_portal WHERE portal_id IN (
			SELECT id FROM dashboard_portal WHERE project_id = ?)`,
		projectID,
	)

	return result.RowsAffected, result.Error
}

// DeleteByRoleAndProject removes a role's override rows restricted to
// portals of the given project.
func DeleteByRoleAndProject(db *gorm.DB, roleID, projectID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Exec(
		`DELETE FROM rel_role_portal WHERE role_id = ? AND portal_id IN (
			SELECT id FROM dashboard_portal WHERE project_id = ?)`,
		roleID, projectID,
	)

	return result.RowsAffected, result.Error
}

// ExcludedRoles returns the ids of every role in the portal's organization
// that has no explicit visible override for the portal. Unlike the dashboard
// and display variants this walks portal -> project -> org-wide roles and
// filters with NOT EXISTS instead of reading visible=false rows.
func ExcludedRoles(db *gorm.DB, portalID uint64) ([]uint64, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roleIDs []uint64

	err := db.Raw(
		`SELECT r.id FROM dashboard_portal dp
		INNER JOIN project p ON dp.project_id = p.id
		INNER JOIN role r ON r.org_id = p.org_id
		WHERE dp.id = ?
		AND NOT EXISTS (
			SELECT 1 FROM rel_role_portal rp
			WHERE r.id = rp.role_id AND rp.visible = ? AND rp.portal_id = dp.id)`,
		portalID, true,
	).Scan(&roleIDs).Error
	if err != nil {
		return nil, err
	}

	return roleIDs, nil
}

// ExcludedPortals returns the ids of portals in the project that have no
// explicit visible override for the role.
func ExcludedPortals(db *gorm.DB, roleID, projectID uint64) ([]uint64, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var portalIDs []uint64

	err := db.Raw(
		`SELECT p.id FROM dashboard_portal p
		LEFT JOIN rel_role_portal rrp ON p.id = rrp.portal_id AND rrp.role_id = ? AND rrp.visible = ?
		WHERE p.project_id = ? AND rrp.role_id IS NULL`,
		roleID, true, projectID,
	).Scan(&portalIDs).Error
	if err != nil {
		return nil, err
	}

	return portalIDs, nil
}

// DisabledByUser returns (role, portal) pairs for every role the user holds
// that has no visible override on a portal of the project.
func DisabledByUser(db *gorm.DB, userID, projectID uint64) ([]models.RoleDisableViz, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var pairs []models.RoleDisableViz

	err := db.Raw(
		`SELECT ru.role_id AS role_id, dp.id AS viz_id FROM dashboard_portal dp
		INNER JOIN rel_role_user ru ON ru.user_id = ? AND dp.project_id = ?
		LEFT JOIN rel_role_portal rp ON ru.role_id = rp.role_id AND rp.portal_id = dp.id AND rp.visible = ?
		WHERE rp.role_id IS NULL`,
		userID, projectID, true,
	).Scan(&pairs).Error
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

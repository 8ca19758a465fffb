// Package roledisplay provides CRUD and visibility queries for the
// rel_role_display junction table binding roles to displays.
package roledisplay

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lumina-bi/lumina-bi/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Insert creates a single visibility override row.
// Returns the number of rows inserted.
func Insert(db *gorm.DB, rel *models.RelRoleDisplay) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Create(rel)

	return result.RowsAffected, result.Error
}

// InsertBatch creates visibility override rows in bulk.
// Returns the number of rows inserted.
func InsertBatch(db *gorm.DB, rels []models.RelRoleDisplay) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}
	if len(rels) == 0 {
		return 0, nil
	}

	result := db.Create(&rels)

	return result.RowsAffected, result.Error
}

// Delete removes the override row for a (display, role) pair.
// Returns the number of rows removed; zero is not an error.
func Delete(db *gorm.DB, displayID, roleID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("display_id = ? AND role_id = ?", displayID, roleID).
		Delete(&models.RelRoleDisplay{})

	return result.RowsAffected, result.Error
}

// DeleteByRole removes every override row carried by a role.
func DeleteByRole(db *gorm.DB, roleID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("role_id = ?", roleID).Delete(&models.RelRoleDisplay{})

	return result.RowsAffected, result.Error
}

// DeleteByDisplay removes every override row for a display.
func DeleteByDisplay(db *gorm.DB, displayID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("display_id = ?", displayID).Delete(&models.RelRoleDisplay{})

	return result.RowsAffected, result.Error
}

// DeleteByProject removes override rows for every display in a project.
func DeleteByProject(db *gorm.DB, projectID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Exec(
		`DELETE FROM rel_role_display WHERE display_id IN (
			SELECT id FROM display WHERE project_id = ?)`,
		projectID,
	)

	return result.RowsAffected, result.Error
}

// DeleteByRoleAndProject removes a role's override rows restricted to
// displays of the given project.
func DeleteByRoleAndProject(db *gorm.DB, roleID, projectID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Exec(
		`DELETE FROM rel_role_display WHERE role_id = ? AND display_id IN (
			SELECT id FROM display WHERE project_id = ?)`,
		roleID, projectID,
	)

	return result.RowsAffected, result.Error
}

// CopyRoleRelations duplicates every override row of the origin display onto
// the copy, attributing the new rows to the acting user. Used when a display
// is copied so the copy inherits the origin's role visibility.
func CopyRoleRelations(db *gorm.DB, originDisplayID, copyDisplayID, userID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Exec(
		`INSERT INTO rel_role_display (role_id, display_id, visible, create_by, create_time)
		SELECT role_id, ?, visible, ?, CURRENT_TIMESTAMP FROM rel_role_display WHERE display_id = ?`,
		copyDisplayID, userID, originDisplayID,
	)

	return result.RowsAffected, result.Error
}

// ExcludedRoles returns the ids of roles holding an explicit visible=false
// override for the display.
func ExcludedRoles(db *gorm.DB, displayID uint64) ([]uint64, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roleIDs []uint64

	err := db.Raw(
		`SELECT role_id FROM rel_role_display WHERE display_id = ? AND visible = ?`,
		displayID, false,
	).Scan(&roleIDs).Error
	if err != nil {
		return nil, err
	}

	return roleIDs, nil
}

// ExcludedDisplays returns the ids of displays in the project that have no
// explicit visible override for the role. Displays are project-scoped, so the
// anti-join filters on display.project_id directly, without a portal hop.
func ExcludedDisplays(db *gorm.DB, roleID, projectID uint64) ([]uint64, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var displayIDs []uint64

	err := db.Raw(
		`SELECT d.id FROM display d
		LEFT JOIN rel_role_display rd ON d.id = rd.display_id AND rd.role_id = ? AND rd.visible = ?
		WHERE d.project_id = ? AND rd.role_id IS NULL`,
		roleID, true, projectID,
	).Scan(&displayIDs).Error
	if err != nil {
		return nil, err
	}

	return displayIDs, nil
}

// DisabledByUser returns (role, display) pairs for every role the user holds
// that has no visible override on a display of the project.
func DisabledByUser(db *gorm.DB, userID, projectID uint64) ([]models.RoleDisableViz, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var pairs []models.RoleDisableViz

	err := db.Raw(
		`SELECT ru.role_id AS role_id, d.id AS viz_id FROM display d
		INNER JOIN rel_role_user ru ON ru.user_id = ? AND d.project_id = ?
		LEFT JOIN rel_role_display rd ON ru.role_id = rd.role_id AND rd.display_id = d.id AND rd.visible = ?
		WHERE rd.role_id IS NULL`,
		userID, projectID, true,
	).Scan(&pairs).Error
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

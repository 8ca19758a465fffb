// Package roledashboard provides CRUD and visibility queries for the
// rel_role_dashboard junction table binding roles to dashboards.
package roledashboard

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/lumina-bi/lumina-bi/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Insert creates a single visibility override row.
// Returns the number of rows inserted.
func Insert(db *gorm.DB, rel *models.RelRoleDashboard) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Create(rel)

	return result.RowsAffected, result.Error
}

// InsertBatch creates visibility override rows in bulk.
// Returns the number of rows inserted.
func InsertBatch(db *gorm.DB, rels []models.RelRoleDashboard) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}
	if len(rels) == 0 {
		return 0, nil
	}

	result := db.Create(&rels)

	return result.RowsAffected, result.Error
}

// Delete removes the override row for a (dashboard, role) pair.
// Returns the number of rows removed; zero is not an error.
func Delete(db *gorm.DB, dashboardID, roleID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("dashboard_id = ? AND role_id = ?", dashboardID, roleID).
		Delete(&models.RelRoleDashboard{})

	return result.RowsAffected, result.Error
}

// DeleteByRole removes every override row carried by a role.
func DeleteByRole(db *gorm.DB, roleID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("role_id = ?", roleID).Delete(&models.RelRoleDashboard{})

	return result.RowsAffected, result.Error
}

// DeleteByDashboard removes override rows for a dashboard and all of its
// descendants, located through the comma-joined full_parent_id ancestor chain.
func DeleteByDashboard(db *gorm.DB, dashboardID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	pattern := "%," + strconv.FormatUint(dashboardID, 10) + ",%"

	result := db.Exec(
		`DELETE FROM rel_role_dashboard WHERE dashboard_id IN (
			SELECT id FROM dashboard
			WHERE id = ? OR (',' || full_parent_id || ',') LIKE ?)`,
		dashboardID, pattern,
	)

	return result.RowsAffected, result.Error
}

// DeleteByDashboards removes override rows for the given dashboard id set.
func DeleteByDashboards(db *gorm.DB, dashboardIDs []uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}
	if len(dashboardIDs) == 0 {
		return 0, nil
	}

	result := db.Where("dashboard_id IN ?", dashboardIDs).
		Delete(&models.RelRoleDashboard{})

	return result.RowsAffected, result.Error
}

// DeleteByPortal removes override rows for every dashboard in a portal.
func DeleteByPortal(db *gorm.DB, portalID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Exec(
		`DELETE FROM rel_role_dashboard WHERE dashboard_id IN (
			SELECT d.id FROM dashboard d WHERE d.dashboard_portal_id = ?)`,
		portalID,
	)

	return result.RowsAffected, result.Error
}

// DeleteByProject removes override rows for every dashboard in a project,
// resolved through the owning portal.
func DeleteByProject(db *gorm.DB, projectID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Exec(
		`DELETE FROM rel_role_dashboard WHERE dashboard_id IN (
			SELECT d.id FROM dashboard d
			LEFT JOIN dashboard_portal p ON p.id = d.dashboard_portal_id
			WHERE p.project_id = ?)`,
		projectID,
	)

	return result.RowsAffected, result.Error
}

// DeleteByRoleAndProject removes a role's override rows restricted to
// dashboards of the given project. Rows of the same role in other projects
// are left untouched.
func DeleteByRoleAndProject(db *gorm.DB, roleID, projectID uint64) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Exec(
		`DELETE FROM rel_role_dashboard WHERE role_id = ? AND dashboard_id IN (
			SELECT d.id FROM dashboard d
			LEFT JOIN dashboard_portal p ON p.id = d.dashboard_portal_id
			WHERE p.project_id = ?)`,
		roleID, projectID,
	)

	return result.RowsAffected, result.Error
}

// ExcludedRoles returns the ids of roles holding an explicit visible=false
// override for the dashboard.
func ExcludedRoles(db *gorm.DB, dashboardID uint64) ([]uint64, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roleIDs []uint64

	err := db.Raw(
		`SELECT role_id FROM rel_role_dashboard WHERE dashboard_id = ? AND visible = ?`,
		dashboardID, false,
	).Scan(&roleIDs).Error
	if err != nil {
		return nil, err
	}

	return roleIDs, nil
}

// ExcludedDashboards returns the ids of dashboards in the project that have no
// explicit visible override for the role. Anti-join: dashboards resolved to
// the project through their portal, LEFT JOIN to the junction restricted to
// this role and visible=true, keeping rows with no junction match.
func ExcludedDashboards(db *gorm.DB, roleID, projectID uint64) ([]uint64, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var dashboardIDs []uint64

	err := db.Raw(
		`SELECT d.id FROM dashboard d
		INNER JOIN dashboard_portal dp ON dp.id = d.dashboard_portal_id
		LEFT JOIN rel_role_dashboard rd ON d.id = rd.dashboard_id AND rd.role_id = ? AND rd.visible = ?
		WHERE dp.project_id = ? AND rd.role_id IS NULL`,
		roleID, true, projectID,
	).Scan(&dashboardIDs).Error
	if err != nil {
		return nil, err
	}

	return dashboardIDs, nil
}

// DisabledByUser returns (role, dashboard) pairs for every role the user
// holds that has no visible override on a dashboard of the portal. The join
// runs through rel_role_user, unlike the role-scoped queries.
func DisabledByUser(db *gorm.DB, userID, portalID uint64) ([]models.RoleDisableViz, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var pairs []models.RoleDisableViz

	err := db.Raw(
		`SELECT ru.role_id AS role_id, d.id AS viz_id FROM dashboard d
		INNER JOIN rel_role_user ru ON ru.user_id = ? AND d.dashboard_portal_id = ?
		LEFT JOIN rel_role_dashboard rd ON ru.role_id = rd.role_id AND rd.dashboard_id = d.id AND rd.visible = ?
		WHERE rd.role_id IS NULL`,
		userID, portalID, true,
	).Scan(&pairs).Error
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

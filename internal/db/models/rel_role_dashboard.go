package models

import "time"

// RelRoleDashboard is a visibility override row binding a role to a dashboard.
// A row with Visible true grants the role explicit access; a row with Visible
// false explicitly hides the dashboard. Absence of a row falls back to the
// caller's organization-role scoping.
type RelRoleDashboard struct {
	// RoleID is the ID of the role the override applies to.
	RoleID uint64 `gorm:"primaryKey;column:role_id"`
	// DashboardID is the ID of the dashboard the override applies to.
	DashboardID uint64 `gorm:"primaryKey;column:dashboard_id"`
	// Visible grants (true) or revokes (false) access for the role.
	Visible bool `gorm:"not null;default:false"`
	// CreateBy is the ID of the user that created the override.
	CreateBy uint64 `gorm:"column:create_by"`
	// CreateTime is the timestamp when the override was created.
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime"`
}

// TableName specifies the database table name for the RelRoleDashboard model.
func (RelRoleDashboard) TableName() string {
	return "rel_role_dashboard"
}

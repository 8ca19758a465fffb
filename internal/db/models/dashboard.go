package models

import "time"

// Dashboard is a portal-scoped viz artifact. Dashboards form a hierarchy:
// FullParentID encodes the comma-joined chain of ancestor ids, so deleting a
// dashboard can locate every descendant with a single containment match.
type Dashboard struct {
	// ID is the unique identifier for the dashboard.
	ID uint64 `gorm:"primaryKey"`
	// DashboardPortalID is the ID of the portal owning the dashboard.
	DashboardPortalID uint64 `gorm:"column:dashboard_portal_id;not null;index"`
	// Name is the display name of the dashboard.
	Name string `gorm:"size:100;not null"`
	// ParentID is the ID of the direct parent dashboard, 0 for roots.
	ParentID uint64 `gorm:"column:parent_id"`
	// FullParentID is the comma-joined ancestor id chain, empty for roots.
	FullParentID string `gorm:"column:full_parent_id;size:255"`
	// CreatedAt is the timestamp when the dashboard was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the dashboard was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Dashboard model.
func (Dashboard) TableName() string {
	return "dashboard"
}

package models

import "time"

// Role represents an organization-scoped role. Roles are assigned to users
// and carry visibility overrides for dashboards, displays and portals.
type Role struct {
	// ID is the unique identifier for the role.
	ID uint64 `gorm:"primaryKey"`
	// OrgID is the ID of the organization the role belongs to.
	OrgID uint64 `gorm:"column:org_id;not null;index"`
	// Name is the name of the role (e.g. "analyst", "viewer").
	Name string `gorm:"size:100;not null"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"size:255"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Role model.
func (Role) TableName() string {
	return "role"
}

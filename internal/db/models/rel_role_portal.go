package models

import "time"

// RelRolePortal is a visibility override row binding a role to a dashboard
// portal. Semantics match RelRoleDashboard.
type RelRolePortal struct {
	RoleID     uint64    `gorm:"primaryKey;column:role_id"`
	PortalID   uint64    `gorm:"primaryKey;column:portal_id"`
	Visible    bool      `gorm:"not null;default:false"`
	CreateBy   uint64    `gorm:"column:create_by"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime"`
}

// TableName specifies the database table name for the RelRolePortal model.
func (RelRolePortal) TableName() string {
	return "rel_role_portal"
}

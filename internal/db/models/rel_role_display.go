package models

import "time"

// RelRoleDisplay is a visibility override row binding a role to a display.
// Semantics match RelRoleDashboard.
type RelRoleDisplay struct {
	RoleID     uint64    `gorm:"primaryKey;column:role_id"`
	DisplayID  uint64    `gorm:"primaryKey;column:display_id"`
	Visible    bool      `gorm:"not null;default:false"`
	CreateBy   uint64    `gorm:"column:create_by"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime"`
}

// TableName specifies the database table name for the RelRoleDisplay model.
func (RelRoleDisplay) TableName() string {
	return "rel_role_display"
}

package models

import "time"

// RelRoleUser represents the many-to-many relationship between roles and users.
type RelRoleUser struct {
	// RoleID is the ID of the role in this assignment.
	RoleID uint64 `gorm:"primaryKey;column:role_id"`
	// UserID is the ID of the user in this assignment.
	UserID uint64 `gorm:"primaryKey;column:user_id"`
	// CreateBy is the ID of the user that created this assignment.
	CreateBy uint64 `gorm:"column:create_by"`
	// CreateTime is the timestamp when the assignment was created.
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime"`
}

// TableName specifies the database table name for the RelRoleUser model.
func (RelRoleUser) TableName() string {
	return "rel_role_user"
}

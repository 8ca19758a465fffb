package models

import "time"

// Organization membership levels.
const (
	// OrgRoleMember is a regular organization member.
	OrgRoleMember = 0
	// OrgRoleOwner owns the organization and may administer it.
	OrgRoleOwner = 1
)

// RelUserOrganization represents the many-to-many relationship between users
// and organizations. Directory-provisioned users receive a member row in the
// configured default organization on first login.
type RelUserOrganization struct {
	// OrgID is the ID of the organization in this membership.
	OrgID uint64 `gorm:"primaryKey;column:org_id"`
	// UserID is the ID of the user in this membership.
	UserID uint64 `gorm:"primaryKey;column:user_id"`
	// Role is the membership level (OrgRoleMember or OrgRoleOwner).
	Role int `gorm:"not null;default:0"`
	// CreateBy is the ID of the user that created this membership.
	CreateBy uint64 `gorm:"column:create_by"`
	// CreateTime is the timestamp when the membership was created.
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime"`
}

// TableName specifies the database table name for the RelUserOrganization model.
func (RelUserOrganization) TableName() string {
	return "rel_user_organization"
}

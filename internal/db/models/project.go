package models

import "time"

// Project is the unit viz artifacts are scoped to within an organization.
type Project struct {
	ID        uint64 `gorm:"primaryKey"`
	OrgID     uint64 `gorm:"column:org_id;not null;index"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Project model.
func (Project) TableName() string {
	return "project"
}

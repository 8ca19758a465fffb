package models

import "time"

// DashboardPortal is a project-scoped container grouping dashboards.
type DashboardPortal struct {
	ID          uint64 `gorm:"primaryKey"`
	ProjectID   uint64 `gorm:"column:project_id;not null;index"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for the DashboardPortal model.
func (DashboardPortal) TableName() string {
	return "dashboard_portal"
}

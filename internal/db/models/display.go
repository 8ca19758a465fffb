package models

import "time"

// Display is a project-scoped viz artifact (a slideshow-style presentation).
type Display struct {
	ID          uint64 `gorm:"primaryKey"`
	ProjectID   uint64 `gorm:"column:project_id;not null;index"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for the Display model.
func (Display) TableName() string {
	return "display"
}

package models

import "time"

// Organization represents a tenant grouping users, roles and projects.
type Organization struct {
	// ID is the unique identifier for the organization.
	ID uint64 `gorm:"primaryKey"`
	// Name is the unique name of the organization.
	Name string `gorm:"unique;size:100;not null"`
	// Description provides a human-readable description of the organization.
	Description string `gorm:"size:255"`
	// CreatedAt is the timestamp when the organization was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the organization was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Organization model.
func (Organization) TableName() string {
	return "organization"
}

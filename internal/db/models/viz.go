package models

// RoleDisableViz is a (role, viz artifact) pair produced by the per-user
// visibility queries: the user holds the role, and the role has no explicit
// visible override for the artifact. It is a scan target, not a table.
type RoleDisableViz struct {
	RoleID uint64 `gorm:"column:role_id"`
	VizID  uint64 `gorm:"column:viz_id"`
}

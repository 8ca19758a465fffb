package config

import (
	"errors"
)

var (
	// ErrUnknownDBEngine error if config db.gormengine is not a supported engine.
	ErrUnknownDBEngine = errors.New("toml config db.gormengine must be mysql, postgres or sqlite")

	// ErrDBNameEmpty error if config db.name is empty.
	ErrDBNameEmpty = errors.New("toml config db.name can not be empty")

	// ErrDefaultOrganizationEmpty error if config defaults.organization is empty.
	ErrDefaultOrganizationEmpty = errors.New("toml config defaults.organization can not be empty")

	// ErrDefaultRoleEmpty error if config defaults.role is empty.
	ErrDefaultRoleEmpty = errors.New("toml config defaults.role can not be empty")
)

package auth

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found in the database or directory.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAccountDisabled is returned when attempting to authenticate a disabled user account.
	ErrUserAccountDisabled = errors.New("user account is disabled")

	// ErrInvalidPassword is returned when the provided password is incorrect during authentication.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrRegistrationFailed is returned when the user row could not be written
	// during directory provisioning.
	ErrRegistrationFailed = errors.New("directory user registration failed")

	// ErrDefaultOrganizationNotFound is returned when the configured default
	// organization does not exist at provisioning time.
	ErrDefaultOrganizationNotFound = errors.New("default organization not found")

	// ErrDefaultRoleNotFound is returned when the configured default role does
	// not exist at provisioning time.
	ErrDefaultRoleNotFound = errors.New("default role not found")
)

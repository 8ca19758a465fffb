// Package auth provides authentication and identity provisioning.
//
// Two authentication sources are supported:
//   - Local database authentication with Argon2id password hashing
//   - LDAP/Active Directory authentication with bind-as-user probing
//
// # Directory lookup
//
// LDAPProvider binds to the directory with the caller's own credentials as an
// authentication probe, then searches for the person entry and maps it into a
// Person value. A bind failure, a search failure and an empty search result
// are indistinguishable to callers: all yield no person. Failures are logged.
//
// # Provisioning
//
// Service.Login implements find-or-register: the first successful directory
// login creates the local user, its membership in the configured default
// organization and its assignment to the configured default role, all inside
// a single transaction. Partial provisioning never survives a failed step.
//
// Example usage:
//
//	provider, err := auth.NewLDAPProvider(ldapConfig)
//	service := auth.NewService(db, provider, "Lumina", "viewer")
//	user, err := service.Login(username, password)
package auth

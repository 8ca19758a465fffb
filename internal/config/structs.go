package config

import (
	"github.com/lumina-bi/lumina-bi/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode  bool // enable dev mode for development
	Title    string
	DB       DB
	LDAP     LDAP
	Defaults Defaults
	Log      logger.Log
}

// LDAP implements directory integration settings.
// An empty URL disables directory integration entirely.
type LDAP struct {
	URL        string // directory server url (ldap:// or ldaps://)
	DomainName string // account suffix forming the bind identity, e.g. "@corp.com"
	BaseDN     string // base DN for person searches
	SkipVerify bool   // skip TLS certificate verification (testing only)
	Timeout    int    // connection and search timeout in seconds
}

// Defaults names the organization and role attached to directory-provisioned
// users on their first login.
type Defaults struct {
	Organization string
	Role         string
}

// Package main provides the entry point for the Lumina BI persistence and
// identity layer. The binary migrates and seeds the relational schema backing
// the platform's visualization entities (dashboards, displays, portals), the
// role-visibility junction tables controlling who sees what, and the directory
// integration that provisions local accounts on first LDAP login. The
// application uses gorm for data persistence against MySQL, PostgreSQL or
// SQLite.
package main

package auth

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/rs/zerolog/log"
)

// ErrLDAPDisabled is returned when LDAP authentication is disabled via configuration.
var ErrLDAPDisabled = errors.New("ldap authentication is disabled")

// LDAPConfig holds LDAP/Active Directory configuration for authentication.
type LDAPConfig struct {
	// URL is the directory server URL (ldap:// or ldaps://).
	// An empty URL disables directory integration.
	URL string
	// DomainName is the account suffix appended to form the bind identity
	// (e.g. "@corp.com").
	DomainName string
	// BaseDN is the base distinguished name for person searches.
	BaseDN string
	// SkipVerify skips TLS certificate verification (insecure, for testing only).
	SkipVerify bool
	// Timeout is the connection and search timeout in seconds.
	Timeout int
}

// Enabled reports whether directory integration is configured.
func (c *LDAPConfig) Enabled() bool {
	return c.URL != ""
}

// Person is a directory entry mapped for provisioning. It is ephemeral:
// nothing persists it directly, it only feeds local user creation.
type Person struct {
	// Name is the person's display name (cn).
	Name string
	// AccountName is the account name (sAMAccountName).
	AccountName string
	// Email is the person's mail attribute.
	Email string
}

// LDAPProvider handles directory authentication and person lookup.
type LDAPProvider struct {
	config *LDAPConfig
}

// NewLDAPProvider creates a new LDAP provider.
func NewLDAPProvider(config *LDAPConfig) (*LDAPProvider, error) {
	if !config.Enabled() {
		return nil, ErrLDAPDisabled
	}

	if config.Timeout == 0 {
		config.Timeout = 10
	}

	return &LDAPProvider{config: config}, nil
}

// Connect establishes a connection to the directory server.
func (p *LDAPProvider) Connect() (*ldap.Conn, error) {
	var tlsConfig *tls.Config
	if strings.HasPrefix(p.config.URL, "ldaps://") {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: p.config.SkipVerify, //nolint:gosec // skipping verifying tls is ok
		}
	}

	conn, err := ldap.DialURL(p.config.URL, ldap.DialWithTLSConfig(tlsConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LDAP server: %w", err)
	}

	if p.config.Timeout > 0 {
		conn.SetTimeout(time.Duration(p.config.Timeout) * time.Second)
	}

	return conn, nil
}

// NormalizeUsername strips the configured domain suffix case-insensitively and
// lowercases the account name, yielding the canonical local account name.
func (p *LDAPProvider) NormalizeUsername(username string) string {
	suffix := strings.ToLower(p.config.DomainName)
	if suffix != "" && strings.HasSuffix(strings.ToLower(username), suffix) {
		username = username[:len(username)-len(suffix)]
	}

	return strings.ToLower(username)
}

// BindIdentity returns the identity used to bind as the user: the normalized
// account name with the canonical domain suffix reapplied.
func (p *LDAPProvider) BindIdentity(username string) string {
	return p.NormalizeUsername(username) + p.config.DomainName
}

// FindByUsername authenticates the supplied credentials with a bind-as-user
// probe and returns the matching directory person. Every failure mode (dial,
// bind, search, no result) yields nil: a directory outage is indistinguishable
// from wrong credentials. The connection is released on all exit paths.
func (p *LDAPProvider) FindByUsername(username, password string) *Person {
	person, err := p.lookup(username, password)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("ldap lookup failed")
		return nil
	}

	return person
}

func (p *LDAPProvider) lookup(username, password string) (*Person, error) {
	account := p.NormalizeUsername(username)

	conn, err := p.Connect()
	if err != nil {
		return nil, err
	}

	defer func() {
		if errClose := conn.Close(); errClose != nil {
			log.Warn().Err(errClose).Msg("failed to close LDAP connection")
		}
	}()

	if err = conn.Bind(account+p.config.DomainName, password); err != nil {
		return nil, fmt.Errorf("bind as user failed: %w", err)
	}

	filter := fmt.Sprintf(
		"(&(objectClass=person)(sAMAccountName=%s))",
		ldap.EscapeFilter(account),
	)

	searchRequest := ldap.NewSearchRequest(
		p.config.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, // Size limit
		p.config.Timeout,
		false,
		filter,
		[]string{"cn", "sAMAccountName", "mail"},
		nil,
	)

	searchResult, err := conn.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to search for person: %w", err)
	}

	if len(searchResult.Entries) == 0 {
		return nil, nil
	}

	entry := searchResult.Entries[0]

	return &Person{
		Name:        entry.GetAttributeValue("cn"),
		AccountName: entry.GetAttributeValue("sAMAccountName"),
		Email:       entry.GetAttributeValue("mail"),
	}, nil
}

// TestConnection tests the directory server connection.
// Returns nil if the server is reachable, otherwise returns an error.
func (p *LDAPProvider) TestConnection() error {
	conn, err := p.Connect()
	if err != nil {
		return err
	}

	if errClose := conn.Close(); errClose != nil {
		log.Warn().Err(errClose).Msg("failed to close LDAP connection")
	}

	return nil
}

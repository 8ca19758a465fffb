package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(t *testing.T) *LDAPProvider {
	t.Helper()

	provider, err := NewLDAPProvider(&LDAPConfig{
		URL:        "ldap://127.0.0.1:389",
		DomainName: "@corp.com",
		BaseDN:     "dc=corp,dc=com",
	})
	require.NoError(t, err)

	return provider
}

func TestNewLDAPProviderDisabled(t *testing.T) {
	provider, err := NewLDAPProvider(&LDAPConfig{URL: ""})
	require.ErrorIs(t, err, ErrLDAPDisabled)
	assert.Nil(t, provider)
}

func TestNewLDAPProviderDefaults(t *testing.T) {
	cfg := &LDAPConfig{URL: "ldap://127.0.0.1:389"}

	_, err := NewLDAPProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Timeout)
}

func TestLDAPConfigEnabled(t *testing.T) {
	assert.False(t, (&LDAPConfig{}).Enabled())
	assert.True(t, (&LDAPConfig{URL: "ldap://127.0.0.1:389"}).Enabled())
}

func TestNormalizeUsername(t *testing.T) {
	provider := testProvider(t)

	testCases := []struct {
		name     string
		username string
		expected string
	}{
		{"plain account name", "alice", "alice"},
		{"uppercase account name", "ALICE", "alice"},
		{"suffix stripped", "alice@corp.com", "alice"},
		{"uppercase suffix stripped", "ALICE@CORP.COM", "alice"},
		{"mixed case suffix stripped", "Bob@Corp.Com", "bob"},
		{"foreign domain kept", "alice@other.org", "alice@other.org"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, provider.NormalizeUsername(tc.username))
		})
	}
}

func TestBindIdentity(t *testing.T) {
	provider := testProvider(t)

	// case-insensitive suffix strip, canonical suffix reapplied
	assert.Equal(t, "alice@corp.com", provider.BindIdentity("ALICE@CORP.COM"))
	assert.Equal(t, "alice@corp.com", provider.BindIdentity("alice"))
}

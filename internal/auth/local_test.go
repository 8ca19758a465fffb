package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-bi/lumina-bi/internal/db/models"
)

func TestLocalAuthenticate(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.User{
		Username:   "carol",
		Email:      "carol@corp.com",
		Password:   models.HashPassword("s3cret"),
		AuthSource: models.AuthSourceLocal,
		Active:     true,
	}).Error)

	require.NoError(t, db.Create(&models.User{
		Username:   "alice",
		Email:      "alice@corp.com",
		Password:   models.LDAPUserPassword,
		AuthSource: models.AuthSourceLDAP,
		Active:     true,
	}).Error)

	require.NoError(t, db.Create(&models.User{
		Username:   "dave",
		Email:      "dave@corp.com",
		Password:   models.HashPassword("s3cret"),
		AuthSource: models.AuthSourceLocal,
		Active:     false,
	}).Error)

	provider := NewLocalProvider(db)

	user, err := provider.Authenticate("carol", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)

	_, err = provider.Authenticate("carol", "wrong")
	require.ErrorIs(t, err, ErrInvalidPassword)

	// directory-provisioned accounts never authenticate locally
	_, err = provider.Authenticate("alice", models.LDAPUserPassword)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = provider.Authenticate("dave", "s3cret")
	require.ErrorIs(t, err, ErrUserAccountDisabled)

	_, err = provider.Authenticate("nobody", "s3cret")
	require.ErrorIs(t, err, ErrUserNotFound)
}

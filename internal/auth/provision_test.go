package auth

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lumina-bi/lumina-bi/internal/db/models"
)

const (
	testOrganization = "Lumina"
	testRole         = "viewer"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.RelUserOrganization{},
		&models.Role{},
		&models.RelRoleUser{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedDefaults(t *testing.T, db *gorm.DB) (orgID, roleID uint64) {
	t.Helper()

	org := models.Organization{Name: testOrganization}
	require.NoError(t, db.Create(&org).Error)

	role := models.Role{Name: testRole, OrgID: org.ID}
	require.NoError(t, db.Create(&role).Error)

	return org.ID, role.ID
}

// stubFinder satisfies PersonFinder without a directory server.
type stubFinder struct {
	person *Person
}

func (s stubFinder) FindByUsername(_, _ string) *Person {
	return s.person
}

func alicePerson() *Person {
	return &Person{
		Name:        "Alice Example",
		AccountName: "alice",
		Email:       "alice@corp.com",
	}
}

func TestRegisterPerson(t *testing.T) {
	db := setupTestDB(t)
	orgID, roleID := seedDefaults(t, db)

	service := NewService(db, stubFinder{}, testOrganization, testRole)

	user, err := service.RegisterPerson(alicePerson())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.True(t, user.Active)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@corp.com", user.Email)
	assert.Equal(t, models.AuthSourceLDAP, user.AuthSource)
	assert.Equal(t, models.LDAPUserPassword, user.Password)

	var membership models.RelUserOrganization
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&membership).Error)
	assert.Equal(t, orgID, membership.OrgID)
	assert.Equal(t, models.OrgRoleMember, membership.Role)
	assert.Equal(t, user.ID, membership.CreateBy)

	var assignment models.RelRoleUser
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&assignment).Error)
	assert.Equal(t, roleID, assignment.RoleID)
}

func TestRegisterPersonMissingOrganization(t *testing.T) {
	db := setupTestDB(t)
	// no defaults seeded at all

	service := NewService(db, stubFinder{}, testOrganization, testRole)

	user, err := service.RegisterPerson(alicePerson())
	require.ErrorIs(t, err, ErrDefaultOrganizationNotFound)
	assert.Nil(t, user)

	// the user insert must have been rolled back
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterPersonMissingRoleRollsBackEverything(t *testing.T) {
	db := setupTestDB(t)

	org := models.Organization{Name: testOrganization}
	require.NoError(t, db.Create(&org).Error)
	// default role deliberately absent

	service := NewService(db, stubFinder{}, testOrganization, testRole)

	user, err := service.RegisterPerson(alicePerson())
	require.ErrorIs(t, err, ErrDefaultRoleNotFound)
	assert.Nil(t, user)

	// neither the user nor the membership written before the failure survive
	var users, memberships int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.RelUserOrganization{}).Count(&memberships)
	assert.Zero(t, users)
	assert.Zero(t, memberships)
}

func TestLoginProvisionsOnFirstLogin(t *testing.T) {
	db := setupTestDB(t)
	seedDefaults(t, db)

	service := NewService(db, stubFinder{person: alicePerson()}, testOrganization, testRole)

	first, err := service.Login("ALICE@CORP.COM", "secret")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := service.Login("alice", "secret")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)

	// find-or-register never duplicates the account
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginUnknownPerson(t *testing.T) {
	db := setupTestDB(t)
	seedDefaults(t, db)

	service := NewService(db, stubFinder{person: nil}, testOrganization, testRole)

	user, err := service.Login("nobody", "whatever")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestLoginDisabledUser(t *testing.T) {
	db := setupTestDB(t)
	seedDefaults(t, db)

	require.NoError(t, db.Create(&models.User{
		Username:   "alice",
		Email:      "alice@corp.com",
		Password:   models.LDAPUserPassword,
		AuthSource: models.AuthSourceLDAP,
		Active:     false,
	}).Error)

	service := NewService(db, stubFinder{person: alicePerson()}, testOrganization, testRole)

	user, err := service.Login("alice", "secret")
	require.ErrorIs(t, err, ErrUserAccountDisabled)
	assert.Nil(t, user)
}

package auth

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lumina-bi/lumina-bi/internal/db/models"
)

// PersonFinder looks up a directory person, authenticating with the supplied
// credentials. A nil result means not found or not authenticated.
type PersonFinder interface {
	FindByUsername(username, password string) *Person
}

// Service implements directory login with lazy local provisioning.
type Service struct {
	db                  *gorm.DB
	finder              PersonFinder
	defaultOrganization string
	defaultRole         string
}

// NewService creates a provisioning service. defaultOrganization and
// defaultRole name the organization and role every directory-provisioned user
// is attached to on first login.
func NewService(db *gorm.DB, finder PersonFinder, defaultOrganization, defaultRole string) *Service {
	return &Service{
		db:                  db,
		finder:              finder,
		defaultOrganization: defaultOrganization,
		defaultRole:         defaultRole,
	}
}

// RegisterPerson creates the local identity for a directory person: an active
// user carrying the LDAP sentinel password, a member row in the default
// organization and an assignment to the default role. The whole sequence runs
// in one transaction; any failed step rolls back every prior write.
func (s *Service) RegisterPerson(person *Person) (*models.User, error) {
	user := &models.User{
		Active:     true,
		Username:   person.AccountName,
		Email:      person.Email,
		Name:       person.Name,
		Password:   models.LDAPUserPassword,
		AuthSource: models.AuthSourceLDAP,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Create(user)
		if result.Error != nil {
			return fmt.Errorf("failed to create user: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			log.Error().Str("email", user.Email).Msg("directory registration failed")
			return ErrRegistrationFailed
		}

		var org models.Organization

		errOrg := tx.Where("name = ?", s.defaultOrganization).First(&org).Error
		if errors.Is(errOrg, gorm.ErrRecordNotFound) {
			log.Error().Str("organization", s.defaultOrganization).Msg("default organization does not exist")
			return ErrDefaultOrganizationNotFound
		}

		if errOrg != nil {
			return fmt.Errorf("failed to resolve default organization: %w", errOrg)
		}

		membership := &models.RelUserOrganization{
			OrgID:    org.ID,
			UserID:   user.ID,
			Role:     models.OrgRoleMember,
			CreateBy: user.ID,
		}

		if errRel := tx.Create(membership).Error; errRel != nil {
			return fmt.Errorf("failed to create organization membership: %w", errRel)
		}

		var role models.Role

		errRole := tx.Where("name = ?", s.defaultRole).First(&role).Error
		if errors.Is(errRole, gorm.ErrRecordNotFound) {
			log.Error().Str("role", s.defaultRole).Msg("default role does not exist")
			return ErrDefaultRoleNotFound
		}

		if errRole != nil {
			return fmt.Errorf("failed to resolve default role: %w", errRole)
		}

		assignment := &models.RelRoleUser{
			RoleID:   role.ID,
			UserID:   user.ID,
			CreateBy: user.ID,
		}

		if errRel := tx.Create(assignment).Error; errRel != nil {
			return fmt.Errorf("failed to create role assignment: %w", errRel)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates the credentials against the directory and returns the
// local user, provisioning it on first successful login (find-or-register).
//
// Concurrent first logins of the same principal are not serialized here; the
// unique index on user.username makes the loser of that race fail instead of
// duplicating the account.
func (s *Service) Login(username, password string) (*models.User, error) {
	person := s.finder.FindByUsername(username, password)
	if person == nil {
		return nil, ErrUserNotFound
	}

	var user models.User

	err := s.db.Where("username = ?", person.AccountName).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.RegisterPerson(person)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	return &user, nil
}

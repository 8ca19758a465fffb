// Package daemon wires the configuration to the database and the
// authentication services.
package daemon

import (
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lumina-bi/lumina-bi/internal/auth"
	"github.com/lumina-bi/lumina-bi/internal/config"
	"github.com/lumina-bi/lumina-bi/internal/db/dsn"
	"github.com/lumina-bi/lumina-bi/internal/db/models"
)

// Daemon holds the opened database and configuration for the persistence and
// identity layer.
type Daemon struct {
	cfg *config.Config
	db  *gorm.DB
}

// New opens the database selected by DB.GormEngine and returns a Daemon.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil, nil
	}

	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Postgres(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(dsn.SQLite(cfg))
	default:
		dialector = gormmysql.Open(dsn.MySQL(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &Daemon{cfg: cfg, db: db}, nil
}

// DB exposes the underlying gorm handle.
func (d *Daemon) DB() *gorm.DB {
	return d.db
}

// Migrate creates or updates the schema and seeds the default organization,
// role and admin account.
func (d *Daemon) Migrate() error {
	err := d.db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.RelUserOrganization{},
		&models.Role{},
		&models.RelRoleUser{},
		&models.Project{},
		&models.DashboardPortal{},
		&models.Dashboard{},
		&models.Display{},
		&models.RelRoleDashboard{},
		&models.RelRoleDisplay{},
		&models.RelRolePortal{},
	)
	if err != nil {
		return err
	}

	return seed(d.cfg, d.db)
}

// AuthService builds the directory-backed provisioning service, or a local
// fallback when directory integration is disabled.
func (d *Daemon) AuthService() (*auth.Service, error) {
	provider, err := auth.NewLDAPProvider(ldapConfig(d.cfg))
	if err != nil {
		return nil, err
	}

	return auth.NewService(d.db, provider, d.cfg.Defaults.Organization, d.cfg.Defaults.Role), nil
}

// TestLDAP probes the configured directory server.
func (d *Daemon) TestLDAP() error {
	provider, err := auth.NewLDAPProvider(ldapConfig(d.cfg))
	if err != nil {
		return err
	}

	return provider.TestConnection()
}

func ldapConfig(cfg *config.Config) *auth.LDAPConfig {
	return &auth.LDAPConfig{
		URL:        cfg.LDAP.URL,
		DomainName: cfg.LDAP.DomainName,
		BaseDN:     cfg.LDAP.BaseDN,
		SkipVerify: cfg.LDAP.SkipVerify,
		Timeout:    cfg.LDAP.Timeout,
	}
}

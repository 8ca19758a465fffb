package app

import (
	"github.com/spf13/cobra"

	"github.com/lumina-bi/lumina-bi/internal/config"
	"github.com/lumina-bi/lumina-bi/internal/daemon"
	"github.com/lumina-bi/lumina-bi/internal/logger"
)

func init() { //nolint: gochecknoinits
	migrateCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	migrateCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(migrateCmd)
}

var (
	configPath string // Path to the configuration file

	err     error
	cfg     config.Config
	devMode bool

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and seed default data",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Migrate()
		},
	}
)

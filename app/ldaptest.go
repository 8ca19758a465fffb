package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lumina-bi/lumina-bi/internal/config"
	"github.com/lumina-bi/lumina-bi/internal/daemon"
	"github.com/lumina-bi/lumina-bi/internal/logger"
)

func init() { //nolint: gochecknoinits
	ldapTestCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(ldapTestCmd)
}

var ldapTestCmd = &cobra.Command{
	Use:   "ldap-test",
	Short: "Probe the configured directory server",
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
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

		if err := d.TestLDAP(); err != nil {
			return err
		}

		log.Info().Str("url", cfg.LDAP.URL).Msg("directory server reachable")

		return nil
	},
}

package app

import (
	"github.com/spf13/cobra"

	"github.com/GoVideoHub/GoVideoHub/internal/config"
	"github.com/GoVideoHub/GoVideoHub/internal/daemon"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().StringVar(&configDir, "config-dir", "", "Configuration directory (overrides GO_VIDEOHUB_CONFIG_DIR)")
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	cfg config.Config
	err error

	configDir string
	devMode   bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the GoVideoHub web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			if configDir == "" {
				configDir = config.Dir()
			}

			if cfg, err = config.ReadConfig(configDir); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d := daemon.New(&cfg, configDir)

			return d.Start()
		},
	}
)

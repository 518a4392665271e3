package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoVideoHub/GoVideoHub/internal/config"
)

func init() { //nolint: gochecknoinits
	dumpConfigCmd.Flags().StringVar(&configDir, "config-dir", "", "Configuration directory (overrides GO_VIDEOHUB_CONFIG_DIR)")
	dumpConfigCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump as JSON instead of TOML")

	rootCmd.AddCommand(dumpConfigCmd)
}

var (
	dumpJSON bool

	dumpConfigCmd = &cobra.Command{
		Use:   "dump-config",
		Short: "Print the merged configuration after all layers are applied",
		RunE: func(_ *cobra.Command, _ []string) error {
			dir := configDir
			if dir == "" {
				dir = config.Dir()
			}

			c, err := config.ReadConfig(dir)
			if err != nil {
				return err
			}

			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&c)
			if err != nil {
				return err
			}

			fmt.Println(out)

			return nil
		},
	}
)

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meigma/kvcolors"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the resolved input and output paths",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		stylesheet, kvconfig, err := resolvePaths(cfg)
		if err != nil {
			return err
		}

		stylesheet, err = kvcolors.ValidatePath(stylesheet, kvcolors.ValidateOptions{})
		if err != nil {
			return err
		}
		kvconfig, err = kvcolors.ValidatePath(kvconfig, kvcolors.ValidateOptions{})
		if err != nil {
			return err
		}

		fmt.Printf("stylesheet: %s\n", stylesheet)
		fmt.Printf("kvconfig:   %s\n", kvconfig)
		fmt.Printf("config:     %s\n", viper.ConfigFileUsed())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

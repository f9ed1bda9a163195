package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/meigma/kvcolors"
	"github.com/meigma/kvcolors/cmd/kvcolors/cli/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kvcolors configuration",
	Long: `View and modify kvcolors configuration.

Without arguments, displays the current effective configuration.
Use subcommands to view the config path, initialize a config file,
or set configuration values.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(viper.ConfigFileUsed())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long: `Create a default configuration file at the XDG config path.

The file will be created at ~/.config/kvcolors/config.yaml (or
$XDG_CONFIG_HOME/kvcolors/config.yaml if set). It lists the built-in
mapping table so it can be edited in place.`,
	RunE: runConfigInit,
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	configPath := viper.ConfigFileUsed()

	// Check if already exists
	if _, statErr := os.Stat(configPath); statErr == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	// Create directory and write default config
	if mkdirErr := os.MkdirAll(filepath.Dir(configPath), 0o750); mkdirErr != nil {
		return mkdirErr
	}

	mappings := make([]string, 0, len(kvcolors.DefaultMappings()))
	for _, m := range kvcolors.DefaultMappings() {
		mappings = append(mappings, m.String())
	}
	defaultConfig := map[string]any{
		"theme":        config.DefaultTheme,
		"mappings":     mappings,
		"allowed-dirs": []string{},
		// stylesheet, kvconfig omitted - derived from XDG paths and theme
	}
	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if writeErr := os.WriteFile(configPath, data, 0o600); writeErr != nil {
		return writeErr
	}

	fmt.Printf("Created config file: %s\n", configPath)
	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Examples:
  kvcolors config set theme MaterialAdwDark
  kvcolors config set stylesheet ~/colors/material.scss`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "theme", "stylesheet", "kvconfig":
		default:
			return fmt.Errorf("unknown or list-valued key %q (edit the file for mappings and allowed-dirs)", key)
		}

		// Only the file's own keys are written back. The global viper also
		// holds env and flag values that must not be persisted.
		configPath := viper.ConfigFileUsed()
		file := viper.New()
		file.SetConfigFile(configPath)
		if _, statErr := os.Stat(configPath); statErr == nil {
			if err := file.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		}
		file.Set(key, value)

		if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
			return err
		}
		if err := file.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		fmt.Printf("Updated %s = %v\n", key, value)
		return nil
	},
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	// Show all settings with their effective values
	settings := viper.AllSettings()
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

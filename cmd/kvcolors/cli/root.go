// Package cli implements the kvcolors command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meigma/kvcolors"
	"github.com/meigma/kvcolors/cmd/kvcolors/cli/config"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	cfgFile string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kvcolors",
	Short: "Sync Material palette colors into a Kvantum theme",
	Long: `Kvcolors reads the color variables generated by quickshell and rewrites
the matching keys of a Kvantum theme configuration.

All file paths are expanded (~, $VAR), resolved through symlinks and checked
before they are read or written.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return initConfig() },
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/kvcolors/config.yaml)")
	flags.StringVar(&envFile, "env-file", "", "Load environment variables from a dotenv file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	flags.String("theme", config.DefaultTheme, "Kvantum theme name")
	flags.String("stylesheet", "", "SCSS palette (default $XDG_STATE_HOME/quickshell/user/generated/material_colors.scss)")
	flags.String("kvconfig", "", "Kvantum config to rewrite (default $XDG_CONFIG_HOME/Kvantum/<theme>/<theme>.kvconfig)")

	for _, key := range []string{"theme", "stylesheet", "kvconfig"} {
		//nolint:errcheck // flag names are static
		viper.BindPFlag(key, flags.Lookup(key))
	}

	//nolint:errcheck // flag names are static
	rootCmd.RegisterFlagCompletionFunc("theme", completeThemes)
	//nolint:errcheck // flag names are static
	rootCmd.RegisterFlagCompletionFunc("stylesheet", completeExt("scss"))
	//nolint:errcheck // flag names are static
	rootCmd.RegisterFlagCompletionFunc("kvconfig", completeExt("kvconfig"))

	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// initConfig loads the optional dotenv file and the YAML config into viper.
func initConfig() error {
	if envFile != "" {
		path, err := kvcolors.ValidateFilePath(envFile, kvcolors.FileOptions{MustExist: true})
		if err != nil {
			return fmt.Errorf("env file: %w", err)
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}

	viper.SetEnvPrefix("KVCOLORS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("theme", config.DefaultTheme)
	viper.SetDefault("mappings", []string{})
	viper.SetDefault("allowed-dirs", []string{})

	path := cfgFile
	if path == "" {
		p, err := config.File()
		if err != nil {
			return err
		}
		path = p
	}
	path, err := kvcolors.ValidateFilePath(path, kvcolors.FileOptions{
		AllowedExtensions: []string{".yaml", ".yml"},
		MustExist:         cfgFile != "",
	})
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	viper.SetConfigFile(path)
	if _, statErr := os.Stat(path); statErr != nil {
		return nil
	}
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// loadConfig returns the effective configuration.
func loadConfig() (*config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// resolvePaths fills in the default stylesheet and kvconfig locations.
func resolvePaths(cfg *config.Config) (stylesheet, kvconfig string, err error) {
	stylesheet = cfg.Stylesheet
	if stylesheet == "" {
		if stylesheet, err = config.StylesheetPath(); err != nil {
			return "", "", err
		}
	}

	kvconfig = cfg.KVConfig
	if kvconfig == "" {
		if kvconfig, err = config.KvantumConfigPath(cfg.Theme); err != nil {
			return "", "", err
		}
	}
	return stylesheet, kvconfig, nil
}

// newSyncer creates a syncer with configured options.
func newSyncer(cfg *config.Config, extra ...kvcolors.Option) (*kvcolors.Syncer, error) {
	var opts []kvcolors.Option
	if len(cfg.Mappings) > 0 {
		mappings, err := kvcolors.ParseMappings(cfg.Mappings)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kvcolors.WithMappings(mappings))
	}
	if len(cfg.AllowedDirs) > 0 {
		opts = append(opts, kvcolors.WithAllowedDirs(cfg.AllowedDirs...))
	}
	if verbose {
		opts = append(opts, kvcolors.WithLogger(
			slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
		))
	}
	return kvcolors.NewSyncer(append(opts, extra...)...)
}

// formatError converts kvcolors errors to user-friendly messages.
func formatError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, kvcolors.ErrPathTraversal):
		return fmt.Sprintf("Error: path traversal detected (security violation): %v", err)
	case errors.Is(err, kvcolors.ErrInvalidPath):
		return fmt.Sprintf("Error: invalid path: %v", err)
	case errors.Is(err, kvcolors.ErrInvalidMapping):
		return fmt.Sprintf("Error: invalid mapping in config: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

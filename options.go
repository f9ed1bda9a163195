package kvcolors

import (
	"log/slog"

	"github.com/meigma/kvcolors/core"
	"github.com/meigma/kvcolors/internal/kvconfig"
)

// Option configures a Syncer.
type Option func(*Syncer) error

// Mapping binds a Kvantum config key to a palette variable.
// Re-exported from core package.
type Mapping = core.Mapping

// Palette maps SCSS variable names to #RRGGBB colors.
// Re-exported from core package.
type Palette = core.Palette

// DefaultMappings returns the built-in MaterialAdw mapping table.
func DefaultMappings() []Mapping {
	return kvconfig.DefaultMappings()
}

// ParseMappings parses "key=variable" entries.
func ParseMappings(entries []string) ([]Mapping, error) {
	return kvconfig.ParseMappings(entries)
}

// WithAllowedDirs confines the stylesheet and config paths to dirs.
func WithAllowedDirs(dirs ...string) Option {
	return func(s *Syncer) error {
		s.allowedDirs = dirs
		return nil
	}
}

// WithConfigExtensions sets the accepted config file extensions.
// Pass no arguments to accept any extension.
func WithConfigExtensions(exts ...string) Option {
	return func(s *Syncer) error {
		s.configExts = exts
		return nil
	}
}

// WithDryRun computes the new config without writing it.
func WithDryRun(dryRun bool) Option {
	return func(s *Syncer) error {
		s.dryRun = dryRun
		return nil
	}
}

// WithLogger sets a logger for the syncer. By default, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Syncer) error {
		s.logger = logger
		return nil
	}
}

// WithMappings replaces the default mapping table.
func WithMappings(mappings []Mapping) Option {
	return func(s *Syncer) error {
		if len(mappings) == 0 {
			return core.ErrInvalidMapping
		}
		s.mappings = mappings
		return nil
	}
}

// WithStylesheetExtensions sets the accepted stylesheet extensions.
// Pass no arguments to accept any extension.
func WithStylesheetExtensions(exts ...string) Option {
	return func(s *Syncer) error {
		s.stylesheetExts = exts
		return nil
	}
}

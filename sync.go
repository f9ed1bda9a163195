package kvcolors

import (
	"fmt"
	"log/slog"

	"github.com/meigma/kvcolors/core"
	"github.com/meigma/kvcolors/internal/kvconfig"
	"github.com/meigma/kvcolors/internal/safepath"
	"github.com/meigma/kvcolors/internal/scss"
)

// Default extensions accepted for each input.
var (
	DefaultStylesheetExtensions = []string{".scss"}
	DefaultConfigExtensions     = []string{".kvconfig"}
)

// Report describes what Apply did for each mapping.
type Report = kvconfig.Report

// Syncer copies palette colors into a Kvantum config.
type Syncer struct {
	validator pathValidator
	logger    *slog.Logger

	mappings       []Mapping
	allowedDirs    []string
	stylesheetExts []string
	configExts     []string
	dryRun         bool
}

// Result is the outcome of Apply.
type Result struct {
	// StylesheetPath and ConfigPath are the validated, resolved inputs.
	StylesheetPath string
	ConfigPath     string

	// Palette is the set of colors read from the stylesheet.
	Palette Palette

	// Content is the rewritten config.
	Content string

	// Report lists updated, appended and skipped keys.
	Report Report

	// Written is false for dry runs.
	Written      bool
	BytesWritten int
}

// NewSyncer creates a new Syncer.
func NewSyncer(opts ...Option) (*Syncer, error) {
	s := &Syncer{
		logger:         slog.New(slog.DiscardHandler),
		mappings:       kvconfig.DefaultMappings(),
		stylesheetExts: DefaultStylesheetExtensions,
		configExts:     DefaultConfigExtensions,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.validator = safepath.NewConfined(s.allowedDirs...)
	return s, nil
}

// Mappings returns the mapping table in use.
func (s *Syncer) Mappings() []Mapping {
	return s.mappings
}

// ReadPalette validates the stylesheet path (it must exist) and parses it.
func (s *Syncer) ReadPalette(stylesheet string) (Palette, string, error) {
	path, err := s.validator.ValidateFilePath(stylesheet, core.FileOptions{
		AllowedExtensions: s.stylesheetExts,
		MustExist:         true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("stylesheet: %w", err)
	}

	palette, err := scss.ParseFile(path)
	if err != nil {
		return nil, "", err
	}
	s.logger.Debug("read palette", "path", path, "colors", len(palette))
	return palette, path, nil
}

// Apply reads the palette from stylesheet and rewrites the mapped keys in
// config. The config file and its directory are created when missing.
func (s *Syncer) Apply(stylesheet, config string) (*Result, error) {
	palette, stylesheetPath, err := s.ReadPalette(stylesheet)
	if err != nil {
		return nil, err
	}

	configPath, err := s.validator.ValidateFilePath(config, core.FileOptions{
		AllowedExtensions: s.configExts,
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	current, err := kvconfig.Read(configPath)
	if err != nil {
		return nil, err
	}

	content, report := kvconfig.Rewrite(current, palette, s.mappings)
	s.logger.Debug("rewrote config",
		"path", configPath,
		"updated", len(report.Updated),
		"appended", len(report.Appended),
		"skipped", len(report.Skipped),
	)

	res := &Result{
		StylesheetPath: stylesheetPath,
		ConfigPath:     configPath,
		Palette:        palette,
		Content:        content,
		Report:         report,
	}
	if s.dryRun {
		return res, nil
	}

	if err := kvconfig.WriteAtomic(configPath, []byte(content)); err != nil {
		return nil, err
	}
	res.Written = true
	res.BytesWritten = len(content)
	s.logger.Debug("wrote config", "path", configPath, "bytes", res.BytesWritten)

	return res, nil
}

// Package kvconfig rewrites color keys in Kvantum theme configuration files.
package kvconfig

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meigma/kvcolors/core"
)

var (
	validKey      = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	validVariable = regexp.MustCompile(`^\w+$`)
)

// DefaultMappings returns the Material palette to Kvantum key table used by
// the MaterialAdw theme. Order is preserved for appended keys.
func DefaultMappings() []core.Mapping {
	return []core.Mapping{
		{Key: "window.color", Variable: "background"},
		{Key: "base.color", Variable: "background"},
		{Key: "alt.base.color", Variable: "background"},
		{Key: "button.color", Variable: "surfaceContainer"},
		{Key: "light.color", Variable: "surfaceContainerLow"},
		{Key: "mid.light.color", Variable: "surfaceContainer"},
		{Key: "dark.color", Variable: "surfaceContainerHighest"},
		{Key: "mid.color", Variable: "surfaceContainerHigh"},
		{Key: "highlight.color", Variable: "primary"},
		{Key: "inactive.highlight.color", Variable: "primary"},
		{Key: "text.color", Variable: "onBackground"},
		{Key: "window.text.color", Variable: "onBackground"},
		{Key: "button.text.color", Variable: "onBackground"},
		{Key: "disabled.text.color", Variable: "onBackground"},
		{Key: "tooltip.text.color", Variable: "onBackground"},
		{Key: "highlight.text.color", Variable: "onSurface"},
		{Key: "link.color", Variable: "tertiary"},
		{Key: "link.visited.color", Variable: "tertiaryFixed"},
		{Key: "progress.indicator.text.color", Variable: "onBackground"},
		{Key: "text.normal.color", Variable: "onBackground"},
		{Key: "text.focus.color", Variable: "onBackground"},
		{Key: "text.press.color", Variable: "onsecondarycontainer"},
		{Key: "text.toggle.color", Variable: "onsecondarycontainer"},
		{Key: "text.disabled.color", Variable: "surfaceDim"},
	}
}

// ParseMapping parses a "key=variable" entry.
func ParseMapping(s string) (core.Mapping, error) {
	key, variable, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	variable = strings.TrimPrefix(strings.TrimSpace(variable), "$")
	if !ok || !validKey.MatchString(key) || !validVariable.MatchString(variable) {
		return core.Mapping{}, fmt.Errorf("%w: %q (want key=variable)", core.ErrInvalidMapping, s)
	}
	return core.Mapping{Key: key, Variable: variable}, nil
}

// ParseMappings parses every entry, failing on the first malformed one.
func ParseMappings(entries []string) ([]core.Mapping, error) {
	mappings := make([]core.Mapping, 0, len(entries))
	for _, e := range entries {
		m, err := ParseMapping(e)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

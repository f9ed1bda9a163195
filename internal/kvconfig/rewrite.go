package kvconfig

import (
	"regexp"

	"github.com/meigma/kvcolors/core"
)

// Report describes what Rewrite did for each mapping.
type Report struct {
	Updated  []string // keys whose existing lines were rewritten
	Appended []string // keys added at the end of the file
	Skipped  []string // keys whose variable is not in the palette
}

// Changed reports whether any key was written.
func (r Report) Changed() bool {
	return len(r.Updated) > 0 || len(r.Appended) > 0
}

// Rewrite applies mappings to content.
//
// For each mapping whose variable has a color, every "key=value" line has its
// value replaced. The key is matched literally at the start of a line, so
// "text.color" does not touch "window.text.color". Keys with no line are
// appended as "\nkey=color". The file's section layout is not interpreted.
func Rewrite(content string, palette core.Palette, mappings []core.Mapping) (string, Report) {
	var report Report

	for _, m := range mappings {
		color, ok := palette.Lookup(m.Variable)
		if !ok {
			report.Skipped = append(report.Skipped, m.Key)
			continue
		}

		re := keyPattern(m.Key)
		if re.MatchString(content) {
			content = re.ReplaceAllString(content, "${1}"+color)
			report.Updated = append(report.Updated, m.Key)
			continue
		}
		content += "\n" + m.Key + "=" + color
		report.Appended = append(report.Appended, m.Key)
	}

	return content, report
}

func keyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^([ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*)#?\w*`)
}

package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meigma/kvcolors/cmd/kvcolors/cli/config"
)

// completeThemes suggests installed Kvantum themes, i.e. the directories
// under $XDG_CONFIG_HOME/Kvantum.
func completeThemes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	dir, err := config.KvantumDir()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Don't show error to user during completion - just return no suggestions
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var themes []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), toComplete) {
			themes = append(themes, e.Name())
		}
	}

	// NoFileComp prevents falling back to local file completion
	return themes, cobra.ShellCompDirectiveNoFileComp
}

// completeExt returns a completion function that filters files by extension.
func completeExt(ext string) cobra.CompletionFunc {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{ext}, cobra.ShellCompDirectiveFilterFileExt
	}
}

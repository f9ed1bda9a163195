package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/meigma/kvcolors"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the colors in the SCSS palette",
	Long: `Colors prints every color variable found in the generated palette.
On a terminal each color is shown with a swatch.`,
	Args: cobra.NoArgs,
	RunE: runColors,
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}

func runColors(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	stylesheet, _, err := resolvePaths(cfg)
	if err != nil {
		return err
	}

	syncer, err := newSyncer(cfg)
	if err != nil {
		return err
	}
	palette, _, err := syncer.ReadPalette(stylesheet)
	if err != nil {
		return err
	}

	printPalette(os.Stdout, palette, term.IsTerminal(int(os.Stdout.Fd())))
	return nil
}

// printPalette writes one "name  #RRGGBB" line per color, sorted by name.
func printPalette(w io.Writer, palette kvcolors.Palette, swatches bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range palette.Names() {
		hex := palette[name]
		if swatches {
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
			fmt.Fprintf(tw, "%s\t%s\t%s\n", swatch, name, hex)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, hex)
	}
	//nolint:errcheck // flush errors surface on the underlying writer
	tw.Flush()
}

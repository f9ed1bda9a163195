package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/meigma/kvcolors"
)

var applyDryRun bool

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Write palette colors into the Kvantum config",
	Long: `Apply reads the generated SCSS palette and rewrites every mapped key in the
Kvantum theme configuration. Keys missing from the config are appended.
The config file is created if it does not exist.

Examples:
  kvcolors apply
  kvcolors apply --theme MaterialAdw
  kvcolors apply --dry-run > preview.kvconfig`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false, "Print the new config instead of writing it")
	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	stylesheet, kvconfig, err := resolvePaths(cfg)
	if err != nil {
		return err
	}

	syncer, err := newSyncer(cfg, kvcolors.WithDryRun(applyDryRun))
	if err != nil {
		return err
	}

	res, err := syncer.Apply(stylesheet, kvconfig)
	if err != nil {
		return err
	}

	if applyDryRun {
		fmt.Fprint(os.Stdout, res.Content)
		printSummary(os.Stderr, res)
		return nil
	}
	printSummary(os.Stdout, res)
	return nil
}

// printSummary reports what Apply changed.
func printSummary(w io.Writer, res *kvcolors.Result) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if res.Written {
		fmt.Fprintf(w, "%s %s (%s)\n", green("Updated"), res.ConfigPath, humanize.Bytes(uint64(res.BytesWritten)))
	} else {
		fmt.Fprintf(w, "%s %s (dry run, nothing written)\n", green("Would update"), res.ConfigPath)
	}
	fmt.Fprintf(w, "  %d updated, %d appended, %d skipped\n",
		len(res.Report.Updated), len(res.Report.Appended), len(res.Report.Skipped))

	if len(res.Report.Skipped) > 0 && verbose {
		fmt.Fprintf(w, "  %s %s\n", yellow("no color for:"), strings.Join(res.Report.Skipped, ", "))
	}
}

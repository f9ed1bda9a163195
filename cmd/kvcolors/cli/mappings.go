package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meigma/kvcolors"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Show the key to palette variable table",
	Long: `Mappings prints the effective table of Kvantum keys and the palette
variables they take their color from. Override it with the "mappings"
list in the config file, one "key=variable" entry per item.`,
	Args: cobra.NoArgs,
	RunE: runMappings,
}

func init() {
	rootCmd.AddCommand(mappingsCmd)
}

func runMappings(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	syncer, err := newSyncer(cfg)
	if err != nil {
		return err
	}

	printMappings(os.Stdout, syncer.Mappings())
	return nil
}

func printMappings(w io.Writer, mappings []kvcolors.Mapping) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVARIABLE")
	for _, m := range mappings {
		fmt.Fprintf(tw, "%s\t%s\n", m.Key, m.Variable)
	}
	//nolint:errcheck // flush errors surface on the underlying writer
	tw.Flush()
}

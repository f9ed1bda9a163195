// Command kvcolors syncs Material palette colors into a Kvantum theme.
package main

import (
	"os"

	"github.com/meigma/kvcolors/cmd/kvcolors/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

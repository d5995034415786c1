// Command brepcli builds B-rep solids from scene files and exports them to
// STL or 3MF.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "brepcli",
		Short: "Build and export B-rep solids from JSON scene files",
	}
	root.AddCommand(newBuildCmd())
	return root
}

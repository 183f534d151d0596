package cli

import (
	"fmt"

	"github.com/pkgsmith/pkgsmith/internal/license"
	"github.com/spf13/cobra"
)

// licensesCmd represents the licenses command
var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List supported license identifiers",
	Long: `List the license identifiers accepted by the --license flag.

Examples:
  pkgsmith licenses`,
	Args: cobra.NoArgs,
	RunE: runLicenses,
}

func runLicenses(cmd *cobra.Command, args []string) error {
	printInfo("Supported licenses:")
	for _, id := range license.IDs() {
		printInfo(fmt.Sprintf("  - %s", id))
	}
	return nil
}

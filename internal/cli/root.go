package cli

import (
	"fmt"
	"os"

	"github.com/pkgsmith/pkgsmith/internal/debug"
	"github.com/pkgsmith/pkgsmith/internal/version"
	"github.com/spf13/cobra"
)

// Alias version variables for main to override via ldflags
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pkgsmith",
	Short: "Debian package skeleton generator",
	Long: `pkgsmith generates the packaging file skeleton for a new project.

Use "pkgsmith new <project-name>" to create a package root containing:
  - Debian maintainer scripts (postinst, postrm, preinst, prerm)
  - build-package and clean-package scripts
  - a cron keep-alive entry and an init.d script
  - the package.conf manifest

Defaults for maintainer, architecture, license and language can be stored
in a configuration file (see --config).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(licensesCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/pkgsmith/pkgsmith/internal/config"
	"github.com/pkgsmith/pkgsmith/internal/debug"
	"github.com/pkgsmith/pkgsmith/internal/language"
	"github.com/pkgsmith/pkgsmith/internal/skeleton"
	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Generate a package skeleton",
	Long: `Generate the packaging file skeleton for a new project.

Creates a package root directory named package-<prefix><project-name>
containing the Debian maintainer scripts, the build and clean scripts,
a cron entry, an init.d script and the package.conf manifest.

Examples:
  pkgsmith new my-daemon --language c
  pkgsmith new my_app --language c --license gpl2 --arch amd64
  pkgsmith new tooling --language python --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newPrefix     string
	newLanguage   string
	newLicense    string
	newArch       string
	newPkgVersion string
	newOutput     string
	newForce      bool
	newDryRun     bool
	newNoInput    bool
)

func init() {
	// Flags for new
	newCmd.Flags().StringVarP(&newPrefix, FlagPrefix, "p", "", DescPrefix)
	newCmd.Flags().StringVarP(&newLanguage, FlagLanguage, "l", "", DescLanguage)
	newCmd.Flags().StringVar(&newLicense, FlagLicense, "", DescLicense)
	newCmd.Flags().StringVarP(&newArch, FlagArch, "a", "", DescArch)
	newCmd.Flags().StringVar(&newPkgVersion, FlagPkgVersion, "", DescPkgVersion)
	newCmd.Flags().StringVarP(&newOutput, FlagOutput, "o", ".", DescOutput)
	newCmd.Flags().BoolVarP(&newForce, FlagForce, "f", false, DescForce)
	newCmd.Flags().BoolVarP(&newDryRun, FlagDryRun, "d", false, DescDryRun)
	newCmd.Flags().BoolVar(&newNoInput, FlagNoInput, false, DescNoInput)
}

func runNew(cmd *cobra.Command, args []string) error {
	projectName := args[0]
	if err := ValidateProjectName(projectName); err != nil {
		return err
	}

	cfgPath := globalConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.NewLoader().LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	debug.DebugValue("[cli] Config path", cfgPath)

	lang, err := resolveLanguage(cfg)
	if err != nil {
		return err
	}

	licenseID, err := resolveLicense(cfg)
	if err != nil {
		return err
	}

	versionStr := newPkgVersion
	if versionStr == "" {
		versionStr = cfg.Defaults.PkgVersion
	}
	pkgVersion, err := semver.NewVersion(versionStr)
	if err != nil {
		return fmt.Errorf("invalid package version %q: %w", versionStr, err)
	}

	arch := newArch
	if arch == "" {
		arch = cfg.Defaults.Architecture
	}

	// Refuse to nest a skeleton inside an existing package root.
	if skeleton.IsPackageRootAt(newOutput) && !newForce {
		return fmt.Errorf("%s is already a package root (use --force to generate anyway)", newOutput)
	}

	builder, err := skeleton.New(skeleton.Config{
		ProjectName: projectName,
		Prefix:      newPrefix,
		Language:    lang,
		License:     licenseID,
		Arch:        arch,
		Maintainer:  cfg.Maintainer.String(),
		Version:     pkgVersion,
		OutputDir:   newOutput,
	})
	if err != nil {
		return err
	}

	rootPath := filepath.Join(newOutput, builder.CurrentDir())

	if newDryRun {
		printInfo("[DRY RUN] Files to create:")
		for _, spec := range builder.Files() {
			printInfo(fmt.Sprintf("  - %s", filepath.Join(rootPath, "package", spec.Subdir, spec.Name)))
		}
		printInfo("")
		printInfo("No files written (dry run).")
		return nil
	}

	printProgress(fmt.Sprintf("Generating package skeleton for %s...", projectName))

	if err := builder.Create(); err != nil {
		printErrorMsg(fmt.Sprintf("Generation failed: %v", err))
		return err
	}

	printSuccess("Package skeleton generated")
	printInfo("")
	printInfo("Summary:")
	printInfo(fmt.Sprintf("  Created: %d files", len(builder.Files())))
	printInfo(fmt.Sprintf("  Language: %s", lang))
	if licenseID != "" {
		printInfo(fmt.Sprintf("  License: %s", licenseID))
	}
	printInfo(fmt.Sprintf("\nPackage root ready at: %s", rootPath))

	return nil
}

// resolveLanguage picks the project language from flag, config default or
// interactive prompt, in that order.
func resolveLanguage(cfg *config.Config) (language.Language, error) {
	name := newLanguage
	if name == "" {
		name = cfg.Defaults.Language
	}
	if name == "" {
		if newNoInput {
			return language.Unknown, fmt.Errorf("no language given (use --%s or a config default)", FlagLanguage)
		}
		prompted, err := promptLanguage()
		if err != nil {
			return language.Unknown, err
		}
		name = prompted
	}
	return language.Parse(name)
}

// resolveLicense picks the license identifier from flag, config default or
// interactive prompt. An empty result means no license block.
func resolveLicense(cfg *config.Config) (string, error) {
	if newLicense != "" {
		if newLicense == noLicenseOption {
			return "", nil
		}
		return newLicense, nil
	}
	if cfg.Defaults.License != "" {
		return cfg.Defaults.License, nil
	}
	if newNoInput {
		return "", nil
	}
	return promptLicense()
}

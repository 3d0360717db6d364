package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apkpeek",
		Short: "Inspect Android APK metadata through aapt2",
		Long: `Apkpeek runs aapt2 dump badging against an APK file and turns the
report into a structured summary: app name, package id, versions, SDK
levels, permissions, features, native architectures, icons and locales.

aapt2 is looked up next to the apkpeek executable first, then in PATH.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewParseCmd())
	rootCmd.AddCommand(NewScanCmd())

	return rootCmd
}

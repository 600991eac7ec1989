// Package cli provides the command-line interface for tdtint.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tdtint/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tdtint",
	Short: "A Telegram Desktop theme generator",
	Long: `Tdtint extracts colour palettes from images and generates complete
Telegram Desktop colour themes from them.

Point it at a wallpaper and it produces a full .tdesktop-theme palette:
the dominant image colours are mapped to semantic roles, expanded across
the whole property schema, and repaired for WCAG text contrast.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
}

// newLogger builds the command logger from the global verbosity flags.
// Verbose wins over quiet when both are set.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	switch {
	case verbose:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tdtint",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	case quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tdtint",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	default:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tdtint",
			Output: os.Stderr,
			Level:  hclog.Warn,
		})
	}
}

// isTerminal reports whether f is attached to a terminal. ANSI previews are
// only emitted when it is.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

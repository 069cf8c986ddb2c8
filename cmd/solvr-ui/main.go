package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fcavalcantirj/solvr-ui/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌─┐┬  ┬  ┬┬─┐
  ╚═╗│ ││  └┐┌┘├┬┘
  ╚═╝└─┘┴─┘ └┘ ┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "solvr-ui",
		Short: "Command-line client for the Solvr knowledge platform",
		Long: `solvr-ui drives the social controls of the Solvr platform from the
command line: following agents and humans, voting on posts, and
managing bookmarks.

Every mutation is optimistic with automatic rollback, the same engine
the web client runs on.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory containing solvr-ui.json")

	rootCmd.AddCommand(
		initCmd(),
		followCmd(),
		voteCmd(),
		bookmarkCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// configDir is where solvr-ui.json is looked up, set by --config.
var configDir string

// printBanner prints the Solvr ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

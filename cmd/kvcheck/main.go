// Package main provides the command-line interface for kvcheck.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lerenn/kvcheck/cmd/kvcheck/internal/cli"
	"github.com/spf13/cobra"
)

// ErrMissingConfigFile is returned when no configuration file is given.
var ErrMissingConfigFile = errors.New("missing configuration file argument")

func newRootCmd() *cobra.Command {
	rootCmd := createCheckCmd()

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.SettingsPath, "settings", "s", "", "Specify a custom settings file path")

	rootCmd.AddCommand(createInitCmd())

	return rootCmd
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrMissingConfigFile):
		fmt.Fprint(stderr, rootCmd.UsageString())
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

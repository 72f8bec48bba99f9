package main

import (
	"github.com/lerenn/kvcheck/cmd/kvcheck/internal/cli"
	"github.com/lerenn/kvcheck/pkg/checker"
	"github.com/lerenn/kvcheck/pkg/report"
	"github.com/spf13/cobra"
)

var (
	requiredKeys []string
	strict       bool
	format       string
)

func createCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "kvcheck <config-file>",
		Short: "Configuration validator",
		Long: `Validates simple KEY=VALUE configuration files.

Blank lines and lines starting with '#' are ignored. Every other line must
be KEY=VALUE; only the first '=' separates the key from the value. The file
must define every required key (name and version unless configured
otherwise in the settings file or with --require).

A file named init is shadowed by the init command; check it with a path,
as in kvcheck ./init.

Examples:
  kvcheck app.conf
  kvcheck ./init
  kvcheck app.conf --require host --require port
  kvcheck app.conf --strict --format yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrMissingConfigFile
			}

			c, err := cli.NewChecker()
			if err != nil {
				return err
			}

			opts := checker.CheckOpts{
				Strict: strict,
				Format: report.Format(format),
			}
			if cmd.Flags().Changed("require") {
				opts.RequiredKeys = requiredKeys
				if opts.RequiredKeys == nil {
					opts.RequiredKeys = []string{}
				}
			}

			result, err := c.Check(args[0], opts)
			if err != nil {
				return err
			}

			if cli.Quiet {
				return nil
			}
			return report.Write(cmd.OutOrStdout(), result.Config, result.Format)
		},
	}

	checkCmd.Flags().StringSliceVarP(&requiredKeys, "require", "r", nil,
		"Required key (repeatable, replaces the keys from the settings file)")
	checkCmd.Flags().BoolVar(&strict, "strict", false, "Reject keys defined more than once")
	checkCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, kv, yaml or dotenv")

	return checkCmd
}

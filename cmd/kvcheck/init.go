package main

import (
	"fmt"

	"github.com/lerenn/kvcheck/cmd/kvcheck/internal/cli"
	"github.com/spf13/cobra"
)

var force bool

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write the default settings file",
		Long: `Write the default kvcheck settings file.

The file is written to ~/.kvcheck/settings.yaml, or to the path given with
--settings. An existing file is kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewSettingsManager()
			if err := manager.SaveDefaultSettings(force); err != nil {
				return err
			}

			if cli.Quiet {
				return nil
			}

			path, err := manager.GetSettingsPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	return initCmd
}

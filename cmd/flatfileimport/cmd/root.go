package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "flatfileimport",
		Short:        "flatfileimport",
		SilenceUsage: true,
		Long:         `CLI for running fixed-width mainframe import jobs against a manifest and a set of copybook-derived layouts.`,
	}

	manifestPath string
)

// Execute runs the CLI's selected subcommand.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "manifest.yaml", "path to the job manifest YAML file")
	return rootCmd.Execute()
}

func init() {
}

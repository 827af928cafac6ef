package cmd

import (
	"fmt"

	"github.com/cobolimport/flatfileimport/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "load the manifest and every layout it references, and report any configuration errors",
	RunE: func(_ *cobra.Command, _ []string) error {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}

		layouts, err := m.Layouts()
		if err != nil {
			return err
		}

		fmt.Printf("manifest ok: %d job(s), %d distinct layout(s)\n", len(m.Jobs), len(layouts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

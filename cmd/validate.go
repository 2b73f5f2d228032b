package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devankur/portfolio/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a content file",
	Long: `validate loads a content file and reports every problem it finds. Without an
argument it checks the configured content file, or the built-in content when
none is configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appConfig.ContentFile
		if len(args) == 1 {
			path = args[0]
		}

		var (
			site *content.Site
			err  error
		)
		if path == "" {
			path = "built-in content"
			site, err = content.Default()
		} else {
			site, err = content.LoadFile(path)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d nav items, %d skills, %d projects)\n",
			path, len(site.Nav), len(site.Skills), len(site.Projects))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

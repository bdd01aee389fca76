package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ssnfield/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, repository URL, and contributors.`,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version only")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildInfo.Version)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}

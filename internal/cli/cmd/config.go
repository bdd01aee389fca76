package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/ssnfield/internal/cli/styles"
	"github.com/bnema/ssnfield/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location, the effective configuration, or its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Long: `Print the JSON schema of config.toml.

The same schema is written next to the config file on first run so editors
with TOML schema support can validate it.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.ConfigFile()
	if path == "" {
		return fmt.Errorf("config file location unknown")
	}
	_, statErr := os.Stat(path)

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPath(path, statErr == nil))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfig(app.Config))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}

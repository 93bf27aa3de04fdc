package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ariel-frischer/flashwin/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect flashwin configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Long: `Print the effective configuration after merging defaults,
~/.flashwin/config.json, the --config file, FLASHWIN_* environment variables
and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printConfig(cmd, a.cfg)
		},
	})
	return cmd
}

func printConfig(cmd *cobra.Command, cfg *config.Configuration) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

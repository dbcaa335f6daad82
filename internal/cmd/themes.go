package cmd

import (
	"fmt"

	"github.com/Digital-Shane/search-picker/internal/config"
	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		themes, err := newThemeManager(cfg, nil)
		if err != nil {
			return err
		}
		return listThemes(cmd, themes, theme.ResolveName(cfg.Theme))
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

// listThemes prints one theme per line, marking the configured one.
func listThemes(cmd *cobra.Command, themes *theme.Manager, current string) error {
	for _, name := range themes.Names() {
		marker := " "
		if name == current {
			marker = "*"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name); err != nil {
			return err
		}
	}
	return nil
}

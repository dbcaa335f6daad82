package cmd

import (
	"fmt"

	"github.com/Digital-Shane/search-picker/internal/config"
	"github.com/Digital-Shane/search-picker/internal/log"
	"github.com/Digital-Shane/search-picker/internal/tui/history"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recent picker sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyPlain {
			sessions, err := log.ReadSessions(historyLimit)
			if err != nil {
				return fmt.Errorf("failed to read sessions: %w", err)
			}
			printHistory(cmd, sessions)
			return nil
		}
		return runHistoryBrowser()
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of sessions to show")
	historyCmd.Flags().BoolVar(&historyPlain, "plain", false, "Print sessions instead of opening the browser")
	rootCmd.AddCommand(historyCmd)
}

func runHistoryBrowser() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	themes, err := newThemeManager(cfg, nil)
	if err != nil {
		return err
	}

	summaries, err := log.GetSessionSummaries(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read sessions: %w", err)
	}

	model := history.New(history.NewTree(summaries),
		history.WithTheme(themes.CurrentTheme(themeWindow(cfg))))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run history browser: %w", err)
	}
	return nil
}

func printHistory(cmd *cobra.Command, sessions []*log.LogSession) {
	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded.")
		return
	}

	for _, s := range sessions {
		meta := s.Metadata
		fmt.Fprintf(out, "%s  %d events (%d delivered, %d dropped)\n",
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.TotalEvents, meta.DeliveredEvents, meta.DroppedEvents)
		for _, ev := range s.Events {
			line := fmt.Sprintf("  %-18s %s", ev.Type, ev.Screen)
			if ev.Detail != "" {
				line += " " + ev.Detail
			}
			if !ev.Delivered {
				line += " (dropped)"
			}
			fmt.Fprintln(out, line)
		}
	}
}

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/Digital-Shane/search-picker/internal/config"
	"github.com/Digital-Shane/search-picker/internal/log"
	"github.com/Digital-Shane/search-picker/internal/notify"
	"github.com/Digital-Shane/search-picker/internal/picker"
	"github.com/Digital-Shane/search-picker/internal/tui"
	"github.com/Digital-Shane/search-picker/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "search-picker",
	Short: "Choose the default search engine",
	Long: `search-picker opens a search engine picker in the terminal.

The picker lists the available engines and a shortcut to search settings.
Preferences are read from ~/.search-picker/config.json and can be overridden
with SEARCH_PICKER_* environment variables or the flags below.`,
	SilenceUsage: true,
	RunE:         runPicker,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	themeName  string
	windowName string
	asciiOnly  bool
)

func init() {
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Theme to start with (light, dark, private or auto)")
	rootCmd.Flags().StringVar(&windowName, "window", "", "Window the theme is looked up for")
	rootCmd.Flags().BoolVar(&asciiOnly, "ascii", false, "Use ASCII icons instead of emoji")
}

// overrides carries the flags the user actually set.
type overrides struct {
	theme  string
	window string
	ascii  bool
}

func flagOverrides(cmd *cobra.Command) overrides {
	var o overrides
	if cmd.Flags().Changed("theme") {
		o.theme = themeName
	}
	if cmd.Flags().Changed("window") {
		o.window = windowName
	}
	o.ascii = asciiOnly
	return o
}

// applyOverrides layers command line flags over the loaded configuration.
func applyOverrides(cfg *config.Config, o overrides) error {
	if o.theme != "" {
		cfg.Theme = o.theme
	}
	if o.window != "" {
		cfg.Window = o.window
	}
	if o.ascii {
		cfg.Icons = config.IconsASCII
	}
	return cfg.Validate()
}

func runPicker(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyOverrides(cfg, flagOverrides(cmd)); err != nil {
		return err
	}

	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)
	if err := log.StartSession(cmd.Name(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to start log session: %v\n", err)
	}
	defer func() {
		if err := log.EndSession(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to save log session: %v\n", err)
		}
	}()

	app, err := newApp(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}
	return nil
}

// newThemeManager builds the theme registry for cfg, posting changes to poster.
func newThemeManager(cfg *config.Config, poster theme.Poster) (*theme.Manager, error) {
	opts := []theme.ManagerOption{
		theme.WithThemeOptions(theme.WithIconSet(theme.IconSetFor(cfg.Icons))),
		theme.WithDefaultTheme(cfg.Theme),
	}
	if poster != nil {
		opts = append(opts, theme.WithPoster(poster))
	}
	themes := theme.NewManager(opts...)

	if name := theme.ResolveName(cfg.Theme); !slices.Contains(themes.Names(), name) {
		return nil, fmt.Errorf("theme %q: %w", cfg.Theme, theme.ErrUnknownTheme)
	}
	return themes, nil
}

func newApp(cfg *config.Config) (*tui.App, error) {
	center := notify.NewCenter()
	themes, err := newThemeManager(cfg, center)
	if err != nil {
		return nil, err
	}

	return tui.NewApp(tui.Options{
		Themes:        themes,
		Notifications: center,
		Events:        log.Recorder{Screen: picker.ScreenName},
		Window:        themeWindow(cfg),
		Settings:      settingsEntries(cfg),
	})
}

func themeWindow(cfg *config.Config) theme.WindowID {
	return theme.WindowID(cfg.Window)
}

// settingsEntries lists the effective configuration for the settings screen.
func settingsEntries(cfg *config.Config) []tui.SettingsEntry {
	logging := "disabled"
	if cfg.EnableLogging {
		logging = fmt.Sprintf("enabled, kept %d days", cfg.LogRetentionDays)
	}

	entries := []tui.SettingsEntry{
		{Label: "Theme", Value: cfg.Theme},
		{Label: "Icons", Value: cfg.Icons},
		{Label: "Window", Value: cfg.Window},
		{Label: "Session logs", Value: logging},
	}
	if path, err := config.ConfigPath(); err == nil {
		entries = append(entries, tui.SettingsEntry{Label: "Config file", Value: path})
	}
	if dir, err := log.LogDir(); err == nil {
		entries = append(entries, tui.SettingsEntry{Label: "Log directory", Value: dir})
	}
	return entries
}

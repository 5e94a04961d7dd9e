// Package main is the entry point for the tidings terminal news
// reader.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hnrks/tidings/internal/config"
	"github.com/hnrks/tidings/internal/debuglog"
	"github.com/hnrks/tidings/internal/tui"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagConfig         string
	flagLogLevel       string
	flagGenerateConfig bool
	flagQuiet          bool
)

var rootCmd = &cobra.Command{
	Use:   "news",
	Short: "Terminal news reader",
	Long: `tidings is a terminal reader for a news-search service. It pages
through top headlines, filters by language and category, and searches
by free text. Articles open in your browser.

Supply the API token via TIDINGS_API_TOKEN or api.token in the config
file (~/.config/tidings/config.toml).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagGenerateConfig {
			home, _ := os.UserHomeDir()
			configFile := filepath.Join(home, ".config", "tidings", "config.toml")

			if err := config.GenerateDefaultConfig(configFile); err != nil {
				return fmt.Errorf("generating config: %w", err)
			}
			fmt.Printf("Generated default configuration at: %s\n", configFile)
			return nil
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level := cfg.Log.Level
		if flagLogLevel != "" {
			level = flagLogLevel
		}
		if err := debuglog.Setup(debuglog.ParseLevel(level), cfg.Log.Path); err != nil {
			return fmt.Errorf("setting up logging: %w", err)
		}
		defer debuglog.Close()

		if !flagQuiet {
			tui.ShowBanner(Version)
		}

		app := tui.NewApp(cfg)
		p := tea.NewProgram(app, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running UI: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", tui.AppName, Version)
		fmt.Println("Terminal news reader")
		fmt.Println("github.com/hnrks/tidings")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to configuration file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "diagnostic log level (debug, info, warn, error, off)")
	rootCmd.Flags().BoolVar(&flagGenerateConfig, "generate-config", false, "generate default config file and exit")
	rootCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "skip startup banner")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

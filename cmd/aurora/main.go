package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aurora/cmd/aurora/page"
	"aurora/internal/config"
	"aurora/internal/logging"
)

var (
	// Global flags
	darkMode   bool
	configPath string
	logFile    string
	verbose    bool
	noMouse    bool

	logger *zap.Logger
)

// rootCmd starts the interactive showcase.
var rootCmd = &cobra.Command{
	Use:   "aurora",
	Short: "Aurora — the browser that stays out of your way",
	Long: `Aurora is a scroll-driven product tour for the Aurora web browser,
rendered right in your terminal.

Scroll with the arrow keys, your mouse wheel, or space. The feature
showcase pins while you scroll through it; press m for the menu, t to
flip the theme, q to leave.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		var watcher *config.Watcher
		if configPath != "" {
			if watcher, err = config.NewWatcher(configPath, logger); err != nil {
				logger.Warn("config watch unavailable", zap.Error(err))
				watcher = nil
			} else if err := watcher.Start(); err != nil {
				logger.Warn("config watch unavailable", zap.Error(err))
				watcher = nil
			}
		}

		opts := []tea.ProgramOption{tea.WithAltScreen()}
		if cfg.UI.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}

		m := page.New(*cfg, logger, watcher)
		p := tea.NewProgram(m, opts...)
		_, runErr := p.Run()

		if watcher != nil {
			watcher.Stop()
		}
		if runErr != nil {
			return fmt.Errorf("run showcase: %w", runErr)
		}
		return nil
	},
}

// loadConfig resolves the effective config: file, env, then flags on top.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if darkMode {
		cfg.UI.DarkMode = true
	}
	if noMouse {
		cfg.UI.Mouse = false
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "force the dark theme")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse wheel scrolling")

	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/carousel/internal/app"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/logging"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/stderr"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

var (
	cfgFile   string
	itemsFile string
	logFile   string
	logLevel  string
	cellWidth int
	noState   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "carousel",
		Short:         "terminal carousels with batch scrolling, autoplay and pagination",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "path to TOML config file")
	rootCmd.Flags().StringVar(&itemsFile, "items", "", "YAML deck of cards (default: built-in demo deck)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file (default: XDG state dir)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.Flags().IntVar(&cellWidth, "cell-width", 0, "pixels per terminal column (default: detect from terminal)")
	rootCmd.Flags().BoolVar(&noState, "no-state", false, "do not restore or save positions")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	applyFlags(cmd, cfg)

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer closeLog.Close()
	logger.Info("starting", "config", cfgFile, "carousels", len(cfg.GetCarousels()))

	items, err := deck.LoadOrDemo(cfg.Items)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpDeckLoad, cfg.Items, err))
	}
	logger.Info("deck loaded", "items", len(items), "path", cfg.Items)

	var st state.Interface
	if !noState && cfg.Remember() {
		mgr, err := state.Open()
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpStateOpen, err))
		} else {
			defer func() {
				if err := mgr.Close(); err != nil {
					msg := errmsg.Format(errmsg.OpStateSave, err)
					logger.Warn(msg)
					cmd.PrintErrln(msg)
				}
			}()
			st = mgr
		}
	}

	cw := cfg.CellWidth
	if cw <= 0 {
		cw = layout.DetectCellWidth()
	}
	logger.Debug("cell width", "px", cw)

	if err := stderr.Start(); err != nil {
		logger.Warn("stderr capture unavailable", "error", err)
	}
	defer stderr.Stop()

	m := app.New(cfg, app.Options{
		Items:     items,
		State:     st,
		CellWidth: cw,
		Logger:    logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	}
	if err != nil {
		logger.Error("program exited", "error", err)
		return err
	}
	logger.Info("stopped")
	return nil
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("items") {
		cfg.Items = itemsFile
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("cell-width") {
		cfg.CellWidth = cellWidth
	}
}

func openLog(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path := cfg.LogFile
	if path == "" {
		var err error
		if path, err = config.DefaultLogFile(); err != nil {
			return nil, nil, err
		}
	}
	return logging.Open(path, cfg.GetLogLevel())
}

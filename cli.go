package main

import (
	"fmt"
	"os"

	"github.com/automoto/squaretoplus/config"
	"github.com/automoto/squaretoplus/fonts"
	"github.com/automoto/squaretoplus/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// cliOptions are the flags shared by every command
type cliOptions struct {
	verbose    bool
	configPath string
	preset     string
	showHUD    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:          "squaretoplus",
		Short:        "A chain of squares that fold into plus signs, one tap at a time",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(opts.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(opts)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "scene config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVarP(&opts.preset, "preset", "p", config.DefaultPreset, "base preset: rich or simple")

	run := &cobra.Command{
		Use:   "run",
		Short: "Open the window (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(opts)
		},
	}
	run.Flags().BoolVar(&opts.showHUD, "hud", false, "show the status overlay")
	root.Flags().AddFlagSet(run.Flags())

	root.AddCommand(run)
	root.AddCommand(newSnapshotCmd(opts))
	root.AddCommand(newTraceCmd(opts))
	return root
}

func setupLogger(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	}))
}

// loadSceneConfig resolves the preset and overlays the config file, if any
func loadSceneConfig(opts *cliOptions) (config.SceneConfig, error) {
	base, err := config.Preset(opts.preset)
	if err != nil {
		return config.SceneConfig{}, err
	}
	if opts.configPath == "" {
		return base, nil
	}
	sceneCfg, err := config.LoadFile(opts.configPath, base)
	if err != nil {
		return config.SceneConfig{}, err
	}
	log.Debug("loaded scene config", "path", opts.configPath, "nodes", sceneCfg.NodeCount)
	return sceneCfg, nil
}

func runWindow(opts *cliOptions) error {
	sceneCfg, err := loadSceneConfig(opts)
	if err != nil {
		return err
	}
	config.Scene = sceneCfg

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if opts.showHUD {
		config.Debug.ShowHUD = true
	}

	if err := ebiten.RunGame(NewGame(sceneCfg)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/squaretoplus/canvas"
	"github.com/automoto/squaretoplus/controller"
	"github.com/automoto/squaretoplus/ticker"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(opts *cliOptions) *cobra.Command {
	var (
		out    string
		taps   int
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render every frame of a tap sequence to PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			sceneCfg, err := loadSceneConfig(opts)
			if err != nil {
				return err
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid size %dx%d", width, height)
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			queue := &ticker.QueueScheduler{}
			ctrl, err := controller.New(sceneCfg, queue)
			if err != nil {
				return err
			}
			raster := canvas.NewRaster(width, height)

			frame := 0
			p := &controller.Playback{
				Controller: ctrl,
				Queue:      queue,
				Surface:    raster,
				OnFrame: func() error {
					path := filepath.Join(out, fmt.Sprintf("frame_%04d.png", frame))
					frame++
					return raster.SavePNG(path)
				},
				OnSweep: func(s controller.Sweep) error {
					log.Debug("sweep settled", "tap", s.Tap, "node", s.After.Node, "frames", s.Frames)
					return nil
				},
			}
			if err := p.Run(taps); err != nil {
				return err
			}

			log.Info("wrote frames", "count", frame, "dir", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "frames", "output directory")
	cmd.Flags().IntVarP(&taps, "taps", "n", 1, "number of taps to play")
	cmd.Flags().IntVar(&width, "width", 480, "frame width in pixels")
	cmd.Flags().IntVar(&height, "height", 800, "frame height in pixels")
	return cmd
}

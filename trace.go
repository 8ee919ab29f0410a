package main

import (
	"fmt"
	"strconv"

	"github.com/automoto/squaretoplus/canvas"
	"github.com/automoto/squaretoplus/config"
	"github.com/automoto/squaretoplus/controller"
	"github.com/automoto/squaretoplus/ticker"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	traceHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	traceCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	traceBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTraceCmd(opts *cliOptions) *cobra.Command {
	var taps int

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Play a tap sequence headlessly and print a table of the sweeps",
		RunE: func(cmd *cobra.Command, args []string) error {
			sceneCfg, err := loadSceneConfig(opts)
			if err != nil {
				return err
			}

			queue := &ticker.QueueScheduler{}
			ctrl, err := controller.New(sceneCfg, queue)
			if err != nil {
				return err
			}
			rec := canvas.NewRecorder(config.C.Width, config.C.Height)

			var rows [][]string
			p := &controller.Playback{
				Controller: ctrl,
				Queue:      queue,
				Surface:    rec,
				OnFrame: func() error {
					rec.Reset()
					return nil
				},
				OnSweep: func(s controller.Sweep) error {
					rows = append(rows, sweepRow(s, ctrl))
					return nil
				},
			}
			if err := p.Run(taps); err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(traceBorderStyle).
				Headers("TAP", "NODE", "DIR", "FRAMES", "SCALES").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return traceHeaderStyle
					}
					return traceCellStyle
				})
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}

	cmd.Flags().IntVarP(&taps, "taps", "n", 10, "number of taps to play")
	return cmd
}

func sweepRow(s controller.Sweep, ctrl *controller.Controller) []string {
	scales := ""
	for i := 0; i < s.After.NodeCount; i++ {
		if i > 0 {
			scales += " "
		}
		scales += strconv.FormatFloat(ctrl.NodeScale(i), 'f', 0, 64)
	}
	return []string{
		strconv.Itoa(s.Tap),
		fmt.Sprintf("%d -> %d", s.Before.Node, s.After.Node),
		fmt.Sprintf("%+d", s.After.Dir),
		strconv.Itoa(s.Frames),
		scales,
	}
}

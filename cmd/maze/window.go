package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/game"
	"github.com/vovakirdan/maze-arcade/internal/platform/window"
)

var (
	flagScale float64
	flagNoFPS bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the maze in a desktop window.

Controls:
  Arrows/WASD  - Move (most recently pressed direction wins)
  Q/Esc        - Quit

Examples:
  maze window
  maze window --scale 2 --fps 60`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	windowCmd.Flags().BoolVar(&flagNoFPS, "no-fps", false, "Hide the frame rate overlay")
}

func runWindow(_ *cobra.Command, _ []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}

	opts := window.DefaultOptions()
	opts.Scale = flagScale
	opts.TPS = w.Config().FrameRate
	opts.ShowFPS = !flagNoFPS

	logger.Info("opening window", "scale", opts.Scale, "tps", opts.TPS)
	return window.Run(game.NewSession(w), opts)
}

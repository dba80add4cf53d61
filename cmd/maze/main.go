// maze is a small pacman-style maze: one player, static walls, pixel-exact
// collisions.
//
// Usage:
//
//	maze play              - Play in the terminal
//	maze window            - Play in a desktop window
//	maze serve             - Start SSH server for remote play
//	maze layout            - Validate the maze and print its barriers
//
// Global flags:
//
//	--config <path>  - Maze config YAML (default: search ~/.maze/configs, ./configs, built-in)
//	--verbose        - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/world"
)

var (
	// Global flags
	flagConfig  string
	flagPace    string
	flagFPS     int
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - a pacman-style walk through a fixed maze",
	Long: `Maze is a minimal arcade prototype: a 27x30 grid, 25 static walls,
and one round player blocked by pixel-exact collisions.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  layout   - Validate the maze and print its barriers

Examples:
  maze play
  maze window --scale 1.5
  maze serve --ssh :2222
  maze layout --config ./my-maze.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Player speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(layoutCmd)
}

// loadWorld loads the maze config, applies global flag overrides and builds
// the world. Any barrier error is fatal for every frontend.
func loadWorld() (*world.World, error) {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyPace(&cfg, config.PacePreset(flagPace)); err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		cfg.FrameRate = flagFPS
	}

	w, err := world.New(cfg)
	if err != nil {
		return nil, err
	}
	width, height := w.ScreenSize()
	logger.Debug("maze built",
		"barriers", len(w.Barriers()),
		"screen", []int{width, height},
		"wall_pixels", w.Mask().Count(),
		"speed", cfg.Player.Speed,
		"fps", cfg.FrameRate,
	)
	return w, nil
}

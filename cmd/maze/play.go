package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-arcade/internal/game"
	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the maze in the terminal.

Controls:
  Arrows/WASD  - Move (most recently pressed direction wins)
  ?            - Toggle help
  Q/Esc        - Quit

Terminals report key presses but not releases. A direction counts as held
while the key keeps repeating and is released after input.release_after_ms
(default 500) without a repeat.

Examples:
  maze play
  maze play --pace fast
  maze play --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}

	rc := w.Config().Runtime()
	if width, height, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = width
		rc.ScreenH = height
	}

	return tui.Run(game.NewSession(w), rc, w.Config().ReleaseAfter())
}

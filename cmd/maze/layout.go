package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/world"
)

var flagMask bool

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Validate the maze and print its barriers",
	Long: `Build the maze exactly as the game does and print the barrier table
followed by a cell map ('#' wall, '@' spawn, '.' open). An invalid barrier
fails with its index and reason.

Examples:
  maze layout
  maze layout --mask
  maze layout --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().BoolVar(&flagMask, "mask", false, "Print collision mask statistics instead of the cell map")
}

func runLayout(cmd *cobra.Command, _ []string) error {
	w, err := loadWorld()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, barrierTable(w))
	fmt.Fprintln(out)
	if flagMask {
		writeMaskSummary(out, w)
		return nil
	}
	fmt.Fprint(out, cellMap(w))
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func barrierTable(w *world.World) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Left", "Top", "Size", "Stem", "Rot", "Vertices", "Area").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, s := range w.Specs() {
		stem := "-"
		if s.Stem != nil {
			stem = fmt.Sprintf("+%d %dx%d", s.Stem.LeftOffset, s.Stem.Width, s.Stem.Height)
		}
		p := w.Barriers()[i]
		t.Row(
			strconv.Itoa(i),
			strconv.Itoa(s.Left),
			strconv.Itoa(s.Top),
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			stem,
			strconv.Itoa(int(s.Rotation)),
			strconv.Itoa(len(p)),
			strconv.FormatFloat(p.Area(), 'f', -1, 64),
		)
	}
	return t.String()
}

// cellMap samples the collision mask at each cell center.
func cellMap(w *world.World) string {
	tr := w.Transform()
	spawn := w.Config().Spawn().Floor()

	var sb strings.Builder
	for row := 0; row < tr.Rows; row++ {
		for col := 0; col < tr.Columns; col++ {
			center := tr.ToScreen(core.Pt(float64(col)+0.5, float64(row)+0.5))
			switch {
			case w.Mask().Covered(int(center.X), int(center.Y)):
				sb.WriteByte('#')
			case core.Pt(float64(col), float64(row)) == spawn:
				sb.WriteByte('@')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeMaskSummary(out io.Writer, w *world.World) {
	width, height := w.Mask().Size()
	walls := w.Mask().Count()
	fmt.Fprintf(out, "mask       %dx%d px\n", width, height)
	fmt.Fprintf(out, "walls      %d px (%.1f%%)\n", walls, 100*float64(walls)/float64(width*height))
	fmt.Fprintf(out, "barriers   %d\n", len(w.Barriers()))
	fmt.Fprintf(out, "cell size  %d px\n", w.Transform().CellSize)

	tr := w.Transform()
	px := tr.ToScreen(w.Config().Spawn())
	fmt.Fprintf(out, "spawn      %v px in cell %v\n", px, tr.FromScreen(px))
}

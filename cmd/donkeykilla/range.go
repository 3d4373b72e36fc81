package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/ranges"
)

var (
	inRangeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10")).
			Width(5).
			Align(lipgloss.Center)

	outRangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(5).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// RangeCmd prints a range as a 13x13 starting hand grid.
type RangeCmd struct {
	Notation string `arg:"" help:"Range notation, e.g. 'A2s+,77+,KJo+'"`
	Combos   bool   `help:"List every concrete two-card combination"`
}

func (c *RangeCmd) Run() error {
	for _, tok := range ranges.Validate(c.Notation) {
		fmt.Println(warnStyle.Render(fmt.Sprintf("ignoring malformed token %q", tok)))
	}

	r := ranges.Parse(c.Notation)
	fmt.Println(headerStyle.Render(r.String()))
	fmt.Println(renderGrid(r))
	fmt.Printf("%d combos (%.1f%%)\n", r.Size(), ranges.Coverage(r)*100)

	if c.Combos {
		for _, hc := range r.HoleCards() {
			fmt.Printf("%s%s ", hc[0], hc[1])
		}
		fmt.Println()
	}
	return nil
}

func renderGrid(r *ranges.Range) string {
	grid := ranges.Grid(r)
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			style := outRangeStyle
			if cell.InRange {
				style = inRangeStyle
			}
			cells = append(cells, style.Render(cell.Combo.String()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

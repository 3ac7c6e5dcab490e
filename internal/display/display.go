// Package display renders a terrain view with the rover position.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"roversim/internal/rover"
	"roversim/internal/terrain"
)

var (
	hazardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))

	freeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	roverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)
)

// glyph is the rover marker for a heading, "?" for a non-canonical one.
func glyph(d rover.Direction) string {
	switch d {
	case rover.North:
		return "^"
	case rover.East:
		return ">"
	case rover.South:
		return "v"
	case rover.West:
		return "<"
	}
	return "?"
}

// Render draws the terrain grid with the rover marker, northmost row
// first. A rover outside the grid simply does not appear.
func Render(t *terrain.Terrain, st rover.State) string {
	var out strings.Builder
	for y := t.Height - 1; y >= 0; y-- {
		for x := 0; x < t.Width; x++ {
			switch {
			case st.X == x && st.Y == y:
				out.WriteString(roverStyle.Render(glyph(st.Dir)))
			case !t.Free(x, y):
				out.WriteString(hazardStyle.Render("#"))
			default:
				out.WriteString(freeStyle.Render("."))
			}
			out.WriteString(" ")
		}
		out.WriteString("\n")
	}
	return out.String()
}

// Package terrain loads hazard maps and exposes them to the rover as
// sensors, plus a route planner over the free cells.
package terrain

import (
	"fmt"
	"os"
)

// Terrain is a rectangular grid of cells; nonzero cells are hazards. Cell
// (x, y) has x growing east and y growing north, so the last line of a map
// file is the y=0 row.
type Terrain struct {
	Width, Height int
	Start         [2]int
	cells         [][]int
}

// Load reads a terrain file.
// Format:
// first line: width height
// next line: startX startY (suggested landing site)
// then height lines of width digits (0 free, nonzero hazard), northmost row first
func Load(path string) (*Terrain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var width, height int
	var sx, sy int
	if _, err := fmt.Fscan(f, &width, &height); err != nil {
		return nil, fmt.Errorf("terrain %s: sizes: %w", path, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terrain %s: bad sizes %dx%d", path, width, height)
	}
	if _, err := fmt.Fscan(f, &sx, &sy); err != nil {
		return nil, fmt.Errorf("terrain %s: landing site: %w", path, err)
	}

	cells := make([][]int, height)
	for y := height - 1; y >= 0; y-- {
		cells[y] = make([]int, width)
		for x := 0; x < width; x++ {
			if _, err := fmt.Fscan(f, &cells[y][x]); err != nil {
				return nil, fmt.Errorf("terrain %s: cell (%d, %d): %w", path, x, y, err)
			}
		}
	}
	return &Terrain{Width: width, Height: height, Start: [2]int{sx, sy}, cells: cells}, nil
}

// InBounds reports whether the cell lies on the grid.
func (t *Terrain) InBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

// Free reports whether the cell is on the grid and hazard-free.
func (t *Terrain) Free(x, y int) bool {
	return t.InBounds(x, y) && t.cells[y][x] == 0
}

package display

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roversim/internal/rover"
	"roversim/internal/terrain"
)

func loadSample(t *testing.T) *terrain.Terrain {
	t.Helper()
	content := "3 2\n0 0\n0 1 0\n0 0 0\n"
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	tr, err := terrain.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestRenderDimensions(t *testing.T) {
	out := Render(loadSample(t), rover.State{X: 0, Y: 0, Dir: rover.North})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d rows, want 2", len(lines))
	}
}

func TestRenderMarker(t *testing.T) {
	tests := []struct {
		dir  rover.Direction
		want string
	}{
		{rover.North, "^"},
		{rover.East, ">"},
		{rover.South, "v"},
		{rover.West, "<"},
		{rover.Direction{Dx: 2, Dy: 2}, "?"},
	}
	tr := loadSample(t)
	for _, tt := range tests {
		out := Render(tr, rover.State{X: 0, Y: 0, Dir: tt.dir})
		if !strings.Contains(out, tt.want) {
			t.Errorf("heading %v: marker %q missing from output:\n%s", tt.dir, tt.want, out)
		}
	}
}

func TestRenderHazard(t *testing.T) {
	// Hazard at (1, 1); rover elsewhere so the cell shows as #.
	out := Render(loadSample(t), rover.State{X: 0, Y: 0, Dir: rover.North})
	if !strings.Contains(out, "#") {
		t.Fatalf("hazard cell missing from output:\n%s", out)
	}
}

func TestRenderRoverCoversCell(t *testing.T) {
	// Rover standing on the hazard cell replaces its glyph.
	out := Render(loadSample(t), rover.State{X: 1, Y: 1, Dir: rover.East})
	if strings.Contains(out, "#") {
		t.Fatalf("hazard rendered under the rover:\n%s", out)
	}
}

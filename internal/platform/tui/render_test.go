package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "Score: 128")
	s.DrawTextColor(2, 1, "2048", core.Tile2048)
	s.DrawTextColor(8, 1, "4", core.Tile4)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"Score: 128", "2048", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for _, v := range []int{0, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 1 << 17} {
		if _, ok := colorStyles[core.TileColor(v)]; !ok {
			t.Errorf("no style for tile %d", v)
		}
	}
}

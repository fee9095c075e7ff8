package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/procroids/internal/core"
)

func TestRenderScreenPreservesText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorOrange)
	s.SetColored(5, 1, '*', core.ColorBrightRed)
	s.SetColored(0, 1, '@', core.ColorDim)

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("RenderScreen() text = %q, want %q", got, s.String())
	}
}

func TestRenderScreenDefaultColorIsPlain(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.DrawText(0, 0, "xyz")

	if got := RenderScreen(s); got != "xyz" {
		t.Errorf("RenderScreen() = %q, want plain %q", got, "xyz")
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

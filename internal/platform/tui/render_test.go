package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-match3/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.SetCell(2, 0, core.Cell{Rune: 'c', Color: core.ColorRed, Bold: true})
	s.DrawText(0, 1, "xyz")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	st := styleFor(core.Cell{Rune: 'x', Color: core.ColorCount + 3, Bold: true})
	if !st.GetBold() {
		t.Error("bold flag lost")
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphRows is the height of every big-clock glyph.
const glyphRows = 3

// glyphs draws digits with half blocks, three cells high.
var glyphs = map[rune][glyphRows]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▀█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {"▄", "▄", " "},
}

// minBigClockWidth is the narrowest terminal that gets the big clock.
const minBigClockWidth = 30

// renderBigClock renders an mm:ss string in big glyphs, or as a single bold
// line on narrow terminals.
func renderBigClock(clock string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < minBigClockWidth {
		return style.Render(clock)
	}

	var rows [glyphRows][]string
	for _, ch := range clock {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}

	styled := make([]string, glyphRows)
	for i, parts := range rows {
		styled[i] = style.Render(strings.Join(parts, " "))
	}
	return strings.Join(styled, "\n")
}

package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks text into lines no wider than width, preferring word
// boundaries and falling back to hard breaks for overlong words.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	lineWidth := 0
	first := true
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if !first && lineWidth+1+w > width {
			out.WriteByte('\n')
			lineWidth = 0
			first = true
		}
		if !first {
			out.WriteByte(' ')
			lineWidth++
		}
		if w > width {
			lineWidth = writeBroken(&out, word, width, lineWidth)
			first = false
			continue
		}
		out.WriteString(word)
		lineWidth += w
		first = false
	}
	return out.String()
}

func writeBroken(out *strings.Builder, word string, width, lineWidth int) int {
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width {
			out.WriteByte('\n')
			lineWidth = 0
		}
		out.WriteRune(r)
		lineWidth += rw
	}
	return lineWidth
}

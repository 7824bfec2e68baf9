package page

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width display cells
// Words longer than width are truncated with an ellipsis
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if w > width {
			word = runewidth.Truncate(word, width, "…")
			w = runewidth.StringWidth(word)
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = w
		case curW+1+w <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + w
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curW = w
		}
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Center returns the x offset that centers text of the given display width
func Center(width, text int) int {
	if text >= width {
		return 0
	}
	return (width - text) / 2
}

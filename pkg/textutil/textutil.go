// Package textutil lays out help text in terminal cells rather than bytes, so names and
// descriptions with wide or combining characters stay aligned.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap splits text into lines no wider than width cells, breaking between words. A word wider than
// width gets a line of its own. Runs of whitespace collapse to one space.
func Wrap(text string, width int) []string {
	var (
		lines   []string
		current strings.Builder
		used    int
	)
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if used > 0 && used+1+w > width {
			lines = append(lines, current.String())
			current.Reset()
			used = 0
		}
		if used > 0 {
			current.WriteByte(' ')
			used++
		}
		current.WriteString(word)
		used += w
	}
	if used > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Cell pads s with spaces to width cells. A string that does not fit is followed by a single space
// so neighbouring cells never touch.
func Cell(s string, width int) string {
	if w := runewidth.StringWidth(s); w >= width {
		return s + " "
	}
	return runewidth.FillRight(s, width)
}

// Width returns the number of cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

package view

import (
	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal cells s occupies: the sum of
// each rune's width, where East Asian wide runes count 2 and combining or
// non-printing runes count 0.
func DisplayWidth(s string) int {
	width := 0
	for _, r := range s {
		width += runewidth.RuneWidth(r)
	}
	return width
}

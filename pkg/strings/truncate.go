package strings

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultStatusMaxWidth is the widest status line shown next to a progress spinner.
const DefaultStatusMaxWidth = 60

// MinTruncateWidth is the smallest maxWidth TruncateDisplay honours.
// Anything smaller would not leave room for one cell plus "...".
const MinTruncateWidth = 4

// TruncateDisplay collapses s onto a single line and truncates it to at most
// maxWidth terminal cells, ending with "..." when something was cut.
//
// Width is measured in display cells, so a wide rune such as 東 counts as two
// and is never split.
func TruncateDisplay(s string, maxWidth int) string {
	if maxWidth < MinTruncateWidth {
		maxWidth = MinTruncateWidth
	}

	s = strings.Join(strings.Fields(s), " ")

	return runewidth.Truncate(s, maxWidth, "...")
}

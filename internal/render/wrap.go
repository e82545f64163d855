package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap greedily packs the whitespace-separated words of text into lines
// narrower than width display columns. Every word is followed by a single
// space, so each returned line ends in one.
//
// A word is added to the current line while the columns already used plus
// the word's width stay below width. The first word always opens the first
// line, and a word wider than width sits alone on its own line rather than
// being split or dropped. Widths are measured in terminal cells, so wide
// runes count double.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	var cur strings.Builder
	used := 0

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if cur.Len() > 0 && used+w < width {
			cur.WriteString(word)
			cur.WriteByte(' ')
			used += w + 1
			continue
		}
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		cur.WriteString(word)
		cur.WriteByte(' ')
		used = w + 1
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}

	return lines
}

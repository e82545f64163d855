// Package termsize reports how many columns the output terminal has.
package termsize

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultColumns is used when the width cannot be determined.
const DefaultColumns = 80

// Columns returns the width of the terminal behind f. When f is not a
// terminal the COLUMNS environment variable is consulted, then
// DefaultColumns.
func Columns(f *os.File) int {
	if f != nil && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fromEnv(os.Getenv("COLUMNS"))
}

func fromEnv(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return DefaultColumns
	}
	return n
}

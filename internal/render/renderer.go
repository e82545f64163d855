package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Iron-Ham/ptree/internal/tree"
	"github.com/Iron-Ham/ptree/internal/util"
)

// Box-drawing pieces. Every indent level is three cells wide.
const (
	branch    = "├─"
	corner    = "└─"
	bar       = "│"
	blank     = " "
	levelPad  = "  "
	connWidth = 3 // connector plus the space after it
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// Options controls tree rendering.
type Options struct {
	// Width is the number of terminal columns available. Values below 1
	// mean DefaultWidth.
	Width int
	// NoWrap truncates long command lines to one row instead of wrapping.
	NoWrap bool
	// Styles colors connectors, pids and zombies.
	Styles Styles
}

// Renderer writes nodes as an ASCII-art tree.
type Renderer struct {
	out  *bufio.Writer
	opts Options
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	if opts.Width < 1 {
		opts.Width = DefaultWidth
	}
	return &Renderer{out: bufio.NewWriter(w), opts: opts}
}

// Render writes nodes and their descendants as sibling trees. The first
// write error stops rendering and is returned.
func (r *Renderer) Render(nodes []*tree.Node) error {
	if err := r.siblings(nodes, ""); err != nil {
		return err
	}
	return r.out.Flush()
}

func (r *Renderer) siblings(nodes []*tree.Node, indent string) error {
	for i, n := range nodes {
		turn, sibling := branch, bar
		if i == len(nodes)-1 {
			turn, sibling = corner, blank
		}
		if err := r.node(n, indent, turn, sibling); err != nil {
			return err
		}
	}
	return nil
}

// node writes one row for n, its wrapped continuation rows, then its
// children. sibling is drawn in n's connector column on continuation rows
// and below, so it is a bar only while a later sibling follows.
func (r *Renderer) node(n *tree.Node, indent, turn, sibling string) error {
	label := strconv.FormatUint(uint64(n.PID), 10)
	budget := r.opts.Width - runewidth.StringWidth(indent) - connWidth - len(label) - 1
	lines := r.commandLines(n.Cmdline, budget)

	st := r.opts.Styles
	row := st.connector(indent+turn) + " " + st.pid(label)
	if len(lines) > 0 {
		row += " " + st.command(lines[0], n.Zombie)
	}
	if err := r.writeLine(row); err != nil {
		return err
	}

	if len(lines) > 1 {
		child := blank
		if n.HasChildren() {
			child = bar
		}
		prefix := st.connector(indent+sibling+levelPad+child) + strings.Repeat(" ", len(label))
		for _, line := range lines[1:] {
			if err := r.writeLine(prefix + st.command(line, n.Zombie)); err != nil {
				return err
			}
		}
	}

	return r.siblings(n.Children, indent+sibling+levelPad)
}

func (r *Renderer) commandLines(cmdline string, budget int) []string {
	var lines []string
	if r.opts.NoWrap {
		if strings.TrimSpace(cmdline) != "" {
			lines = []string{util.Truncate(strings.Join(strings.Fields(cmdline), " "), budget)}
		}
	} else {
		lines = Wrap(cmdline, budget)
	}
	kept := lines[:0]
	for _, line := range lines {
		// a budget below one cell truncates to nothing
		if line = strings.TrimRight(line, " "); line != "" {
			kept = append(kept, line)
		}
	}
	return kept
}

func (r *Renderer) writeLine(line string) error {
	if _, err := r.out.WriteString(line); err != nil {
		return err
	}
	return r.out.WriteByte('\n')
}

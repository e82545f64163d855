// Package filter builds the tree.Matcher used to select which process
// subtrees are displayed.
//
// A Filter combines an optional owner restriction with an optional
// command-line pattern. Both must hold for a node to match. The pattern is
// either a case-sensitive substring or a glob (see github.com/gobwas/glob)
// matched against the whole command line.
package filter

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/Iron-Ham/ptree/internal/errors"
	"github.com/Iron-Ham/ptree/internal/tree"
)

// Pattern modes
const (
	ModeSubstring = "substring"
	ModeGlob      = "glob"
)

// ValidModes returns the list of valid pattern modes.
func ValidModes() []string {
	return []string{ModeSubstring, ModeGlob}
}

// Options describes a filter.
type Options struct {
	// Pattern is matched against the command line. Empty matches everything.
	Pattern string
	// Mode is ModeSubstring (default) or ModeGlob.
	Mode string
	// AllUsers disables the owner restriction.
	AllUsers bool
	// UID is the owner required when AllUsers is false.
	UID uint32
}

// Filter is a compiled set of Options. It implements tree.Matcher.
type Filter struct {
	opts Options
	glob glob.Glob
}

var _ tree.Matcher = (*Filter)(nil)

// New compiles opts into a Filter.
func New(opts Options) (*Filter, error) {
	f := &Filter{opts: opts}

	switch opts.Mode {
	case "", ModeSubstring:
	case ModeGlob:
		if opts.Pattern != "" {
			g, err := glob.Compile(opts.Pattern)
			if err != nil {
				return nil, errors.NewValidationError("invalid glob pattern").
					WithField("filter").
					WithValue(opts.Pattern).
					WithCause(err)
			}
			f.glob = g
		}
	default:
		return nil, errors.NewValidationError("unknown filter mode").
			WithField("filter.mode").
			WithValue(opts.Mode)
	}

	return f, nil
}

// Match reports whether n passes both the owner and the pattern checks.
func (f *Filter) Match(n *tree.Node) bool {
	if !f.opts.AllUsers && n.UID != f.opts.UID {
		return false
	}
	return f.matchPattern(n.Cmdline)
}

func (f *Filter) matchPattern(cmdline string) bool {
	if f.opts.Pattern == "" {
		return true
	}
	if f.glob != nil {
		return f.glob.Match(cmdline)
	}
	return strings.Contains(cmdline, f.opts.Pattern)
}

package tree

import (
	"sort"

	"github.com/Iron-Ham/ptree/internal/errors"
	"github.com/Iron-Ham/ptree/internal/proc"
)

// Result is the output of Build.
type Result struct {
	Forest Forest
	// Warnings holds one *errors.RecordError wrapping errors.ErrCycle for each
	// record whose parent links loop back into an already built subtree.
	Warnings []error
}

// builder carries the per-build state.
type builder struct {
	children map[uint32][]proc.Record
	visited  map[uint32]bool
	warnings []error
}

// Build assembles the forest described by records. Roots are chosen by
// policy; records not reachable from any root are left out.
//
// A record reached a second time while descending is a parent cycle: it is
// not instantiated again and a warning naming its pid is recorded instead.
func Build(records map[uint32]proc.Record, policy RootPolicy) *Result {
	b := &builder{
		children: make(map[uint32][]proc.Record),
		visited:  make(map[uint32]bool, len(records)),
	}

	var roots []proc.Record
	for _, rec := range records {
		b.children[rec.PPID] = append(b.children[rec.PPID], rec)
		if policy.isRoot(rec, records) {
			roots = append(roots, rec)
		}
	}
	sortRecords(roots)

	forest := make(Forest, 0, len(roots))
	for _, rec := range roots {
		if b.visited[rec.PID] {
			continue
		}
		forest = append(forest, b.node(rec))
	}

	return &Result{Forest: forest, Warnings: b.warnings}
}

func (b *builder) node(rec proc.Record) *Node {
	b.visited[rec.PID] = true

	n := &Node{
		PID:     rec.PID,
		UID:     rec.UID,
		Cmdline: rec.Cmdline,
		Zombie:  rec.Zombie(),
	}

	kids := b.children[rec.PID]
	sortRecords(kids)
	for _, kid := range kids {
		if b.visited[kid.PID] {
			b.warnings = append(b.warnings,
				errors.NewRecordError(kid.PID, "build tree", errors.ErrCycle))
			continue
		}
		n.Children = append(n.Children, b.node(kid))
	}
	return n
}

func sortRecords(recs []proc.Record) {
	sort.Slice(recs, func(i, j int) bool { return recs[i].PID < recs[j].PID })
}

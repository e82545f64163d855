package tree

import (
	"strings"

	"github.com/Iron-Ham/ptree/internal/errors"
	"github.com/Iron-Ham/ptree/internal/proc"
)

// RootPolicy selects which records start a tree in the forest.
type RootPolicy int

const (
	// RootZeroParent roots every record whose parent pid is 0. On Linux this
	// yields init and kthreadd.
	RootZeroParent RootPolicy = iota
	// RootOrphan roots every record whose parent pid is not in the snapshot.
	RootOrphan
	// RootInit roots only the record with pid 1.
	RootInit
)

var policyNames = map[RootPolicy]string{
	RootZeroParent: "zero-parent",
	RootOrphan:     "orphan",
	RootInit:       "init",
}

// String returns the configuration name of the policy.
func (p RootPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseRootPolicy converts a configuration name into a RootPolicy.
func ParseRootPolicy(name string) (RootPolicy, error) {
	for p, n := range policyNames {
		if strings.EqualFold(name, n) {
			return p, nil
		}
	}
	return 0, errors.NewValidationError("unknown root policy").
		WithField("tree.root_policy").
		WithValue(name).
		WithCause(errors.ErrInvalidPolicy)
}

// ValidRootPolicies returns the policy names in declaration order.
func ValidRootPolicies() []string {
	return []string{RootZeroParent.String(), RootOrphan.String(), RootInit.String()}
}

// isRoot reports whether rec starts a tree under p.
func (p RootPolicy) isRoot(rec proc.Record, records map[uint32]proc.Record) bool {
	switch p {
	case RootZeroParent:
		return rec.PPID == 0
	case RootOrphan:
		if rec.PPID == rec.PID {
			return false
		}
		_, ok := records[rec.PPID]
		return !ok
	case RootInit:
		return rec.PID == 1
	default:
		return false
	}
}

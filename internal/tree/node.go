package tree

// Node is one process in the hierarchy. A Node owns its children; there are
// no parent pointers. Nodes are not modified after Build returns.
type Node struct {
	PID      uint32  `json:"pid" yaml:"pid"`
	UID      uint32  `json:"uid" yaml:"uid"`
	Cmdline  string  `json:"cmdline" yaml:"cmdline"`
	Zombie   bool    `json:"zombie,omitempty" yaml:"zombie,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Forest is an ordered list of independent trees, sorted by root pid.
type Forest []*Node

// HasChildren reports whether n has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Walk visits n and its descendants depth-first in child order. Returning
// false from fn skips the descendants of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Len returns the number of nodes in the subtree rooted at n.
func (n *Node) Len() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Len returns the number of nodes in the forest.
func (f Forest) Len() int {
	count := 0
	for _, root := range f {
		count += root.Len()
	}
	return count
}

package tree

// Matcher decides whether a node is part of a search result.
type Matcher interface {
	Match(n *Node) bool
}

// MatcherFunc adapts an ordinary function to the Matcher interface.
type MatcherFunc func(n *Node) bool

// Match calls f(n).
func (f MatcherFunc) Match(n *Node) bool {
	return f(n)
}

// MatchAll matches every node.
var MatchAll Matcher = MatcherFunc(func(*Node) bool { return true })

// Search walks the forest depth-first, in pid order, and returns the nodes
// accepted by m. A matching node is returned whole: its descendants are not
// examined, so the result never holds both a node and one of its
// descendants. Trees without any match contribute nothing.
func Search(forest Forest, m Matcher) []*Node {
	var result []*Node
	for _, root := range forest {
		result = search(root, m, result)
	}
	return result
}

func search(n *Node, m Matcher, result []*Node) []*Node {
	if m.Match(n) {
		return append(result, n)
	}
	for _, c := range n.Children {
		result = search(c, m, result)
	}
	return result
}

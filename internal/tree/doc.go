// Package tree turns a flat process snapshot into a forest and searches it.
//
// Build indexes records by parent pid and instantiates each tree top-down
// from the roots chosen by a RootPolicy. Children are always sorted by pid,
// so output is reproducible between runs.
//
// Search is a short-circuit depth-first filter: once a node matches, its
// whole subtree is taken as part of that match and not searched further.
// This gives "show me the subtrees owned by this user" semantics rather than
// a flat list of matching processes.
package tree

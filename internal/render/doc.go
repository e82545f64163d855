// Package render draws process trees for the terminal.
//
// A Renderer writes each node as "<pid> <command line>" behind box-drawing
// connectors:
//
//	└─ 2 bash
//	   ├─ 3 vim file
//	   └─ 4 make -j8 all
//	        CFLAGS=-O2
//
// Command lines are wrapped with Wrap to the width left after the indent,
// the connector and the pid. Continuation rows line up under the command
// text and keep vertical bars only where a sibling or child still follows.
//
// Encode writes the same nodes as JSON or YAML instead.
package render

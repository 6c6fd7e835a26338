// Package nuke wraps the Nuke command line for batch rendering and
// terminal-mode format conversion.
//
// Render drives `nuke -x` and parses "Frame N (i of n)" output into
// progress updates. Convert generates a small python snippet that wires a
// Read node into a Write node and executes it with `nuke -t`, so any
// format pair Nuke understands works without per-format code here.
package nuke

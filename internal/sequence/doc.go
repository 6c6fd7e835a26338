// Package sequence parses file paths and frame-sequence filenames.
//
// Parse decomposes an arbitrary path string into directory, filename, base,
// and extension without touching the filesystem. ParseSequence additionally
// recognizes the studio's frame-counter convention (shot.0042.exr or
// shot_0042.exr) and produces the printf-style pattern that ffmpeg and Nuke
// consume for sequence input.
//
// Both functions are total: malformed or empty input yields well-defined
// degenerate fields, never an error.
package sequence

// Package version bumps dot-delimited version strings and maintains the
// on-disk version file.
//
// Increment preserves each field's original digit width: "1.2.09" becomes
// "1.2.10", and an all-nines field wraps to zeros and carries left. Unlike
// the historical shell tooling, an overflow of the most-significant field
// grows the string ("9" becomes "10") instead of silently dropping the
// carried digit.
//
// BumpFile applies one increment to the first line of a version file and
// pushes the previous version onto a dated history list, under an flock
// sidecar so concurrent render nodes cannot interleave writes.
package version

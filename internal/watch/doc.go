// Package watch implements the drop-folder mode behind `slate watch`.
//
// A fsnotify watcher observes the configured directory, filenames are
// filtered through glob patterns, and each new file is held until its size
// stops changing before the transcode handler runs. The loop is foreground
// and exits on context cancellation.
package watch

// Command slate is the studio pipeline toolkit CLI. It wraps ffmpeg for
// transcoding and audio splitting, Nuke for batch rendering and format
// conversion, keeps a job log, bumps project version files, and can watch a
// drop folder for new media.
package main

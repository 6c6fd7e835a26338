// Package ffmpeg builds and runs ffmpeg command lines.
//
// Argument construction is pure and separately testable: Args renders a
// transcode invocation from a Request (movie or image-sequence input, codec
// preset, CRF), SplitAudioArgs renders the stereo-to-dual-mono split. The
// Runner wraps process execution, surfaces the last meaningful stderr line
// on failure, and streams time-based progress samples to a callback.
package ffmpeg

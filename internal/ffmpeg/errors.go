package ffmpeg

import "strings"

const maxErrorLineLen = 200

// lastMeaningfulLine returns the last non-empty, non-progress stderr line,
// truncated to a displayable length.
func lastMeaningfulLine(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "frame=") || strings.HasPrefix(line, "size=") {
			continue
		}
		if len(line) > maxErrorLineLen {
			return line[:maxErrorLineLen] + "..."
		}
		return line
	}
	return ""
}

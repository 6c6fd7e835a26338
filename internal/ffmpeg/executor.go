package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"
)

var commandContext = exec.CommandContext

// ProgressUpdate carries a progress sample parsed from ffmpeg stderr.
type ProgressUpdate struct {
	Position time.Duration
	Raw      string
}

// Runner executes ffmpeg command lines.
type Runner struct {
	binary string
}

// NewRunner constructs a Runner; an empty binary falls back to "ffmpeg".
func NewRunner(binary string) *Runner {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Runner{binary: binary}
}

const stderrTailLines = 40

var timePattern = regexp.MustCompile(`time=(\d+):(\d{2}):(\d{2})\.(\d+)`)

// Run launches ffmpeg with the given arguments, streaming progress samples
// to the callback. On failure the returned error carries the last
// meaningful stderr line.
func (r *Runner) Run(ctx context.Context, args []string, progress func(ProgressUpdate)) error {
	cmd := commandContext(ctx, r.binary, args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", r.binary, err)
	}

	var tail []string
	scanner := bufio.NewScanner(stderr)
	scanner.Split(scanStatusLines)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		tail = append(tail, line)
		if len(tail) > stderrTailLines {
			tail = tail[1:]
		}
		if progress == nil {
			continue
		}
		if pos, ok := parseTime(line); ok {
			progress(ProgressUpdate{Position: pos, Raw: line})
		}
	}

	if err := cmd.Wait(); err != nil {
		if detail := lastMeaningfulLine(tail); detail != "" {
			return fmt.Errorf("%s: %w: %s", r.binary, err, detail)
		}
		return fmt.Errorf("%s: %w", r.binary, err)
	}
	return nil
}

// scanStatusLines splits on both \n and \r so ffmpeg's in-place status
// updates arrive as individual lines.
func scanStatusLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, bytes.TrimSpace(data[:i]), nil
	}
	if atEOF {
		return len(data), bytes.TrimSpace(data), nil
	}
	return 0, nil, nil
}

func parseTime(line string) (time.Duration, bool) {
	m := timePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	frac, _ := strconv.Atoi(m[4])
	scale := time.Second
	for range m[4] {
		scale /= 10
	}
	pos := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(frac)*scale
	return pos, true
}

package nuke

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

// ProgressUpdate captures batch-render progress events.
type ProgressUpdate struct {
	Frame int
	Index int
	Total int
}

// ConvertRequest describes a terminal-mode format conversion.
type ConvertRequest struct {
	Input  string
	Output string
	First  int
	Last   int
}

// Client defines Nuke batch behaviour.
type Client interface {
	Render(ctx context.Context, script, frameRange string, progress func(ProgressUpdate)) error
	Convert(ctx context.Context, req ConvertRequest) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the nuke command line.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "nuke"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Frame lines look like "Frame 1012 (12 of 100)".
var frameLine = regexp.MustCompile(`^Frame\s+(\d+)\s+\((\d+)\s+of\s+(\d+)\)`)

// Render executes a Nuke script in batch mode. frameRange uses Nuke's
// native syntax ("1-100", "1-100x10", "42"); empty renders the script's own
// range.
func (c *CLI) Render(ctx context.Context, script, frameRange string, progress func(ProgressUpdate)) error {
	if script == "" {
		return errors.New("script path required")
	}

	args := []string{"-x"}
	if frameRange != "" {
		args = append(args, "-F", frameRange)
	}
	args = append(args, script)

	cmd := commandContext(ctx, c.binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start nuke: %w", err)
	}

	var lastLine string
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lastLine = line
		m := frameLine.FindStringSubmatch(line)
		if m == nil || progress == nil {
			continue
		}
		frame, _ := strconv.Atoi(m[1])
		index, _ := strconv.Atoi(m[2])
		total, _ := strconv.Atoi(m[3])
		progress(ProgressUpdate{Frame: frame, Index: index, Total: total})
	}

	if err := cmd.Wait(); err != nil {
		if lastLine != "" {
			return fmt.Errorf("nuke render: %w: %s", err, lastLine)
		}
		return fmt.Errorf("nuke render: %w", err)
	}
	return nil
}

// Convert runs Nuke in terminal mode with a generated python snippet that
// reads the input and writes the output, letting Nuke handle the format and
// bit-depth conversion. First/Last default to a single frame.
func (c *CLI) Convert(ctx context.Context, req ConvertRequest) error {
	if req.Input == "" {
		return errors.New("input path required")
	}
	if req.Output == "" {
		return errors.New("output path required")
	}
	first, last := req.First, req.Last
	if first == 0 && last == 0 {
		first, last = 1, 1
	}
	if last < first {
		return fmt.Errorf("invalid frame range %d-%d", first, last)
	}

	scriptPath, err := writeConvertScript(req.Input, req.Output, first, last)
	if err != nil {
		return err
	}
	defer os.Remove(scriptPath)

	cmd := commandContext(ctx, c.binary, "-t", scriptPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if detail := lastOutputLine(output); detail != "" {
			return fmt.Errorf("nuke convert: %w: %s", err, detail)
		}
		return fmt.Errorf("nuke convert: %w", err)
	}
	return nil
}

func writeConvertScript(input, output string, first, last int) (string, error) {
	var b strings.Builder
	b.WriteString("import nuke\n")
	fmt.Fprintf(&b, "read = nuke.nodes.Read(file=%s)\n", pyString(input))
	fmt.Fprintf(&b, "read['first'].setValue(%d)\n", first)
	fmt.Fprintf(&b, "read['last'].setValue(%d)\n", last)
	fmt.Fprintf(&b, "write = nuke.nodes.Write(file=%s)\n", pyString(output))
	b.WriteString("write.setInput(0, read)\n")
	fmt.Fprintf(&b, "nuke.execute(write, %d, %d)\n", first, last)

	file, err := os.CreateTemp("", "slate-convert-*.py")
	if err != nil {
		return "", fmt.Errorf("create convert script: %w", err)
	}
	if _, err := file.WriteString(b.String()); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("write convert script: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("close convert script: %w", err)
	}
	return file.Name(), nil
}

// pyString renders a python string literal. Sequence patterns pass through
// untouched; Nuke reads %04d-style paths natively.
func pyString(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + replacer.Replace(s) + "'"
}

func lastOutputLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

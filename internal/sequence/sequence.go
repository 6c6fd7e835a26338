package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// Parsed decomposes a path into directory, filename, base, and extension.
// Directory keeps its trailing slash so Directory+Filename reassembles the
// original input exactly.
type Parsed struct {
	FullPath  string
	Directory string
	Filename  string
	Base      string
	Ext       string
}

// Info extends Parsed with frame-counter fields. When IsSequence is false,
// SequenceBase mirrors Base and the remaining fields are empty.
type Info struct {
	Parsed
	IsSequence   bool
	SequenceBase string
	Separator    string
	Counter      string
	Pattern      string
}

// Parse splits fullPath on its last slash and the filename on its last dot.
// Dotfiles such as .gitignore are treated as a bare name rather than an
// empty base with an extension.
func Parse(fullPath string) Parsed {
	p := Parsed{FullPath: fullPath, Filename: fullPath}
	if idx := strings.LastIndexByte(fullPath, '/'); idx >= 0 {
		p.Directory = fullPath[:idx+1]
		p.Filename = fullPath[idx+1:]
	}
	if dot := strings.LastIndexByte(p.Filename, '.'); dot >= 0 {
		p.Base = p.Filename[:dot]
		p.Ext = p.Filename[dot+1:]
	} else {
		p.Base = p.Filename
	}
	if p.Ext == "" {
		// A trailing dot carries no extension.
		p.Base = p.Filename
	}
	if p.Base == "" && p.Ext != "" && strings.HasPrefix(p.Filename, ".") {
		p.Base = p.Filename
		p.Ext = ""
	}
	return p
}

// ParseSequence recognizes filenames of the form <base><sep><digits>.<ext>
// where sep is "." or "_". The counter binds to the rightmost contiguous
// digit run directly before the final extension, so v02_shot_0012.exr yields
// counter 0012, not 2. Pattern substitutes the counter with a zero-padded
// %0Nd placeholder of the same width.
func ParseSequence(fullPath string) Info {
	info := Info{Parsed: Parse(fullPath)}
	info.SequenceBase = info.Base
	if info.Ext == "" {
		return info
	}

	base := info.Base
	end := len(base)
	start := end
	for start > 0 && base[start-1] >= '0' && base[start-1] <= '9' {
		start--
	}
	// Need at least one digit, a separator, and non-empty text before it.
	if start == end || start < 2 {
		return info
	}
	sep := base[start-1]
	if sep != '.' && sep != '_' {
		return info
	}

	info.IsSequence = true
	info.SequenceBase = base[:start-1]
	info.Separator = string(sep)
	info.Counter = base[start:]
	info.Pattern = fmt.Sprintf("%s%s%s%%0%dd.%s",
		info.Directory, info.SequenceBase, info.Separator, len(info.Counter), info.Ext)
	return info
}

// FrameNumber returns the numeric value of the counter. The second return is
// false for non-sequence paths or counters too large for an int.
func (i Info) FrameNumber() (int, bool) {
	if !i.IsSequence {
		return 0, false
	}
	n, err := strconv.Atoi(i.Counter)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FrameFile renders the path of frame n using the sequence pattern. It
// returns the original path for non-sequence inputs.
func (i Info) FrameFile(n int) string {
	if !i.IsSequence {
		return i.FullPath
	}
	return fmt.Sprintf(i.Pattern, n)
}

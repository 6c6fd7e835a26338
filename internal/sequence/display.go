package sequence

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName derives a human-readable title from a path, e.g.
// "/renders/sh010_comp_v02.0042.exr" becomes "Sh010 Comp V02". Sequence
// counters are dropped; separators collapse into single spaces.
func DisplayName(path string) string {
	if path == "" {
		return "Untitled"
	}
	info := ParseSequence(path)
	name := info.SequenceBase
	if name == "" {
		name = info.Filename
	}

	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(title)
}

package version

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// Seed is the version assumed when bumping a file that does not exist yet.
const Seed = "1.0.0"

// LoadFile returns the current version, the first line of the file at path.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read version file: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	current := strings.TrimSpace(line)
	if current == "" {
		return "", fmt.Errorf("%w: version file %s is empty", ErrInvalidFormat, path)
	}
	return current, nil
}

// BumpFile increments the version stored at path and returns the old and new
// versions. The file keeps the current version on its first line followed by
// history entries "<version>\t<RFC3339 date>", newest first. A missing file
// is seeded from Seed. Nothing is written when the stored version is
// malformed.
func BumpFile(path string) (string, string, error) {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return "", "", fmt.Errorf("lock version file: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	current := Seed
	var history []string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		if first := strings.TrimSpace(lines[0]); first != "" {
			current = first
			history = lines[1:]
		}
	case errors.Is(err, fs.ErrNotExist):
		// Seed a fresh file.
	default:
		return "", "", fmt.Errorf("read version file: %w", err)
	}

	next, err := Increment(current)
	if err != nil {
		return "", "", err
	}

	stamp := time.Now().Format(time.RFC3339)
	lines := make([]string, 0, len(history)+2)
	lines = append(lines, next, current+"\t"+stamp)
	lines = append(lines, history...)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return "", "", fmt.Errorf("write version file: %w", err)
	}
	return current, next, nil
}

package version

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidFormat reports input that is not dot-delimited digit fields.
var ErrInvalidFormat = errors.New("invalid version format")

var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// Increment adds one to the least-significant field of v, carrying leftward.
// Each field keeps its original digit width: a value that still fits renders
// zero-padded, an all-nines field wraps to zeros and carries. When the carry
// passes the leftmost field the string grows by one digit.
func Increment(v string) (string, error) {
	if !versionPattern.MatchString(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, v)
	}

	fields := strings.Split(v, ".")
	carry := true
	for i := len(fields) - 1; i >= 0 && carry; i-- {
		fields[i], carry = addOne(fields[i])
	}
	if carry {
		fields[0] = "1" + fields[0]
	}
	return strings.Join(fields, "."), nil
}

// addOne increments a decimal digit string in place of integer math, so
// field width is preserved without parsing. The second return reports that
// the field was all nines and wrapped to zeros.
func addOne(field string) (string, bool) {
	digits := []byte(field)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			return string(digits), false
		}
		digits[i] = '0'
	}
	return string(digits), true
}

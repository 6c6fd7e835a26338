package version

import (
	"errors"
	"testing"
)

func TestIncrement(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "1.2.3", "1.2.4"},
		{"field grows within width", "1.2.09", "1.2.10"},
		{"carry across fields", "1.9.9", "2.0.0"},
		{"wide field wraps", "1.099", "1.100"},
		{"zero padding preserved", "01.02", "01.03"},
		{"all nines middle", "2.99.9", "3.00.0"},
		{"single field", "41", "42"},
		{"leading zeros kept", "007", "008"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Increment(tc.input)
			if err != nil {
				t.Fatalf("Increment(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Increment(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestIncrementGrowsLeftmostField(t *testing.T) {
	// The historical shell tooling wrapped "9" to "0", losing the carry.
	// That was judged a bug; the leftmost field grows instead.
	cases := map[string]string{
		"9":     "10",
		"9.9":   "10.0",
		"99.99": "100.00",
	}
	for input, want := range cases {
		got, err := Increment(input)
		if err != nil {
			t.Fatalf("Increment(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Errorf("Increment(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIncrementInvalidFormat(t *testing.T) {
	inputs := []string{
		"abc",
		"",
		"1..2",
		"1.2.",
		".1.2",
		"1.2b",
		"v1.2.3",
		"1.-2",
		"1. 2",
	}
	for _, in := range inputs {
		if _, err := Increment(in); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Increment(%q): expected ErrInvalidFormat, got %v", in, err)
		}
	}
}

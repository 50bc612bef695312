// Package testing provides test utilities for cloak.
package testing

import (
	"testing"
	"unicode/utf8"

	"github.com/zoobzio/cloak"
)

// GoldenInputs returns sample values covering every character class,
// repeated characters, non-ASCII text and punctuation inside the
// alphanumeric byte range.
func GoldenInputs() []string {
	return []string{
		"",
		"!!!",
		"a1B",
		"aaa",
		"AZaz09",
		"Hello, World!",
		"alice@example.com",
		"4111-1111-1111-1111",
		"123-45-6789",
		"John Smith",
		"ñandú Ünïcode 42",
		"[user_name]",
		"Zürich 8001",
	}
}

// ClassesOf returns the class of every code point in s.
func ClassesOf(s string) []cloak.Class {
	classes := make([]cloak.Class, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		classes = append(classes, cloak.Classify(r))
	}
	return classes
}

// AssertFormatPreserved fails t unless masked has the length of original,
// the same class at every position and the same Other characters.
func AssertFormatPreserved(t testing.TB, original, masked string) {
	t.Helper()

	if len(masked) != len(original) {
		t.Fatalf("length %d, want %d (input %q, output %q)", len(masked), len(original), original, masked)
	}

	in := []rune(original)
	out := []rune(masked)
	if len(in) != len(out) {
		t.Fatalf("code points %d, want %d (input %q, output %q)", len(out), len(in), original, masked)
	}
	for i := range in {
		c := cloak.Classify(in[i])
		if got := cloak.Classify(out[i]); got != c {
			t.Errorf("position %d: class %v, want %v (input %q, output %q)", i, got, c, original, masked)
		}
		if c == cloak.ClassOther && out[i] != in[i] {
			t.Errorf("position %d: %q changed to %q", i, in[i], out[i])
		}
	}
}

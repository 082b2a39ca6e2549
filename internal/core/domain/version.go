package domain

import (
	"cmp"
	"strings"

	"golang.org/x/text/cases"
)

// CompareVersions orders two dotted version strings.
// It returns a negative number when a < b, zero when they are equal and a
// positive number when a > b.
//
// Segments are compared pairwise. Two segments made only of digits are compared
// numerically at any width, anything else is compared case-insensitively as text.
// When all shared segments are equal the version with more segments wins, so
// "1.0.0" is greater than "1.0". Pre-release labels get no special treatment.
func CompareVersions(a, b string) int {
	if a == b {
		return 0
	}

	left := strings.Split(a, ".")
	right := strings.Split(b, ".")

	// Caser is stateful, one per call.
	fold := cases.Fold()

	for i := 0; i < len(left) && i < len(right); i++ {
		if c := compareSegment(fold, left[i], right[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(left) > len(right):
		return 1
	case len(left) < len(right):
		return -1
	default:
		return 0
	}
}

func compareSegment(fold cases.Caser, a, b string) int {
	if isDigits(a) && isDigits(b) {
		a, b = trimZeros(a), trimZeros(b)
		if len(a) != len(b) {
			return cmp.Compare(len(a), len(b))
		}
		return strings.Compare(a, b)
	}

	return strings.Compare(fold.String(a), fold.String(b))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// trimZeros drops leading zeros, keeping a single "0".
func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}

// MaxVersion returns the greater of two versions. Ties keep a.
// An empty version is treated as absent.
func MaxVersion(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case CompareVersions(b, a) > 0:
		return b
	default:
		return a
	}
}

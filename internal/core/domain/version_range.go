package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// VersionRange is an interval of versions written in NuGet interval notation,
// e.g. "[1.0,2.0)", "(1.0,)" or "[1.0]". An empty bound is unbounded.
type VersionRange struct {
	Lower          string
	LowerInclusive bool
	Upper          string
	UpperInclusive bool
}

// IsRangeExpression reports whether s is written in interval notation rather
// than as a pinned version.
func IsRangeExpression(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "[") || strings.HasPrefix(s, "(")
}

// ParseVersionRange parses an interval expression.
func ParseVersionRange(expr string) (VersionRange, error) {
	s := strings.TrimSpace(expr)
	if len(s) < 2 {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "expression", expr)
	}

	open, closing := s[0], s[len(s)-1]
	if (open != '[' && open != '(') || (closing != ']' && closing != ')') {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "expression", expr)
	}

	body := s[1 : len(s)-1]
	r := VersionRange{
		LowerInclusive: open == '[',
		UpperInclusive: closing == ']',
	}

	lower, upper, hasComma := strings.Cut(body, ",")
	if !hasComma {
		// "[1.0]" pins a single version.
		v := strings.TrimSpace(body)
		if v == "" || !r.LowerInclusive || !r.UpperInclusive {
			return VersionRange{}, zerr.With(ErrInvalidVersionRange, "expression", expr)
		}
		r.Lower, r.Upper = v, v
		return r, nil
	}

	if strings.Contains(upper, ",") {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "expression", expr)
	}

	r.Lower = strings.TrimSpace(lower)
	r.Upper = strings.TrimSpace(upper)

	if r.Lower == "" && r.Upper == "" {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "expression", expr)
	}

	return r, nil
}

// Narrow intersects two ranges: the greater lower bound and the lesser upper
// bound. When both ranges share a bound, it stays inclusive only if it is
// inclusive in both. The result may be empty, see IsEmpty.
func (r VersionRange) Narrow(other VersionRange) VersionRange {
	out := r

	switch {
	case other.Lower == "":
	case out.Lower == "":
		out.Lower, out.LowerInclusive = other.Lower, other.LowerInclusive
	default:
		c := CompareVersions(other.Lower, out.Lower)
		if c > 0 {
			out.Lower, out.LowerInclusive = other.Lower, other.LowerInclusive
		} else if c == 0 {
			out.LowerInclusive = out.LowerInclusive && other.LowerInclusive
		}
	}

	switch {
	case other.Upper == "":
	case out.Upper == "":
		out.Upper, out.UpperInclusive = other.Upper, other.UpperInclusive
	default:
		c := CompareVersions(other.Upper, out.Upper)
		if c < 0 {
			out.Upper, out.UpperInclusive = other.Upper, other.UpperInclusive
		} else if c == 0 {
			out.UpperInclusive = out.UpperInclusive && other.UpperInclusive
		}
	}

	return out
}

// IsEmpty reports whether no version can satisfy the range.
func (r VersionRange) IsEmpty() bool {
	if r.Lower == "" || r.Upper == "" {
		return false
	}

	c := CompareVersions(r.Lower, r.Upper)
	switch {
	case c > 0:
		return true
	case c == 0:
		return !r.LowerInclusive || !r.UpperInclusive
	default:
		return false
	}
}

// Contains reports whether v lies within the range.
func (r VersionRange) Contains(v string) bool {
	if r.Lower != "" {
		c := CompareVersions(v, r.Lower)
		if c < 0 || (c == 0 && !r.LowerInclusive) {
			return false
		}
	}
	if r.Upper != "" {
		c := CompareVersions(v, r.Upper)
		if c > 0 || (c == 0 && !r.UpperInclusive) {
			return false
		}
	}
	return true
}

// String renders the range back into interval notation.
func (r VersionRange) String() string {
	if r.Lower != "" && r.Lower == r.Upper && r.LowerInclusive && r.UpperInclusive {
		return "[" + r.Lower + "]"
	}

	var b strings.Builder
	if r.LowerInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(r.Lower)
	b.WriteString(", ")
	b.WriteString(r.Upper)
	if r.UpperInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

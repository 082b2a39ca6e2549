package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Mode selects how versions are chosen across projects.
type Mode string

const (
	// ModeAligned raises every project to the workspace-wide maximum version.
	ModeAligned Mode = "aligned"
	// ModeExplicit keeps each project's own version.
	ModeExplicit Mode = "explicit"
)

// ParseMode converts a user-supplied string to a Mode. An empty string
// selects ModeAligned.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAligned:
		return ModeAligned, nil
	case ModeExplicit:
		return ModeExplicit, nil
	default:
		return "", zerr.With(ErrInvalidMode, "mode", s)
	}
}

package model

import "fmt"

// ResolveMode controls how much previous-outpoint data is attached to inputs.
type ResolveMode string

const (
	ResolveNone  ResolveMode = "no"
	ResolveLight ResolveMode = "light"
	ResolveFull  ResolveMode = "full"
)

// ParseResolveMode maps an empty value to ResolveNone.
func ParseResolveMode(value string) (ResolveMode, error) {
	if value == "" {
		return ResolveNone, nil
	}
	mode := ResolveMode(value)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: unknown resolve mode %q", ErrInvalidRequest, value)
	}
	return mode, nil
}

func (m ResolveMode) Valid() bool {
	switch m {
	case ResolveNone, ResolveLight, ResolveFull:
		return true
	default:
		return false
	}
}

// Resolves reports whether the mode looks up previous outpoints at all.
func (m ResolveMode) Resolves() bool {
	return m == ResolveLight || m == ResolveFull
}

package spec

import (
	"github.com/imgforge/bootstage/pkg/types"
)

// State describes the outcome of resolving a specification.
type State int

const (
	// StateDisabled means no specification was supplied at all.
	StateDisabled State = iota
	// StateNoMatches means entries were present but none matched a file.
	StateNoMatches
	// StateResolved means resolution produced pairs (possibly none, when
	// the specification was empty after whitespace splitting).
	StateResolved
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateNoMatches:
		return "no-matches"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Resolution is the tagged result of resolving a specification. The
// three states keep "feature not requested" distinguishable from
// "requested but nothing matched", which drives the installer's
// warning-vs-silence policy.
type Resolution struct {
	state State
	pairs []types.Pair
}

// Disabled returns the resolution for an absent specification.
func Disabled() Resolution {
	return Resolution{state: StateDisabled}
}

// NoMatches returns the resolution for a specification whose entries
// matched no files.
func NoMatches() Resolution {
	return Resolution{state: StateNoMatches}
}

// Resolved returns a resolution carrying the given pairs.
func Resolved(pairs []types.Pair) Resolution {
	return Resolution{state: StateResolved, pairs: pairs}
}

// State returns the resolution state.
func (r Resolution) State() State {
	return r.state
}

// Pairs returns the resolved pairs in entry order. Nil unless the state
// is StateResolved.
func (r Resolution) Pairs() []types.Pair {
	return r.pairs
}

// Enabled reports whether a specification was supplied.
func (r Resolution) Enabled() bool {
	return r.state != StateDisabled
}

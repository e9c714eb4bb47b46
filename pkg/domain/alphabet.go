package domain

import "strings"

// Comment delimiter: everything after the first ';' on a line is
// ignored by the parser. The header tokens (";I", ";S") are resolved
// before comment stripping applies.
const CommentDelim = ';'

// Alphabet bundles the reserved symbols and label prefixes a
// conversion operates with. The zero value is not usable; start from
// DefaultAlphabet and override fields as needed.
//
// Precondition, not enforced at runtime: user-supplied state labels
// never begin with HaltPrefix, SimPrefix, or any of the engine's
// control-state prefixes. Synthesized labels are plain string
// concatenations and rely on that to stay collision-free.
type Alphabet struct {
	// LeftWall marks the conceptual origin of a bounded tape.
	LeftWall rune
	// RightWall marks the current right edge of the simulated region.
	RightWall rune
	// Blank is the empty-cell symbol.
	Blank rune
	// Wildcard means "any symbol" as an input and "unchanged" as an
	// output. Output-side wildcards are a rendering convention only.
	Wildcard rune

	// HaltPrefix marks terminal states. Labels starting with it are
	// never renamed and never retargeted.
	HaltPrefix string
	// SimPrefix is the namespace the embedded machine's states are
	// moved into, keeping them clear of synthesized control states.
	SimPrefix string
	// StartState is the start label of the generated table.
	StartState string
}

// DefaultAlphabet returns the conventional symbol set used by the
// textual table format.
func DefaultAlphabet() Alphabet {
	return Alphabet{
		LeftWall:   '#',
		RightWall:  '$',
		Blank:      '_',
		Wildcard:   '*',
		HaltPrefix: "halt",
		SimPrefix:  "sim_",
		StartState: "0",
	}
}

// IsHalt reports whether a state label is terminal.
func (a Alphabet) IsHalt(state string) bool {
	return strings.HasPrefix(state, a.HaltPrefix)
}

// SimStart is the renamed start state of the embedded machine.
func (a Alphabet) SimStart() string {
	return a.SimPrefix + a.StartState
}

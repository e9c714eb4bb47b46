package domain

// MachineType identifies the tape-boundary convention of a table and
// selects which conversion pipeline runs.
type MachineType int

const (
	// MachineInfinite is the doubly-infinite tape model: no markers,
	// the tape extends indefinitely in both directions.
	MachineInfinite MachineType = iota
	// MachineSipser is the singly-infinite model bounded on the left
	// by an origin marker.
	MachineSipser
)

// Header tokens, expected verbatim on the first line of a table.
const (
	HeaderInfinite = ";I"
	HeaderSipser   = ";S"
)

// ParseMachineType resolves the header line of a table.
// Anything other than the two known tokens fails with a *HeaderError.
func ParseMachineType(line string) (MachineType, error) {
	switch line {
	case HeaderInfinite:
		return MachineInfinite, nil
	case HeaderSipser:
		return MachineSipser, nil
	default:
		return 0, &HeaderError{Line: line}
	}
}

// Target returns the model a table of this type converts into.
func (m MachineType) Target() MachineType {
	if m == MachineInfinite {
		return MachineSipser
	}
	return MachineInfinite
}

func (m MachineType) String() string {
	switch m {
	case MachineInfinite:
		return "Infinite"
	case MachineSipser:
		return "Sipser"
	default:
		return "Unknown"
	}
}

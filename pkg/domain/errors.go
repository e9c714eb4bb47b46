package domain

import "fmt"

// HeaderError reports a first line that is neither of the two known
// machine-type tokens. Line carries the offending text.
type HeaderError struct {
	Line string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("invalid machine type header: %q", e.Line)
}

// PartCountError reports a transition line that did not split into
// exactly five tokens.
type PartCountError struct {
	Count int
}

func (e *PartCountError) Error() string {
	return fmt.Sprintf("invalid number of parts, expected 5, got %d", e.Count)
}

// SymbolError reports a symbol token that is not exactly one character.
type SymbolError struct {
	Token string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid symbol, must be a single character: %q", e.Token)
}

// DirectionError reports an unrecognized direction token.
type DirectionError struct {
	Token string
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("invalid direction: %q", e.Token)
}

package domain

import "fmt"

// Transition is one rule of a machine table: in CurrentState, reading
// CurrentSymbol, write NewSymbol, move Direction, enter NewState.
//
// Transitions are immutable values. Pipeline stages derive new records
// rather than mutating the ones they were given.
type Transition struct {
	CurrentState  string
	CurrentSymbol rune
	NewSymbol     rune
	Direction     Direction
	NewState      string
}

// Render writes the five-token line form, collapsing NewSymbol to the
// wildcard when it equals CurrentSymbol and NewState to the wildcard
// when it equals CurrentState. The compression is output-only; the
// engine always compares fully expanded records.
func (t Transition) Render(a Alphabet) string {
	newSymbol := string(t.NewSymbol)
	if t.NewSymbol == t.CurrentSymbol {
		newSymbol = string(a.Wildcard)
	}
	newState := t.NewState
	if t.NewState == t.CurrentState {
		newState = string(a.Wildcard)
	}
	return fmt.Sprintf("%s %c %s %s %s",
		t.CurrentState, t.CurrentSymbol, newSymbol, t.Direction, newState)
}

// String renders with the default alphabet.
func (t Transition) String() string {
	return t.Render(DefaultAlphabet())
}

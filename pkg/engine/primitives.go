package engine

import "github.com/lviana15/tapeconv/pkg/domain"

// The three reusable control-state generators both pipelines are
// assembled from. Each returns a self-contained transition cluster.

// carrySweep models rightward binary-increment propagation over the
// '0'/'1' symbols. State a carries nothing: it copies '0's and turns a
// '1' into '0' while generating a carry (entering b). State b holds a
// carry: it absorbs into a '0' (back to a) or propagates over a '1'.
// Used whenever the bounded region must grow by one logical unit while
// preserving its content.
func (e *Engine) carrySweep(a, b string) []domain.Transition {
	return []domain.Transition{
		{CurrentState: a, CurrentSymbol: '0', NewSymbol: '0', Direction: domain.DirectionRight, NewState: a},
		{CurrentState: a, CurrentSymbol: '1', NewSymbol: '0', Direction: domain.DirectionRight, NewState: b},
		{CurrentState: b, CurrentSymbol: '0', NewSymbol: '1', Direction: domain.DirectionRight, NewState: a},
		{CurrentState: b, CurrentSymbol: '1', NewSymbol: '1', Direction: domain.DirectionRight, NewState: b},
	}
}

// returnHead scans left over any symbol in r until the left wall, then
// steps right once into target, leaving the head on the first real
// cell.
func (e *Engine) returnHead(r, target string) []domain.Transition {
	wildcard := e.alpha.Wildcard
	return []domain.Transition{
		{CurrentState: r, CurrentSymbol: wildcard, NewSymbol: wildcard, Direction: domain.DirectionLeft, NewState: r},
		{CurrentState: r, CurrentSymbol: e.alpha.LeftWall, NewSymbol: e.alpha.LeftWall, Direction: domain.DirectionRight, NewState: target},
	}
}

// boundaryCheck is the generic "is this the wall?" dispatch: in check,
// any symbol stays in place and defers to fallback; the trigger symbol
// writes newSymbol, moves dir, and enters target. The wildcard default
// is emitted first; the interpreter picks the more specific rule.
func (e *Engine) boundaryCheck(check, fallback string, trigger, newSymbol rune, dir domain.Direction, target string) []domain.Transition {
	wildcard := e.alpha.Wildcard
	return []domain.Transition{
		{CurrentState: check, CurrentSymbol: wildcard, NewSymbol: wildcard, Direction: domain.DirectionStay, NewState: fallback},
		{CurrentState: check, CurrentSymbol: trigger, NewSymbol: newSymbol, Direction: dir, NewState: target},
	}
}

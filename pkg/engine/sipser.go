package engine

import (
	"slices"

	"github.com/lviana15/tapeconv/pkg/domain"
)

// SipserToInfinite rewrites a left-bounded table into one for the
// doubly-infinite model. The unbounded tape never needs room made for
// it; the only thing to simulate is the wall itself. A nominal left
// wall is planted during setup, and any leftward move that lands on it
// halts — the source machine crossing its origin is interpreted as
// termination, an assumption this tool preserves rather than checks.
//
// The input is expected to already be renamed into the simulation
// namespace.
func (e *Engine) SipserToInfinite(transitions []domain.Transition) []domain.Transition {
	out := e.wallSetup(e.alpha.SimStart())

	targets := make(map[string]struct{})
	for _, t := range transitions {
		if t.Direction == domain.DirectionLeft {
			if !e.alpha.IsHalt(t.NewState) {
				targets[t.NewState] = struct{}{}
			}
			t.NewState = e.retarget(t.NewState, PrefixCheckLeftWall+t.NewState)
		}
		out = append(out, t)
	}

	sortedTargets := make([]string, 0, len(targets))
	for state := range targets {
		sortedTargets = append(sortedTargets, state)
	}
	slices.Sort(sortedTargets)
	for _, state := range sortedTargets {
		out = append(out, e.boundaryCheck(
			PrefixCheckLeftWall+state, state,
			e.alpha.LeftWall, e.alpha.LeftWall,
			domain.DirectionStay, e.alpha.HaltPrefix,
		)...)
	}

	e.logger.Debug("converted sipser table",
		"source_transitions", len(transitions),
		"targets", len(targets),
		"output_transitions", len(out))
	return out
}

// wallSetup plants a single left wall in the first blank cell to the
// left of the start position and hands control to the renamed start
// state. The wall is nominal: nothing enforces it afterwards beyond
// the check_left_wall clusters.
func (e *Engine) wallSetup(simStart string) []domain.Transition {
	wildcard := e.alpha.Wildcard
	return []domain.Transition{
		{CurrentState: e.alpha.StartState, CurrentSymbol: wildcard, NewSymbol: wildcard, Direction: domain.DirectionLeft, NewState: stateWriteWall},
		{CurrentState: stateWriteWall, CurrentSymbol: e.alpha.Blank, NewSymbol: e.alpha.LeftWall, Direction: domain.DirectionRight, NewState: simStart},
	}
}

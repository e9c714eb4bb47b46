package engine

import (
	"slices"

	"github.com/lviana15/tapeconv/pkg/domain"
)

// InfiniteToSipser rewrites a doubly-infinite table into one that runs
// on a tape delimited by a left wall at the origin and a relocatable
// right wall. The bounded region grows on demand: crossing the right
// wall pushes it one cell further, crossing the left wall shifts the
// whole tape content right by one cell.
//
// The input is expected to already be renamed into the simulation
// namespace. The returned table starts with the setup cluster, then
// the rewritten source transitions, then one check_right and one
// check_left cluster per distinct rewrite target in sorted order.
func (e *Engine) InfiniteToSipser(transitions []domain.Transition) []domain.Transition {
	out := e.setup(e.alpha.SimStart())

	targets := make(map[string]struct{})
	for _, t := range transitions {
		if !e.alpha.IsHalt(t.NewState) {
			targets[t.NewState] = struct{}{}
		}
		if e.alpha.IsHalt(t.CurrentState) {
			out = append(out, t)
			continue
		}
		switch t.Direction {
		case domain.DirectionRight:
			t.NewState = e.retarget(t.NewState, PrefixCheckRight+t.NewState)
		case domain.DirectionLeft:
			t.NewState = e.retarget(t.NewState, PrefixCheckLeft+t.NewState)
		}
		out = append(out, t)
	}

	sortedTargets := make([]string, 0, len(targets))
	for state := range targets {
		sortedTargets = append(sortedTargets, state)
	}
	slices.Sort(sortedTargets)
	for _, state := range sortedTargets {
		out = append(out, e.checkRight(state)...)
		out = append(out, e.checkLeft(state)...)
	}

	e.logger.Debug("converted infinite table",
		"source_transitions", len(transitions),
		"targets", len(targets),
		"output_transitions", len(out))
	return out
}

// setup delimits the simulated region before the embedded machine
// runs: write the left wall over the origin cell, carry-sweep any
// pre-existing content one cell right to make room for it, append the
// right wall past the content, and return the head to the first real
// cell in the renamed start state. An initially blank tape gets both
// walls directly.
func (e *Engine) setup(simStart string) []domain.Transition {
	start := e.alpha.StartState
	blank := e.alpha.Blank

	out := []domain.Transition{
		{CurrentState: start, CurrentSymbol: '0', NewSymbol: e.alpha.LeftWall, Direction: domain.DirectionRight, NewState: stateCarry0},
		{CurrentState: start, CurrentSymbol: '1', NewSymbol: e.alpha.LeftWall, Direction: domain.DirectionRight, NewState: stateCarry1},
	}
	out = append(out, e.carrySweep(stateCarry0, stateCarry1)...)
	out = append(out,
		domain.Transition{CurrentState: stateCarry0, CurrentSymbol: blank, NewSymbol: '0', Direction: domain.DirectionRight, NewState: stateWriteEndMarker},
		domain.Transition{CurrentState: stateCarry1, CurrentSymbol: blank, NewSymbol: '1', Direction: domain.DirectionRight, NewState: stateWriteEndMarker},
		domain.Transition{CurrentState: stateWriteEndMarker, CurrentSymbol: blank, NewSymbol: e.alpha.RightWall, Direction: domain.DirectionLeft, NewState: stateReturnHead},
	)
	out = append(out, e.returnHead(stateReturnHead, simStart)...)
	out = append(out,
		domain.Transition{CurrentState: start, CurrentSymbol: blank, NewSymbol: e.alpha.LeftWall, Direction: domain.DirectionRight, NewState: stateWriteEndEmpty},
		domain.Transition{CurrentState: stateWriteEndEmpty, CurrentSymbol: blank, NewSymbol: e.alpha.RightWall, Direction: domain.DirectionLeft, NewState: simStart},
	)
	return out
}

// checkRight guards a rightward entry into state: on the right wall,
// free the cell, plant the wall one cell further, and step back onto
// the freed cell before resuming; on anything else resume immediately.
func (e *Engine) checkRight(state string) []domain.Transition {
	check := PrefixCheckRight + state
	expand := PrefixExpandRight + state

	out := e.boundaryCheck(check, state, e.alpha.RightWall, e.alpha.Blank, domain.DirectionRight, expand)
	return append(out, domain.Transition{
		CurrentState:  expand,
		CurrentSymbol: e.alpha.Blank,
		NewSymbol:     e.alpha.RightWall,
		Direction:     domain.DirectionLeft,
		NewState:      state,
	})
}

// checkLeft guards a leftward entry into state: on the left wall the
// whole tape content is shifted one cell right (simulating unbounded
// leftward growth), then control resumes in state; on anything else
// resume immediately.
func (e *Engine) checkLeft(state string) []domain.Transition {
	check := PrefixCheckLeft + state
	shiftStart := PrefixShiftStart + state

	out := e.boundaryCheck(check, state, e.alpha.LeftWall, e.alpha.LeftWall, domain.DirectionRight, shiftStart)
	return append(out, e.shiftChain(state, shiftStart)...)
}

// shiftChain moves every bit one cell right: lift the leftmost bit,
// carry it cell by cell via carrySweep, and drop the displaced value
// into the vacated rightmost cell. The sweep terminates on a blank or
// directly on the right wall, which is then re-planted one cell
// further. returnHead resynchronizes before resuming state.
func (e *Engine) shiftChain(state, shiftStart string) []domain.Transition {
	carry0 := PrefixShiftCarry0 + state
	carry1 := PrefixShiftCarry1 + state
	writeEnd := PrefixShiftWriteEnd + state
	returnState := PrefixShiftReturn + state
	blank := e.alpha.Blank

	out := []domain.Transition{
		{CurrentState: shiftStart, CurrentSymbol: '0', NewSymbol: blank, Direction: domain.DirectionRight, NewState: carry0},
		{CurrentState: shiftStart, CurrentSymbol: '1', NewSymbol: blank, Direction: domain.DirectionRight, NewState: carry1},
		{CurrentState: shiftStart, CurrentSymbol: blank, NewSymbol: blank, Direction: domain.DirectionStay, NewState: state},
	}
	out = append(out, e.carrySweep(carry0, carry1)...)
	out = append(out,
		domain.Transition{CurrentState: carry0, CurrentSymbol: blank, NewSymbol: '0', Direction: domain.DirectionRight, NewState: writeEnd},
		domain.Transition{CurrentState: carry1, CurrentSymbol: blank, NewSymbol: '1', Direction: domain.DirectionRight, NewState: writeEnd},
		domain.Transition{CurrentState: carry0, CurrentSymbol: e.alpha.RightWall, NewSymbol: '0', Direction: domain.DirectionRight, NewState: writeEnd},
		domain.Transition{CurrentState: carry1, CurrentSymbol: e.alpha.RightWall, NewSymbol: '1', Direction: domain.DirectionRight, NewState: writeEnd},
		domain.Transition{CurrentState: shiftStart, CurrentSymbol: e.alpha.RightWall, NewSymbol: blank, Direction: domain.DirectionRight, NewState: writeEnd},
		domain.Transition{CurrentState: writeEnd, CurrentSymbol: blank, NewSymbol: e.alpha.RightWall, Direction: domain.DirectionLeft, NewState: returnState},
	)
	return append(out, e.returnHead(returnState, state)...)
}

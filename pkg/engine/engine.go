// Package engine rewrites machine tables between tape-boundary
// conventions. It renames the embedded machine's states into a private
// namespace, rewrites boundary-crossing transitions, and synthesizes
// the control-state clusters that simulate tape expansion, boundary
// detection, and termination on the target model.
package engine

import (
	"io"
	"log/slog"

	"github.com/lviana15/tapeconv/pkg/domain"
)

// Control-state label prefixes. Synthesized labels are deterministic
// concatenations of one of these with an existing state label; user
// labels are assumed never to start with any of them.
const (
	PrefixCheckRight    = "check_right_"
	PrefixCheckLeft     = "check_left_"
	PrefixCheckLeftWall = "check_left_wall_"
	PrefixExpandRight   = "expand_right_"
	PrefixShiftStart    = "shift_start_"
	PrefixShiftCarry0   = "shift_carry_0_"
	PrefixShiftCarry1   = "shift_carry_1_"
	PrefixShiftWriteEnd = "shift_write_end_"
	PrefixShiftReturn   = "shift_return_"
)

// Fixed control states of the setup clusters.
const (
	stateCarry0         = "q_carry_0"
	stateCarry1         = "q_carry_1"
	stateWriteEndMarker = "q_write_end_marker"
	stateWriteEndEmpty  = "q_write_end_marker_empty"
	stateReturnHead     = "q_return_head"
	stateWriteWall      = "q_write_wall"
)

// Engine synthesizes conversion tables. It is stateless between calls;
// every method is a pure function over its input transitions.
type Engine struct {
	alpha  domain.Alphabet
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithAlphabet overrides the default reserved symbols and prefixes.
func WithAlphabet(a domain.Alphabet) Option {
	return func(e *Engine) {
		e.alpha = a
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine with the default alphabet unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{alpha: domain.DefaultAlphabet()}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Alphabet returns the alphabet the engine operates with.
func (e *Engine) Alphabet() domain.Alphabet {
	return e.alpha
}

// Convert runs the pipeline selected by the source machine type:
// rename into the simulation namespace, then rewrite under the target
// convention. The input slice is never modified.
func (e *Engine) Convert(source domain.MachineType, transitions []domain.Transition) []domain.Transition {
	renamed := e.Rename(transitions)
	switch source {
	case domain.MachineInfinite:
		return e.InfiniteToSipser(renamed)
	default:
		return e.SipserToInfinite(renamed)
	}
}

// retarget redirects a transition into a check state, leaving terminal
// destinations untouched.
func (e *Engine) retarget(original, check string) string {
	if e.alpha.IsHalt(original) {
		return original
	}
	return check
}

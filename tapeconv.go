package tapeconv

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lviana15/tapeconv/internal/compiler"
	"github.com/lviana15/tapeconv/pkg/domain"
	"github.com/lviana15/tapeconv/pkg/engine"
)

// Version of the tapeconv library and CLI.
var Version = "0.2.0"

// Result is a finished conversion: the resolved source model and the
// generated transition table, ready to be serialized.
type Result struct {
	// Source is the machine type declared by the input header.
	Source domain.MachineType
	// Transitions is the generated table, in emission order.
	Transitions []domain.Transition

	alpha domain.Alphabet
}

// Option configures a conversion.
type Option func(*converter)

type converter struct {
	alpha  domain.Alphabet
	logger *slog.Logger
}

// WithAlphabet overrides the reserved symbols and label prefixes.
func WithAlphabet(a domain.Alphabet) Option {
	return func(c *converter) {
		c.alpha = a
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *converter) {
		c.logger = logger
	}
}

// Convert reads a machine table from r and converts it to the opposite
// tape-boundary convention. The whole input is parsed before any
// transformation runs; the first header, parse, or read failure aborts
// the conversion.
func Convert(r io.Reader, opts ...Option) (*Result, error) {
	c := &converter{alpha: domain.DefaultAlphabet()}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	machineType, transitions, err := compiler.NewParser().Parse(src)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("parsed table", "machine_type", machineType.String(), "transitions", len(transitions))

	eng := engine.New(engine.WithAlphabet(c.alpha), engine.WithLogger(c.logger))
	return &Result{
		Source:      machineType,
		Transitions: eng.Convert(machineType, transitions),
		alpha:       c.alpha,
	}, nil
}

// Target returns the model the generated table runs on.
func (r *Result) Target() domain.MachineType {
	return r.Source.Target()
}

// WriteTo serializes the result: two comment lines naming the
// conversion and the start state, then one line per transition with
// wildcard compression. Output is deterministic for identical input.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var written int64

	n, err := fmt.Fprintf(w, "; --- %s-to-%s Simulation ---\n; Start state: %s\n",
		r.Source, r.Target(), r.alpha.StartState)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range r.Transitions {
		n, err := fmt.Fprintln(w, t.Render(r.alpha))
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("failed to write transition: %w", err)
		}
	}
	return written, nil
}

/*
Package tapeconv converts textual Turing-machine transition tables
between two tape-boundary conventions: the doubly-infinite tape model
and the singly-infinite (Sipser) model bounded by an origin marker.

The generated table simulates the original machine under the other
convention. The original states are moved into a private "sim_"
namespace and auxiliary control states are synthesized around them to
handle what the target convention cannot express directly: growing the
bounded region when the infinite machine walks past a wall, and
halting when the bounded machine tries to cross its origin.

# Input format

Line one is the machine-type header, ";I" (infinite) or ";S" (Sipser).
Every other line is either blank, a ";" comment, or a five-token rule:

	<state> <symbol> <new_symbol> <direction> <new_state>

with direction one of "l", "r", "*". On output, a new symbol equal to
the current symbol and a new state equal to the current state are
compressed to "*".

A state label starting with "halt" is terminal and passes through
every stage untouched. User labels must not start with "halt", "sim_",
or any of the engine's control prefixes (engine.PrefixCheckRight and
friends); the synthesized namespace relies on that and does not check
it.

# Usage

	result, err := tapeconv.Convert(file)
	if err != nil {
		log.Fatal(err)
	}
	result.WriteTo(os.Stdout)
*/
package tapeconv

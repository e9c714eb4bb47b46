package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lviana15/tapeconv/pkg/domain"
)

// byState groups a table by current state.
func byState(transitions []domain.Transition) map[string][]domain.Transition {
	grouped := make(map[string][]domain.Transition)
	for _, t := range transitions {
		grouped[t.CurrentState] = append(grouped[t.CurrentState], t)
	}
	return grouped
}

func TestInfiniteToSipserRewrite(t *testing.T) {
	e := New()

	in := e.Rename([]domain.Transition{
		{CurrentState: "a", CurrentSymbol: '0', NewSymbol: '1', Direction: domain.DirectionRight, NewState: "b"},
		{CurrentState: "a", CurrentSymbol: '1', NewSymbol: '1', Direction: domain.DirectionLeft, NewState: "b"},
		{CurrentState: "b", CurrentSymbol: '0', NewSymbol: '0', Direction: domain.DirectionStay, NewState: "a"},
		{CurrentState: "b", CurrentSymbol: '1', NewSymbol: '1', Direction: domain.DirectionRight, NewState: "halt"},
	})
	out := e.InfiniteToSipser(in)
	grouped := byState(out)

	simA := grouped["sim_a"]
	require.Len(t, simA, 2)
	assert.Equal(t, "check_right_sim_b", simA[0].NewState, "right moves are guarded")
	assert.Equal(t, "check_left_sim_b", simA[1].NewState, "left moves are guarded")

	simB := grouped["sim_b"]
	require.Len(t, simB, 2)
	assert.Equal(t, "sim_a", simB[0].NewState, "stay moves are untouched")
	assert.Equal(t, "halt", simB[1].NewState, "terminal destinations are untouched")
}

func TestInfiniteToSipserHaltSourceUntouched(t *testing.T) {
	e := New()

	// A rule originating in a terminal state is copied verbatim.
	in := []domain.Transition{
		{CurrentState: "halt_clean", CurrentSymbol: '0', NewSymbol: '_', Direction: domain.DirectionRight, NewState: "halt_clean"},
	}
	out := e.InfiniteToSipser(in)
	grouped := byState(out)
	require.Len(t, grouped["halt_clean"], 1)
	assert.Equal(t, in[0], grouped["halt_clean"][0])
}

func TestCheckRightCluster(t *testing.T) {
	e := New()

	in := []domain.Transition{
		{CurrentState: "sim_a", CurrentSymbol: '0', NewSymbol: '1', Direction: domain.DirectionRight, NewState: "sim_b"},
	}
	out := e.InfiniteToSipser(in)
	grouped := byState(out)

	check := grouped["check_right_sim_b"]
	require.Len(t, check, 2, "boundary check is exactly two transitions")
	assert.Equal(t, domain.Transition{
		CurrentState: "check_right_sim_b", CurrentSymbol: '*', NewSymbol: '*',
		Direction: domain.DirectionStay, NewState: "sim_b",
	}, check[0])
	assert.Equal(t, domain.Transition{
		CurrentState: "check_right_sim_b", CurrentSymbol: '$', NewSymbol: '_',
		Direction: domain.DirectionRight, NewState: "expand_right_sim_b",
	}, check[1])

	expand := grouped["expand_right_sim_b"]
	require.Len(t, expand, 1)
	assert.Equal(t, domain.Transition{
		CurrentState: "expand_right_sim_b", CurrentSymbol: '_', NewSymbol: '$',
		Direction: domain.DirectionLeft, NewState: "sim_b",
	}, expand[0])
}

func TestCheckLeftCluster(t *testing.T) {
	e := New()

	in := []domain.Transition{
		{CurrentState: "sim_a", CurrentSymbol: '0', NewSymbol: '1', Direction: domain.DirectionLeft, NewState: "sim_b"},
	}
	out := e.InfiniteToSipser(in)
	grouped := byState(out)

	check := grouped["check_left_sim_b"]
	require.Len(t, check, 2)
	assert.Equal(t, domain.Transition{
		CurrentState: "check_left_sim_b", CurrentSymbol: '*', NewSymbol: '*',
		Direction: domain.DirectionStay, NewState: "sim_b",
	}, check[0])
	assert.Equal(t, domain.Transition{
		CurrentState: "check_left_sim_b", CurrentSymbol: '#', NewSymbol: '#',
		Direction: domain.DirectionRight, NewState: "shift_start_sim_b",
	}, check[1])

	// Shift chain: lift the leftmost bit, or bail out if the cell is
	// already blank, or consume the right wall directly.
	shiftStart := grouped["shift_start_sim_b"]
	require.Len(t, shiftStart, 4)
	assert.Equal(t, "shift_carry_0_sim_b", shiftStart[0].NewState)
	assert.Equal(t, "shift_carry_1_sim_b", shiftStart[1].NewState)
	assert.Equal(t, domain.Transition{
		CurrentState: "shift_start_sim_b", CurrentSymbol: '_', NewSymbol: '_',
		Direction: domain.DirectionStay, NewState: "sim_b",
	}, shiftStart[2])
	assert.Equal(t, domain.Transition{
		CurrentState: "shift_start_sim_b", CurrentSymbol: '$', NewSymbol: '_',
		Direction: domain.DirectionRight, NewState: "shift_write_end_sim_b",
	}, shiftStart[3])

	// Carry states terminate on blank and on the right wall.
	carry0 := grouped["shift_carry_0_sim_b"]
	require.Len(t, carry0, 4)
	carry1 := grouped["shift_carry_1_sim_b"]
	require.Len(t, carry1, 4)

	writeEnd := grouped["shift_write_end_sim_b"]
	require.Len(t, writeEnd, 1)
	assert.Equal(t, "shift_return_sim_b", writeEnd[0].NewState)

	returnHead := grouped["shift_return_sim_b"]
	require.Len(t, returnHead, 2)
	assert.Equal(t, "sim_b", returnHead[1].NewState)
}

func TestSetupCluster(t *testing.T) {
	e := New()

	out := e.InfiniteToSipser(nil)
	grouped := byState(out)

	start := grouped["0"]
	require.Len(t, start, 3, "start handles 0, 1, and blank")
	assert.Equal(t, domain.Transition{
		CurrentState: "0", CurrentSymbol: '0', NewSymbol: '#',
		Direction: domain.DirectionRight, NewState: "q_carry_0",
	}, start[0])
	assert.Equal(t, domain.Transition{
		CurrentState: "0", CurrentSymbol: '1', NewSymbol: '#',
		Direction: domain.DirectionRight, NewState: "q_carry_1",
	}, start[1])
	assert.Equal(t, domain.Transition{
		CurrentState: "0", CurrentSymbol: '_', NewSymbol: '#',
		Direction: domain.DirectionRight, NewState: "q_write_end_marker_empty",
	}, start[2])

	// Blank tape: plant the right wall and hand over immediately.
	empty := grouped["q_write_end_marker_empty"]
	require.Len(t, empty, 1)
	assert.Equal(t, domain.Transition{
		CurrentState: "q_write_end_marker_empty", CurrentSymbol: '_', NewSymbol: '$',
		Direction: domain.DirectionLeft, NewState: "sim_0",
	}, empty[0])

	// Pre-existing content: carry sweep, then wall, then return head.
	require.Len(t, grouped["q_carry_0"], 3)
	require.Len(t, grouped["q_carry_1"], 3)
	require.Len(t, grouped["q_write_end_marker"], 1)
	ret := grouped["q_return_head"]
	require.Len(t, ret, 2)
	assert.Equal(t, "sim_0", ret[1].NewState)
}

// Wall markers are consumed only by synthesized control states, never
// by a rewritten source transition.
func TestWallSymbolsOnlyInControlClusters(t *testing.T) {
	e := New()
	alpha := e.Alphabet()

	in := e.Rename([]domain.Transition{
		{CurrentState: "a", CurrentSymbol: '0', NewSymbol: '1', Direction: domain.DirectionRight, NewState: "b"},
		{CurrentState: "b", CurrentSymbol: '1', NewSymbol: '0', Direction: domain.DirectionLeft, NewState: "a"},
	})
	out := e.InfiniteToSipser(in)

	reserved := []string{
		PrefixCheckRight, PrefixCheckLeft, PrefixExpandRight,
		PrefixShiftStart, PrefixShiftCarry0, PrefixShiftCarry1,
		PrefixShiftWriteEnd, PrefixShiftReturn, "q_",
	}
	isControl := func(state string) bool {
		if state == alpha.StartState {
			return true
		}
		for _, p := range reserved {
			if strings.HasPrefix(state, p) {
				return true
			}
		}
		return false
	}

	for _, tr := range out {
		if tr.CurrentSymbol == alpha.LeftWall || tr.CurrentSymbol == alpha.RightWall {
			assert.True(t, isControl(tr.CurrentState),
				"wall symbol read outside a control cluster: %s", tr)
		}
	}
}

func TestInfiniteToSipserDeterministic(t *testing.T) {
	e := New()

	in := e.Rename([]domain.Transition{
		{CurrentState: "a", CurrentSymbol: '0', NewSymbol: '1', Direction: domain.DirectionRight, NewState: "c"},
		{CurrentState: "c", CurrentSymbol: '1', NewSymbol: '0', Direction: domain.DirectionLeft, NewState: "b"},
		{CurrentState: "b", CurrentSymbol: '0', NewSymbol: '0', Direction: domain.DirectionRight, NewState: "a"},
	})

	first := e.InfiniteToSipser(in)
	second := e.InfiniteToSipser(in)
	assert.Equal(t, first, second, "identical input must yield identical output")

	// Clusters are emitted per distinct target in sorted order.
	var clusterOrder []string
	seen := make(map[string]bool)
	for _, tr := range first {
		if strings.HasPrefix(tr.CurrentState, PrefixCheckRight) && !seen[tr.CurrentState] {
			seen[tr.CurrentState] = true
			clusterOrder = append(clusterOrder, tr.CurrentState)
		}
	}
	assert.Equal(t, []string{
		"check_right_sim_a", "check_right_sim_b", "check_right_sim_c",
	}, clusterOrder)
}

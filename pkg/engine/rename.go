package engine

import "github.com/lviana15/tapeconv/pkg/domain"

// Rename moves every non-terminal state label (current and target)
// into the simulation namespace by prefixing it, so the embedded
// machine's states can never collide with synthesized control states.
// Terminal labels pass through unchanged.
func (e *Engine) Rename(transitions []domain.Transition) []domain.Transition {
	rename := func(state string) string {
		if e.alpha.IsHalt(state) {
			return state
		}
		return e.alpha.SimPrefix + state
	}

	renamed := make([]domain.Transition, 0, len(transitions))
	for _, t := range transitions {
		t.CurrentState = rename(t.CurrentState)
		t.NewState = rename(t.NewState)
		renamed = append(renamed, t)
	}
	return renamed
}

package domain

// Direction is the head movement of a transition.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionStay
)

// Direction tokens as they appear in transition tables.
const (
	TokenLeft  = "l"
	TokenRight = "r"
	TokenStay  = "*"
)

// ParseDirection maps a raw token to a Direction.
// Unknown tokens fail with a *DirectionError carrying the raw text.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case TokenLeft:
		return DirectionLeft, nil
	case TokenRight:
		return DirectionRight, nil
	case TokenStay:
		return DirectionStay, nil
	default:
		return 0, &DirectionError{Token: token}
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return TokenLeft
	case DirectionRight:
		return TokenRight
	case DirectionStay:
		return TokenStay
	default:
		return "?"
	}
}

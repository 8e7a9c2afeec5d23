package game

import (
	"errors"
	"fmt"
)

// Player is the side to move. Max moves first and prefers positive scores.
type Player int8

const (
	Max Player = 1
	Min Player = -1
)

// Opponent returns the other player
func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case Max:
		return "Max"
	case Min:
		return "Min"
	default:
		return fmt.Sprintf("Player(%d)", int8(p))
	}
}

// Score is a game value from Max's point of view: positive favors Max,
// negative favors Min. A single game uses one scale for both terminal
// results and heuristic evaluations.
type Score float64

// ErrInvalidState is returned when a move is requested from a state that
// has no moves to choose from.
var ErrInvalidState = errors.New("invalid state: no moves available")

// Rules is the contract every game variant implements for the search engines.
//
// States must be immutable: Play returns a new state and never modifies its
// input, so sibling branches of a search never observe each other.
type Rules[S any, M comparable] interface {
	// InitialState returns the starting position
	InitialState() S
	// Moves lists the legal moves of player in a fixed, reproducible order.
	// The order breaks ties between equally scored moves. It is empty iff the
	// state is terminal or player has no legal action.
	Moves(state S, player Player) []M
	// Play applies a move returned by Moves. Illegal moves are not validated.
	Play(state S, move M, player Player) S
	// IsTerminal reports whether the game is over. The score is only
	// meaningful when the game is over.
	IsTerminal(state S) (bool, Score)
	// Evaluate scores a non-terminal state when the search depth runs out
	Evaluate(state S) Score
}

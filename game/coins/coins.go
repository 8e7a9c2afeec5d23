// Package coins implements the coin game: players alternately take a coin from
// either end of a row and add its value to their own score.
package coins

import (
	"errors"
	"fmt"
	"slices"

	"gametree/game"
)

var ErrInvalidCoin = errors.New("coin value must be positive")

type Move int

const (
	TakeLeft Move = iota
	TakeRight
)

func (m Move) String() string {
	switch m {
	case TakeLeft:
		return "left"
	case TakeRight:
		return "right"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// State is the remaining row of coins and both running scores.
// Coins is never modified in place once the state is created.
type State struct {
	Coins    []int
	MaxScore int
	MinScore int
}

// Diff returns Max's score minus Min's score
func (s State) Diff() game.Score {
	return game.Score(s.MaxScore - s.MinScore)
}

func (s State) String() string {
	return fmt.Sprintf("coins=%v max=%d min=%d", s.Coins, s.MaxScore, s.MinScore)
}

type Rules struct {
	coins []int
}

// NewRules returns the rules for a game starting from the given row of coins
func NewRules(coins []int) (*Rules, error) {
	for i, c := range coins {
		if c <= 0 {
			return nil, fmt.Errorf("coin %d has value %d: %w", i, c, ErrInvalidCoin)
		}
	}
	return &Rules{coins: slices.Clone(coins)}, nil
}

func (r *Rules) InitialState() State {
	return State{Coins: slices.Clone(r.coins)}
}

// Moves offers both ends while any coin is left, even when both ends are the same coin.
func (r *Rules) Moves(s State, player game.Player) []Move {
	if len(s.Coins) == 0 {
		return nil
	}
	return []Move{TakeLeft, TakeRight}
}

func (r *Rules) Play(s State, move Move, player game.Player) State {
	var value int
	var rest []int
	if move == TakeLeft {
		value, rest = s.Coins[0], s.Coins[1:]
	} else {
		last := len(s.Coins) - 1
		value, rest = s.Coins[last], s.Coins[:last]
	}

	next := State{
		Coins:    slices.Clone(rest),
		MaxScore: s.MaxScore,
		MinScore: s.MinScore,
	}
	if player == game.Max {
		next.MaxScore += value
	} else {
		next.MinScore += value
	}
	return next
}

func (r *Rules) IsTerminal(s State) (bool, game.Score) {
	return len(s.Coins) == 0, s.Diff()
}

func (r *Rules) Evaluate(s State) game.Score {
	return s.Diff()
}

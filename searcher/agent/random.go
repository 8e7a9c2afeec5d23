package agent

import (
	"context"
	"fmt"

	"gametree/experiments/metrics"
	"gametree/game"

	"golang.org/x/exp/rand"
)

type randomAgent[S any, M comparable] struct {
	rules game.Rules[S, M]
	rng   *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves.
// The same seed replays the same choices.
func NewRandomAgent[S any, M comparable](rules game.Rules[S, M], seed uint64) Agent[S, M] {
	return &randomAgent[S, M]{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent[S, M]) FindMove(ctx context.Context, state S, player game.Player) (M, metrics.SearchMetric, error) {
	var move M
	if err := ctx.Err(); err != nil {
		return move, metrics.SearchMetric{}, err
	}
	moves := a.rules.Moves(state, player)
	if len(moves) == 0 {
		return move, metrics.SearchMetric{}, fmt.Errorf("%s to move: %w", player, game.ErrInvalidState)
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Engine: "random"}, nil
}

// RandomWalk plays up to plies random moves from the initial state and
// returns the reached state with the player to move. It stops early at a
// state without moves.
func RandomWalk[S any, M comparable](rules game.Rules[S, M], plies int, seed uint64) (S, game.Player) {
	rng := rand.New(rand.NewSource(seed))
	state, player := rules.InitialState(), game.Max
	for i := 0; i < plies; i++ {
		moves := rules.Moves(state, player)
		if len(moves) == 0 {
			break
		}
		state = rules.Play(state, moves[rng.Intn(len(moves))], player)
		player = player.Opponent()
	}
	return state, player
}

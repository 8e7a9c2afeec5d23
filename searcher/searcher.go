package searcher

import (
	"context"
	"fmt"
	"math"

	"gametree/experiments/metrics"
	"gametree/game"
)

// Engine scores game trees to a fixed depth counted in plies.
// Results depend only on the state, the player to move, the depth and
// the order of the rules' moves.
type Engine[S any, M comparable] interface {
	Name() string
	// Search returns the value of state with turn to move
	Search(ctx context.Context, state S, turn game.Player, depth int) (game.Score, error)
	// BestMove returns the move whose child scores best for turn, searching
	// each child to depth-1. It fails with game.ErrInvalidState when turn has no move.
	BestMove(ctx context.Context, state S, turn game.Player, depth int) (M, game.Score, error)
	Metrics() metrics.Collector
}

type Option func(o *options)

type options struct {
	metrics metrics.Collector
}

// WithMetrics counts visited nodes, leaves and cutoffs
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(o *options) {
		if c != nil {
			o.metrics = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{metrics: metrics.NewDummyCollector()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// worst is the starting value of a node where turn is to move
func worst(turn game.Player) game.Score {
	return game.Score(math.Inf(-int(turn)))
}

// improves reports whether v is strictly better than best for turn.
// Strictness keeps the first of equally scored moves.
func improves(turn game.Player, v, best game.Score) bool {
	if turn == game.Max {
		return v > best
	}
	return v < best
}

// leaf scores a state that is not expanded: the terminal score wins over
// the depth limit, and a state without moves falls back to Evaluate.
// The second result is false when the node must be expanded with moves.
func leaf[S any, M comparable](rules game.Rules[S, M], state S, turn game.Player, depth int) (game.Score, []M, bool) {
	if over, score := rules.IsTerminal(state); over {
		return score, nil, true
	}
	if depth <= 0 {
		return rules.Evaluate(state), nil, true
	}
	moves := rules.Moves(state, turn)
	if len(moves) == 0 {
		return rules.Evaluate(state), nil, true
	}
	return 0, moves, false
}

func rootMoves[S any, M comparable](rules game.Rules[S, M], state S, turn game.Player) ([]M, error) {
	moves := rules.Moves(state, turn)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%s to move: %w", turn, game.ErrInvalidState)
	}
	return moves, nil
}

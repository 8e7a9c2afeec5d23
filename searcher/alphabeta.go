package searcher

import (
	"context"
	"math"

	"gametree/experiments/metrics"
	"gametree/game"
)

// AlphaBeta returns the same values as Minimax but skips the remaining
// moves of a node once they cannot change its parent's choice.
//
// Its best move may differ from Minimax's when several moves tie: a sibling
// searched under a narrowed window can come back as a bound equal to the
// best score and is then not preferred. Only the root value is guaranteed
// to agree.
type AlphaBeta[S any, M comparable] struct {
	rules   game.Rules[S, M]
	metrics metrics.Collector
}

func NewAlphaBeta[S any, M comparable](rules game.Rules[S, M], opts ...Option) *AlphaBeta[S, M] {
	o := newOptions(opts)
	return &AlphaBeta[S, M]{
		rules:   rules,
		metrics: o.metrics,
	}
}

func (a *AlphaBeta[S, M]) Name() string {
	return "alphabeta"
}

func (a *AlphaBeta[S, M]) Metrics() metrics.Collector {
	return a.metrics
}

func (a *AlphaBeta[S, M]) Search(ctx context.Context, state S, turn game.Player, depth int) (game.Score, error) {
	return a.search(ctx, state, turn, depth, game.Score(math.Inf(-1)), game.Score(math.Inf(1)))
}

// search threads alpha, the value Max is already guaranteed, and beta, the
// value Min is already guaranteed, through the tree.
func (a *AlphaBeta[S, M]) search(ctx context.Context, state S, turn game.Player, depth int, alpha, beta game.Score) (game.Score, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	a.metrics.AddNode()

	score, moves, done := leaf(a.rules, state, turn, depth)
	if done {
		a.metrics.AddLeaf()
		return score, nil
	}

	value := worst(turn)
	for i, move := range moves {
		child := a.rules.Play(state, move, turn)
		v, err := a.search(ctx, child, turn.Opponent(), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}

		if turn == game.Max {
			value = max(value, v)
			alpha = max(alpha, value)
		} else {
			value = min(value, v)
			beta = min(beta, value)
		}
		if alpha >= beta {
			if i < len(moves)-1 {
				a.metrics.AddCutoff()
			}
			break
		}
	}
	return value, nil
}

func (a *AlphaBeta[S, M]) BestMove(ctx context.Context, state S, turn game.Player, depth int) (M, game.Score, error) {
	var best M
	moves, err := rootMoves(a.rules, state, turn)
	if err != nil {
		return best, 0, err
	}
	a.metrics.AddNode()

	alpha, beta := game.Score(math.Inf(-1)), game.Score(math.Inf(1))
	value := worst(turn)
	for i, move := range moves {
		child := a.rules.Play(state, move, turn)
		v, err := a.search(ctx, child, turn.Opponent(), depth-1, alpha, beta)
		if err != nil {
			return best, 0, err
		}
		if i == 0 || improves(turn, v, value) {
			best, value = move, v
		}
		if turn == game.Max {
			alpha = max(alpha, value)
		} else {
			beta = min(beta, value)
		}
	}
	return best, value, nil
}

package searcher

import (
	"context"

	"gametree/experiments/metrics"
	"gametree/game"
)

// Minimax evaluates every node of the game tree down to the requested depth.
type Minimax[S any, M comparable] struct {
	rules   game.Rules[S, M]
	metrics metrics.Collector
}

func NewMinimax[S any, M comparable](rules game.Rules[S, M], opts ...Option) *Minimax[S, M] {
	o := newOptions(opts)
	return &Minimax[S, M]{
		rules:   rules,
		metrics: o.metrics,
	}
}

func (m *Minimax[S, M]) Name() string {
	return "minimax"
}

func (m *Minimax[S, M]) Metrics() metrics.Collector {
	return m.metrics
}

func (m *Minimax[S, M]) Search(ctx context.Context, state S, turn game.Player, depth int) (game.Score, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.metrics.AddNode()

	score, moves, done := leaf(m.rules, state, turn, depth)
	if done {
		m.metrics.AddLeaf()
		return score, nil
	}

	value := worst(turn)
	for _, move := range moves {
		child := m.rules.Play(state, move, turn)
		v, err := m.Search(ctx, child, turn.Opponent(), depth-1)
		if err != nil {
			return 0, err
		}
		if improves(turn, v, value) {
			value = v
		}
	}
	return value, nil
}

// BestMove keeps the first move reaching the optimal score.
func (m *Minimax[S, M]) BestMove(ctx context.Context, state S, turn game.Player, depth int) (M, game.Score, error) {
	var best M
	moves, err := rootMoves(m.rules, state, turn)
	if err != nil {
		return best, 0, err
	}
	m.metrics.AddNode()

	value := worst(turn)
	for i, move := range moves {
		child := m.rules.Play(state, move, turn)
		v, err := m.Search(ctx, child, turn.Opponent(), depth-1)
		if err != nil {
			return best, 0, err
		}
		if i == 0 || improves(turn, v, value) {
			best, value = move, v
		}
	}
	return best, value, nil
}

package searcher

import (
	"context"
	"fmt"

	"gametree/experiments/metrics"
	"gametree/game"

	"github.com/rs/zerolog/log"
)

// Selector picks moves with an engine at a fixed search depth.
type Selector[S any, M comparable] struct {
	engine Engine[S, M]
	depth  int
}

func NewSelector[S any, M comparable](engine Engine[S, M], depth int) *Selector[S, M] {
	if engine == nil {
		panic("selector needs an engine")
	}
	if depth < 1 {
		panic(fmt.Sprintf("search depth must be at least 1, got %d", depth))
	}
	return &Selector[S, M]{engine: engine, depth: depth}
}

func (s *Selector[S, M]) Depth() int {
	return s.depth
}

func (s *Selector[S, M]) Engine() Engine[S, M] {
	return s.engine
}

// FindMove returns the best move for player along with the search metrics
func (s *Selector[S, M]) FindMove(ctx context.Context, state S, player game.Player) (M, metrics.SearchMetric, error) {
	collector := s.engine.Metrics()
	collector.Start(s.engine.Name(), s.depth)

	move, score, err := s.engine.BestMove(ctx, state, player, s.depth)
	if err != nil {
		return move, collector.Complete(0), fmt.Errorf("%s search at depth %d: %w", s.engine.Name(), s.depth, err)
	}
	metric := collector.Complete(score)
	metric.Engine, metric.Depth = s.engine.Name(), s.depth

	log.Debug().
		Str("engine", metric.Engine).
		Str("player", player.String()).
		Int("depth", s.depth).
		Float64("score", float64(score)).
		Int64("nodes", metric.Nodes).
		Int64("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msgf("selected move %v", move)

	return move, metric, nil
}

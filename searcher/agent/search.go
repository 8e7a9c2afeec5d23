package agent

import (
	"context"

	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher"
)

type searchAgent[S any, M comparable] struct {
	selector *searcher.Selector[S, M]
}

// NewSearchAgent returns an agent playing the selector's best move.
func NewSearchAgent[S any, M comparable](selector *searcher.Selector[S, M]) Agent[S, M] {
	return searchAgent[S, M]{selector: selector}
}

func (a searchAgent[S, M]) FindMove(ctx context.Context, state S, player game.Player) (M, metrics.SearchMetric, error) {
	return a.selector.FindMove(ctx, state, player)
}

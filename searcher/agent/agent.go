package agent

import (
	"context"

	"gametree/experiments/metrics"
	"gametree/game"
)

type Agent[S any, M comparable] interface {
	// FindMove returns the move to play and the metrics of the search behind it (if any)
	FindMove(ctx context.Context, state S, player game.Player) (M, metrics.SearchMetric, error)
}
